package repository

import (
	"context"
	"log/slog"
	"time"

	"macondo-backend/internal/domain/intent"
	"macondo-backend/internal/infra"
	"macondo-backend/internal/infra/repository/converter"
	"macondo-backend/internal/infra/store"
)

type IntentRepository struct {
	db     store.Store
	logger *slog.Logger
}

func NewIntentRepository(db store.Store, logger *slog.Logger) *IntentRepository {
	return &IntentRepository{db: db, logger: logger}
}

func (r *IntentRepository) Create(ctx context.Context, in *intent.Intent) error {
	row, err := converter.IntentToRow(in)
	if err != nil {
		return err
	}
	if _, err := r.db.Insert(ctx, converter.IntentTable, row); err != nil {
		return infra.WrapStoreErr(r.logger, "failed to create cover intent", err)
	}
	return nil
}

func (r *IntentRepository) FindByIntentID(ctx context.Context, intentID string) (*intent.Intent, error) {
	rows, err := r.db.Select(ctx, converter.IntentTable,
		store.Where(store.Eq(converter.ColIntentID, intentID)).WithLimit(1))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to find cover intent", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "cover intent not found", nil)
	}
	return converter.IntentFromRow(rows[0])
}

func (r *IntentRepository) MarkFulfilled(ctx context.Context, intentID string, sessionID *string, at time.Time) (bool, error) {
	set := store.Row{
		converter.ColStatus: string(intent.StatusFulfilled),
		"fulfilled_at":      at,
	}
	if sessionID != nil {
		set["stripe_session_id"] = *sessionID
	}
	rows, err := r.db.Update(ctx, converter.IntentTable, set,
		store.Eq(converter.ColIntentID, intentID),
		store.Eq(converter.ColStatus, string(intent.StatusPending)),
	)
	if err != nil {
		return false, infra.WrapStoreErr(r.logger, "failed to fulfill cover intent", err)
	}
	return len(rows) == 1, nil
}
