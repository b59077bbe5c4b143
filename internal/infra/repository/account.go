package repository

import (
	"context"
	"log/slog"
	"time"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/domain/staff"
	"macondo-backend/internal/infra"
	"macondo-backend/internal/infra/repository/converter"
	"macondo-backend/internal/infra/store"
	"macondo-backend/internal/pkg/clock"
	"macondo-backend/internal/pkg/pgconv"
	"macondo-backend/internal/usecase/shared"
)

// CoverConfigRepository keeps every saved configuration; the newest row is current.
type CoverConfigRepository struct {
	db     store.Store
	logger *slog.Logger
}

func NewCoverConfigRepository(db store.Store, logger *slog.Logger) *CoverConfigRepository {
	return &CoverConfigRepository{db: db, logger: logger}
}

func (r *CoverConfigRepository) Current(ctx context.Context) (*cover.Config, error) {
	rows, err := r.db.Select(ctx, converter.CoverConfigTable,
		store.Where().OrderBy(converter.ColUpdatedAt, true).WithLimit(1))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to load cover config", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	cfg := converter.CoverConfigFromRow(rows[0])
	return &cfg, nil
}

func (r *CoverConfigRepository) Save(ctx context.Context, cfg cover.Config) error {
	if _, err := r.db.Insert(ctx, converter.CoverConfigTable, converter.CoverConfigToRow(cfg)); err != nil {
		return infra.WrapStoreErr(r.logger, "failed to save cover config", err)
	}
	return nil
}

type StaffRepository struct {
	db     store.Store
	logger *slog.Logger
}

func NewStaffRepository(db store.Store, logger *slog.Logger) *StaffRepository {
	return &StaffRepository{db: db, logger: logger}
}

func (r *StaffRepository) Create(ctx context.Context, m *staff.Member) error {
	if _, err := r.db.Insert(ctx, converter.StaffTable, converter.StaffToRow(m)); err != nil {
		return infra.WrapStoreErr(r.logger, "failed to create staff user", err)
	}
	return nil
}

func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*staff.Member, error) {
	rows, err := r.db.Select(ctx, converter.StaffTable,
		store.Where(store.Eq(converter.ColUsername, username)).WithLimit(1))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to find staff user", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "staff user not found", nil)
	}
	return converter.StaffFromRow(rows[0]), nil
}

func (r *StaffRepository) List(ctx context.Context, limit int) ([]*staff.Member, error) {
	rows, err := r.db.Select(ctx, converter.StaffTable,
		store.Where().OrderBy(converter.ColCreatedAt, true).WithLimit(limit))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to list staff users", err)
	}
	out := make([]*staff.Member, len(rows))
	for i, row := range rows {
		out[i] = converter.StaffFromRow(row)
	}
	return out, nil
}

func (r *StaffRepository) UpdatePINHash(ctx context.Context, username, pinHash string) (bool, error) {
	return r.update(ctx, username, store.Row{"pin_hash": pinHash}, "failed to reset staff pin")
}

func (r *StaffRepository) SetActive(ctx context.Context, username string, active bool) (bool, error) {
	return r.update(ctx, username, store.Row{"active": active}, "failed to set staff active")
}

func (r *StaffRepository) Delete(ctx context.Context, username string) (bool, error) {
	n, err := r.db.Delete(ctx, converter.StaffTable, store.Eq(converter.ColUsername, username))
	if err != nil {
		return false, infra.WrapStoreErr(r.logger, "failed to delete staff user", err)
	}
	return n > 0, nil
}

func (r *StaffRepository) update(ctx context.Context, username string, set store.Row, msg string) (bool, error) {
	rows, err := r.db.Update(ctx, converter.StaffTable, set, store.Eq(converter.ColUsername, username))
	if err != nil {
		return false, infra.WrapStoreErr(r.logger, msg, err)
	}
	return len(rows) > 0, nil
}

type AdminRepository struct {
	db     store.Store
	logger *slog.Logger
}

func NewAdminRepository(db store.Store, logger *slog.Logger) *AdminRepository {
	return &AdminRepository{db: db, logger: logger}
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*shared.AdminRecord, error) {
	rows, err := r.db.Select(ctx, converter.AdminTable,
		store.Where(store.Eq(converter.ColEmail, email)).WithLimit(1))
	if err != nil {
		return nil, infra.WrapStoreErr(r.logger, "failed to find admin", err)
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "admin not found", nil)
	}
	return &shared.AdminRecord{
		Email:        pgconv.String(rows[0][converter.ColEmail]),
		PasswordHash: pgconv.String(rows[0]["password_hash"]),
		CreatedAt:    pgconv.Time(rows[0][converter.ColCreatedAt]),
	}, nil
}

func (r *AdminRepository) IsAllowed(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	rows, err := r.db.Select(ctx, converter.AdminTable,
		store.Where(store.Eq(converter.ColEmail, email)).WithLimit(1))
	if err != nil {
		return false, infra.WrapStoreErr(r.logger, "failed to check admin allow-list", err)
	}
	return len(rows) > 0, nil
}

type ClientRepository struct {
	db     store.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewClientRepository(db store.Store, clk clock.Clock, logger *slog.Logger) *ClientRepository {
	return &ClientRepository{db: db, clock: clk, logger: logger}
}

// Upsert keeps marketing consent once given.
func (r *ClientRepository) Upsert(ctx context.Context, c shared.ClientRecord) error {
	rows, err := r.db.Select(ctx, converter.ClientTable,
		store.Where(store.Eq(converter.ColEmail, c.Email)).WithLimit(1))
	if err != nil {
		return infra.WrapStoreErr(r.logger, "failed to load client", err)
	}

	var phone any
	if c.Phone != nil {
		phone = *c.Phone
	}
	now := r.now()

	if len(rows) == 0 {
		_, err = r.db.Insert(ctx, converter.ClientTable, store.Row{
			converter.ColEmail:     c.Email,
			"name":                 c.Name,
			"phone":                phone,
			"consent_marketing":    c.ConsentMarketing,
			converter.ColUpdatedAt: now,
		})
		if err != nil {
			return infra.WrapStoreErr(r.logger, "failed to insert client", err)
		}
		return nil
	}

	consent := pgconv.Bool(rows[0]["consent_marketing"]) || c.ConsentMarketing
	_, err = r.db.Update(ctx, converter.ClientTable, store.Row{
		"name":                 c.Name,
		"phone":                phone,
		"consent_marketing":    consent,
		converter.ColUpdatedAt: now,
	}, store.Eq(converter.ColEmail, c.Email))
	if err != nil {
		return infra.WrapStoreErr(r.logger, "failed to update client", err)
	}
	return nil
}

func (r *ClientRepository) now() time.Time {
	if r.clock == nil {
		return time.Now()
	}
	return r.clock.Now()
}
