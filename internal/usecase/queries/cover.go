package queries

import (
	"context"

	"macondo-backend/internal/domain/cover"
	"macondo-backend/internal/usecase/shared"
)

type CoverQueries interface {
	// GetConfig returns the newest saved configuration, or the defaults.
	GetConfig(ctx context.Context) (*CoverConfigView, error)
}

type coverQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCoverQueries(uow shared.UnitOfWork) CoverQueries {
	return &coverQueriesImpl{uow: uow}
}

func (q *coverQueriesImpl) GetConfig(ctx context.Context) (*CoverConfigView, error) {
	cfg, err := q.uow.Direct().CoverConfig().Current(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		d := cover.Default()
		cfg = &d
	}
	return NewCoverConfigView(*cfg), nil
}

func NewCoverConfigView(cfg cover.Config) *CoverConfigView {
	return &CoverConfigView{
		DJName:             cfg.DJName,
		PricePLN:           cfg.PricePLN,
		Active:             cfg.Active,
		Mode:               string(cfg.Mode),
		PrivateTitle:       cfg.PrivateTitle,
		PrivateDescription: cfg.PrivateDescription,
		EventName:          cfg.EventName(),
	}
}
