package queries

import (
	"context"

	"macondo-backend/internal/usecase/shared"
)

type StaffQueries interface {
	List(ctx context.Context) ([]*StaffView, error)
}

type staffQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewStaffQueries(uow shared.UnitOfWork) StaffQueries {
	return &staffQueriesImpl{uow: uow}
}

// List returns the newest DefaultListLimit accounts.
func (q *staffQueriesImpl) List(ctx context.Context) ([]*StaffView, error) {
	members, err := q.uow.Direct().Staff().List(ctx, DefaultListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]*StaffView, len(members))
	for i, m := range members {
		out[i] = NewStaffView(m)
	}
	return out, nil
}
