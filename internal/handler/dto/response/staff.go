package response

import (
	"time"

	"macondo-backend/internal/domain/staff"
	"macondo-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type StaffListResponse struct {
	Staff []*StaffResponse `json:"staff"`
}

func FromStaffViews(vs []*queries.StaffView) *StaffListResponse {
	return &StaffListResponse{Staff: copyAll[StaffResponse](vs)}
}

func FromStaffMember(m *staff.Member) *StaffResponse {
	return copyTo[StaffResponse](queries.NewStaffView(m))
}
