//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"

	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/tests/common/authtest"
	"macondo-backend/tests/common/builder"
	"macondo-backend/tests/common/dbtest"
	"macondo-backend/tests/common/httptest"
	"macondo-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	availabilityURL = "/api/reservations/availability"
	adminListURL    = "/api/admin/reservations"
)

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) TestCreate() {
	s.Run("free table is booked as pending", func() {
		t := s.T()
		dto := builder.NewReservationBuilder().BuildCreateRequestDTO()

		var res resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(t, httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, dto, ""), http.StatusCreated, &res)
		require.True(t, res.OK)

		entry, table := "19:00", "T1"
		expected := &resdto.ReservationResponse{
			Name:      "Ana",
			Email:     "ana@example.com",
			Date:      "2026-03-14",
			EntryTime: &entry,
			PartySize: 4,
			TableID:   &table,
			Status:    "pending",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "ID", "CreatedAt"),
		}
		if diff := cmp.Diff(expected, res.Reservation, opts...); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("overlap within the buffer is refused with the conflicts", func() {
		t := s.T()
		existing := dbtest.SeedReservation(t, s.DB, "2026-03-14", "19:00", "T1", "confirmed")

		dto := builder.NewReservationBuilder().WithEntry("20:30").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, dto, "")
		body := httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")

		var detail struct {
			Conflicts []*resdto.ReservationResponse `json:"conflicts"`
		}
		httptest.DecodeDetail(t, body, &detail)
		require.Len(t, detail.Conflicts, 1)
		require.Equal(t, existing, detail.Conflicts[0].ID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservations"))
	})

	s.Run("cancelled bookings and other tables do not block", func() {
		t := s.T()
		dbtest.SeedReservation(t, s.DB, "2026-03-14", "19:00", "T1", "cancelled")
		dbtest.SeedReservation(t, s.DB, "2026-03-14", "19:00", "T2", "confirmed")

		dto := builder.NewReservationBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, dto, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("without a table nothing is checked", func() {
		t := s.T()
		dbtest.SeedReservation(t, s.DB, "2026-03-14", "19:00", "T1", "confirmed")

		dto := builder.NewReservationBuilder().WithoutTable().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, dto, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestAvailability() {
	s.Run("reports the overlapping booking", func() {
		t := s.T()
		dbtest.SeedReservation(t, s.DB, "2026-03-14", "19:00", "T1", "pending")

		var busy resdto.AvailabilityResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?date=2026-03-14&entry_time=19:30&table_id=T1", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &busy)
		require.False(t, busy.Available)
		require.Len(t, busy.Conflicts, 1)

		var free resdto.AvailabilityResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL+"?date=2026-03-14&entry_time=19:30&table_id=T4", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &free)
		require.True(t, free.Available)
	})

	s.Run("date is required", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *reservationSuite) TestAdminManagement() {
	s.Run("admin lists and confirms a booking", func() {
		t := s.T()
		token := authtest.CreateAdminAndLogin(t, s.DB, s.Router, "owner@macondo.test")
		id := dbtest.SeedReservation(t, s.DB, "2026-03-14", "19:00", "T1", "pending")

		var list []*resdto.ReservationResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminListURL+"?date=2026-03-14", nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)

		var updated resdto.ReservationResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, adminListURL+"/"+id.String()+"/status",
			reqdto.SetReservationStatusRequest{Status: "confirmed"}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "confirmed", updated.Status)
	})

	s.Run("unknown status is a validation error", func() {
		t := s.T()
		token := authtest.CreateAdminAndLogin(t, s.DB, s.Router, "owner@macondo.test")
		id := dbtest.SeedReservation(t, s.DB, "2026-03-14", "19:00", "T1", "pending")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminListURL+"/"+id.String()+"/status",
			reqdto.SetReservationStatusRequest{Status: "seated"}, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}
