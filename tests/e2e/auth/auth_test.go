//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/tests/common/authtest"
	"macondo-backend/tests/common/builder"
	"macondo-backend/tests/common/dbtest"
	"macondo-backend/tests/common/httptest"
	"macondo-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	staffLoginURL = "/api/staff/login"
	adminLoginURL = "/api/admin/login"
	doorListURL   = "/api/staff/tickets"
	adminStaffURL = "/api/admin/staff"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestStaffLogin() {
	tests := []struct {
		name     string
		username string
		pin      string
		disable  bool
		wantCode int
	}{
		{name: "valid pin", username: "door1", pin: dbtest.DefaultStaffPIN, wantCode: http.StatusOK},
		{name: "username is case insensitive", username: "DOOR1", pin: dbtest.DefaultStaffPIN, wantCode: http.StatusOK},
		{name: "wrong pin", username: "door1", pin: "0000", wantCode: http.StatusUnauthorized},
		{name: "unknown user", username: "ghost", pin: dbtest.DefaultStaffPIN, wantCode: http.StatusUnauthorized},
		{name: "disabled account", username: "door1", pin: dbtest.DefaultStaffPIN, disable: true, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			dbtest.SeedStaff(t, s.DB, "door1")
			if tt.disable {
				_, err := s.DB.Exec(t.Context(), "UPDATE staff_users SET active = false WHERE username = 'door1'")
				require.NoError(t, err)
			}

			dto := builder.NewAuthBuilder().WithUsername(tt.username).WithPIN(tt.pin).BuildStaffDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, staffLoginURL, dto, "")

			if tt.wantCode != http.StatusOK {
				httptest.AssertErrorResponse(t, w, tt.wantCode, "Invalid credentials")
				return
			}
			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.Equal(t, "door1", res.Identity)
			require.NotEmpty(t, res.AccessToken)

			list := httptest.PerformStaffRequest(t, s.Router, http.MethodGet, doorListURL, nil, res.AccessToken)
			require.Equal(t, http.StatusOK, list.Code, list.Body.String())
		})
	}
}

func (s *authSuite) TestAdminLogin() {
	s.Run("allow-listed admin reaches admin routes", func() {
		t := s.T()
		token := authtest.CreateAdminAndLogin(t, s.DB, s.Router, "owner@macondo.test")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminStaffURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("wrong password", func() {
		t := s.T()
		dbtest.SeedAdmin(t, s.DB, "owner@macondo.test")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminLoginURL,
			builder.NewAuthBuilder().WithPassword("nope").BuildAdminDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid credentials")
	})

	s.Run("removed from the allow-list after login", func() {
		t := s.T()
		token := authtest.CreateAdminAndLogin(t, s.DB, s.Router, "owner@macondo.test")
		_, err := s.DB.Exec(t.Context(), "DELETE FROM admins WHERE email = 'owner@macondo.test'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminStaffURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestTokenBoundaries() {
	s.Run("staff token cannot open admin routes", func() {
		t := s.T()
		staff := authtest.CreateStaffAndLogin(t, s.DB, s.Router, "door1")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminStaffURL, nil, staff)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("admin kind signed with the staff secret is rejected", func() {
		t := s.T()
		dbtest.SeedAdmin(t, s.DB, "owner@macondo.test")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminStaffURL, nil, s.jwt.ForgedAdminToken(t, "owner@macondo.test"))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("expired staff token", func() {
		t := s.T()
		dbtest.SeedStaff(t, s.DB, "door1")

		w := httptest.PerformStaffRequest(t, s.Router, http.MethodGet, doorListURL, nil, s.jwt.ExpiredStaffToken(t, "door1"))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("protected routes need a credential", func() {
		t := s.T()
		for _, url := range []string{doorListURL, adminStaffURL, "/api/admin/reservations", "/api/admin/cover/tickets"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, url)
		}
	})
}
