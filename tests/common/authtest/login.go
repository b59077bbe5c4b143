//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"macondo-backend/internal/handler/dto/request"
	"macondo-backend/tests/common/dbtest"
	"macondo-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type tokenBody struct {
	Token string `json:"access_token"`
}

func LoginStaff(t *testing.T, router *gin.Engine, username, pin string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/staff/login",
		request.StaffLoginRequest{Username: username, PIN: pin}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeToken(t, w.Body.Bytes())
}

func LoginAdmin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeToken(t, w.Body.Bytes())
}

func CreateStaffAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string) string {
	t.Helper()
	dbtest.SeedStaff(t, db, username)
	return LoginStaff(t, router, username, dbtest.DefaultStaffPIN)
}

func CreateAdminAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.SeedAdmin(t, db, email)
	return LoginAdmin(t, router, email, dbtest.DefaultAdminPassword)
}

func decodeToken(t *testing.T, raw []byte) string {
	t.Helper()
	var body tokenBody
	require.NoError(t, json.Unmarshal(raw, &body))
	require.NotEmpty(t, body.Token, "login response carries no token")
	return body.Token
}
