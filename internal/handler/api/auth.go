package api

import (
	"net/http"

	reqdto "macondo-backend/internal/handler/dto/request"
	resdto "macondo-backend/internal/handler/dto/response"
	"macondo-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Staff login
// @Description Exchange username and PIN for the door scanner credential
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.StaffLoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/staff/login [post]
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req reqdto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.StaffLogin(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.AdminLogin(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}
