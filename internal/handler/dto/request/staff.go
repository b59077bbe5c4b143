package request

type CreateStaffRequest struct {
	Username string `json:"username" binding:"required"`
	PIN      string `json:"pin" binding:"required"`
}

type ResetStaffPINRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type SetStaffActiveRequest struct {
	Active bool `json:"active"`
}
