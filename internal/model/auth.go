package model

// AdminLogin represents the admin login form
type AdminLogin struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginResponse represents the backend login response
type LoginResponse struct {
	Token string `json:"token"`
}
