package dto

// LoginRequest defines the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and basic member details.
type LoginResponse struct {
	Token      string             `json:"token"`
	TeamMember TeamMemberResponse `json:"teamMember"`
}
