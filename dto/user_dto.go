package dto

import "gin-accounts/models"

// PasswordPlaceholder is what every serialized user carries instead of the
// stored hash.
const PasswordPlaceholder = "********"

// UpdateUserInput applies PATCH semantics: only non-nil fields are written.
type UpdateUserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Verified *bool   `json:"verified"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Verified bool   `json:"verified"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Password: PasswordPlaceholder,
		Verified: user.Verified,
	}
}
