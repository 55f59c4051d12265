package dto

import (
	"github.com/bantayan/disaster-report-api/internal/models"
)

// RegisterRequest accepts the display name under either key; existing
// clients are split between "username" and "full_name".
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	FullName string `json:"full_name" form:"full_name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
}

// DisplayName returns whichever name field the client populated.
func (r RegisterRequest) DisplayName() string {
	if r.Username != "" {
		return r.Username
	}
	return r.FullName
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UserDTO is the public view of a user; the password hash never leaves the
// model layer.
type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type LoginResponse struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
