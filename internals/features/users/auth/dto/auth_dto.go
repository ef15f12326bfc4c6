package dto

import (
	m "staffly_backend/internals/features/users/auth/model"
)

/* =============== REQUESTS =============== */

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

/* =============== RESPONSES =============== */

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserRole  string `json:"user_role"`
}

func FromUserModel(u m.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID.String(),
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		UserRole:  u.UserRole,
	}
}
