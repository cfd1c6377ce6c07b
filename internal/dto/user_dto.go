package dto

import "github.com/google/uuid"

// Body fields are pointers so a missing key can be told apart from an empty string.
type CreateUserRequest struct {
	Name     *string `json:"name" validate:"required,max=80"`
	Password *string `json:"password" validate:"required,max=80"`
}

type SignInRequest struct {
	Name     *string `json:"name" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

type UserSummary struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Password string    `json:"password"`
}

type ListUsersResponse struct {
	Users []*UserSummary `json:"users"`
}

type GetUserResponse struct {
	User *UserResponse `json:"user"`
}
