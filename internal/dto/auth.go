package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"s3cret-pass"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

type UserDTO struct {
	ID       string `json:"id" example:"9f3c1a4e-3e6b-4c38-9d2f-1f9be1a2c001"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Role     string `json:"role" example:"user"`
}

type AuthResponseDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}
