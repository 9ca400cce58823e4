package models

// LoginDTO carries the credential pair presented at login.
// It is never persisted.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdministratorDTO is the request payload for creating an administrator.
// Field order matters: validation messages are reported in this order.
type AdministratorDTO struct {
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"required"`
	Profile  string `json:"profile" validate:"required,oneof=Admin Editor"`
}

// VehicleDTO is the request payload for creating or updating a vehicle
type VehicleDTO struct {
	Name  string `json:"name" validate:"required"`
	Brand string `json:"brand" validate:"required"`
	Year  int    `json:"year" validate:"gte=1950"`
}

// AdministratorView is the response shape for an administrator,
// omitting the password
type AdministratorView struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

// AdministratorLogged is the successful login response
type AdministratorLogged struct {
	Email   string `json:"email"`
	Profile string `json:"profile"`
	Token   string `json:"token"`
}
