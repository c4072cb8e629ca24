package dto

import "anoa.com/binbeacon/internal/entity"

type RegisterUserInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=resident collector authority"`
}

// RegisterProfileInput carries the role-variant profile fields. Only the
// fields matching the chosen role are read.
type RegisterProfileInput struct {
	// resident
	DoorNumber string   `json:"doorNumber"`
	Address    string   `json:"address"`
	WardNumber string   `json:"wardNumber"`
	HouseCode  string   `json:"houseId"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`

	// collector
	EmployeeID   string `json:"employeeId"`
	AreaAssigned string `json:"areaAssigned"`

	// authority
	AuthorityName string `json:"authorityName"`
	Email         string `json:"email"`
}

type RegisterInput struct {
	User    RegisterUserInput     `json:"user" binding:"required"`
	Profile *RegisterProfileInput `json:"profile"`
}

type LoginInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterResponse struct {
	User    *entity.User `json:"user"`
	Profile interface{}  `json:"profile"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *entity.User `json:"user"`
	Profile     interface{}  `json:"profile"`
}
