package handler

import "github.com/msomdec/userdesk/internal/domain"

// AddressDTO is the JSON representation of an address.
type AddressDTO struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
	State string `json:"state"`
	City  string `json:"city"`
	PIN   string `json:"pin"`
}

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	LinkedinURL string     `json:"linkedinUrl"`
	Gender      string     `json:"gender"`
	Address     AddressDTO `json:"address"`
}

func toUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		LinkedinURL: u.LinkedinURL,
		Gender:      string(u.Gender),
		Address: AddressDTO{
			Line1: u.Address.Line1,
			Line2: u.Address.Line2,
			State: u.Address.State,
			City:  u.Address.City,
			PIN:   u.Address.PIN,
		},
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	return dtos
}
