package api

import (
	"strings"

	"github.com/coli-team/coli-web/internal/domain"
)

type userDTO struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile,omitempty"`
}

func (u userDTO) toDomain() domain.User {
	return domain.User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Profile: strings.TrimSpace(u.Profile),
	}
}

type teamDTO struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Profile     string    `json:"profile,omitempty"`
	Description *string   `json:"description,omitempty"`
	Creator     *userDTO  `json:"creator,omitempty"`
	Members     []userDTO `json:"members,omitempty"`
}

type signUpResponse struct {
	Data struct {
		User *userDTO `json:"user"`
	} `json:"data"`
	Token string `json:"token"`
}

type teamsResponse struct {
	Data struct {
		Teams []teamDTO `json:"teams"`
	} `json:"data"`
}
