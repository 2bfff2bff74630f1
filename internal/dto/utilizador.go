package dto

import "github.com/Ramos-bot/GestOnGo-App/internal/models"

type Profile struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func NewProfile(u *models.User) Profile {
	return Profile{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
