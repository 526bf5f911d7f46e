package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/stayhub/backend/internal/domain/identity"
	"github.com/stayhub/backend/internal/infrastructure/auth"
)

// ProfileDTO is the API representation of a user profile
type ProfileDTO struct {
	ID                 uuid.UUID     `json:"id"`
	Email              string        `json:"email"`
	FirstName          string        `json:"first_name"`
	LastName           string        `json:"last_name"`
	Phone              string        `json:"phone,omitempty"`
	Address            string        `json:"address,omitempty"`
	City               string        `json:"city,omitempty"`
	Country            string        `json:"country,omitempty"`
	VerificationStatus string        `json:"verification_status"`
	Documents          []DocumentDTO `json:"documents"`
	CreatedAt          time.Time     `json:"created_at"`
}

// DocumentDTO is an identity document on a profile
type DocumentDTO struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	FileName   string    `json:"file_name"`
	Status     string    `json:"status"`
	ReviewNote string    `json:"review_note,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// LoginRequest authenticates a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse carries the token pair and profile
type LoginResponse struct {
	Tokens  *auth.TokenPair `json:"tokens"`
	Profile ProfileDTO      `json:"profile"`
}

// UpdateProfileRequest updates the contact fields
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

func toProfileDTO(u *identity.User) ProfileDTO {
	docs := make([]DocumentDTO, 0, len(u.Documents))
	for i := range u.Documents {
		d := &u.Documents[i]
		docs = append(docs, DocumentDTO{
			ID:         d.ID,
			Type:       d.Type,
			FileName:   d.FileName,
			Status:     string(d.Status),
			ReviewNote: d.ReviewNote,
			UploadedAt: d.CreatedAt,
		})
	}
	return ProfileDTO{
		ID:                 u.ID,
		Email:              u.Email,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Phone:              u.Phone,
		Address:            u.Address,
		City:               u.City,
		Country:            u.Country,
		VerificationStatus: string(u.VerificationStatus),
		Documents:          docs,
		CreatedAt:          u.CreatedAt,
	}
}
