package user

import (
	"time"

	"fitcircle/internal/auth"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name" example:"Aysel Mammadova"`
	Email        string    `db:"email" json:"email" example:"aysel@example.com"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         auth.Role `db:"role" json:"role" swaggertype:"string" example:"MEMBER"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Aysel Mammadova"`
	Email    string `json:"email" binding:"required,email,max=100" example:"aysel@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"s3cret-pass"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"aysel@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Session is what register, login and refresh hand back to the client.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	User         *User  `json:"user"`
}
