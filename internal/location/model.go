package location

import (
	"time"

	"github.com/google/uuid"
)

type Country struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type City struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	PostalCode string    `db:"postal_code" json:"postal_code"`
	CountryID  uuid.UUID `db:"country_id" json:"country_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type CreateCountryRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Azerbaijan"`
	Code string `json:"code" binding:"required,len=2,alpha" example:"AZ"`
}

type CreateCityRequest struct {
	Name       string    `json:"name" binding:"required,max=100" example:"Baku"`
	PostalCode string    `json:"postal_code" binding:"required,max=20" example:"AZ1000"`
	CountryID  uuid.UUID `json:"country_id" binding:"required" swaggertype:"string" example:"5b0f7c5e-1f0e-4b7a-9f0e-6c2b1d3a4e55"`
}
