package handler

import (
	"github.com/shopor/catalog-api/internal/core/domain"
	"github.com/shopor/catalog-api/internal/core/ports"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin creator consumer"`
}

// loginRequest carries no validation tags: a missing field simply fails the
// credential match and returns the same 401 as a wrong password.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	User   *domain.User `json:"user"`
}

type loginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

// itemRequest accepts every caller-settable item field. Id and createdBy are
// server-assigned and ignored if sent. Field presence is deliberately not
// validated: clients may create sparse items.
type itemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

func (r itemRequest) toInput() ports.ItemInput {
	return ports.ItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Image:       r.Image,
	}
}

type itemResponse struct {
	Message string       `json:"message"`
	Item    *domain.Item `json:"item,omitempty"`
}
