package request

import (
	"innkeeper/internal/domain/guest"
)

type CreateGuestRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone,omitempty"`
}

func (r CreateGuestRequest) ToDomain() (*guest.Guest, error) {
	email, err := guest.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	return guest.NewGuest(r.Name, email, r.Phone)
}

type AddDocumentRequest struct {
	Type   string `json:"type" binding:"required,oneof=NATIONAL_ID PASSPORT"`
	Number string `json:"number" binding:"required"`
}
