//go:build unit || e2e

package builder

import (
	"time"

	"innkeeper/internal/domain/guest"
	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	Name  string
	Email string
	Phone string
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "+44 20 7946 0958",
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) WithName(name string) *GuestBuilder {
	b.Name = name
	return b
}

func (b *GuestBuilder) WithEmail(email string) *GuestBuilder {
	b.Email = email
	return b
}

func (b *GuestBuilder) WithPhone(phone string) *GuestBuilder {
	b.Phone = phone
	return b
}

func (b *GuestBuilder) BuildDomain() (*guest.Guest, error) {
	email, err := guest.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return guest.NewGuest(b.Name, email, b.Phone)
}

func (b *GuestBuilder) BuildCreateRequestDTO() reqdto.CreateGuestRequest {
	return reqdto.CreateGuestRequest{
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *GuestBuilder) BuildView() *queries.GuestView {
	now := time.Now()
	var phone *string
	if b.Phone != "" {
		phone = &b.Phone
	}
	return &queries.GuestView{
		ID:        uuid.New(),
		Name:      b.Name,
		Email:     b.Email,
		Phone:     phone,
		Documents: []queries.DocumentView{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
