package response

import (
	"time"

	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     *string            `json:"phone,omitempty"`
	Documents []DocumentResponse `json:"documents"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

type DocumentResponse struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

func FromGuestView(view *queries.GuestView) *GuestResponse {
	var resp GuestResponse
	_ = copier.Copy(&resp, view)
	if resp.Documents == nil {
		resp.Documents = []DocumentResponse{}
	}
	return &resp
}

func FromGuestViews(views []*queries.GuestView) []*GuestResponse {
	result := make([]*GuestResponse, len(views))
	for i, view := range views {
		result[i] = FromGuestView(view)
	}
	return result
}
