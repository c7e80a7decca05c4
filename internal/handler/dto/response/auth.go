package response

import (
	"innkeeper/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Staff       *queries.AuthorizedStaffView `json:"staff"`
}
