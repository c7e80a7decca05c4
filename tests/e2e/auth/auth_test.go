//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"innkeeper/internal/domain/staff"
	"innkeeper/internal/handler/dto/request"
	"innkeeper/tests/common/authtest"
	"innkeeper/tests/common/dbtest"
	"innkeeper/tests/common/httptest"
	"innkeeper/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
	roomsURL   = "/api/rooms"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestStaff(s.T(), s.DB, "admin@example.com", string(staff.RoleAdmin))
	dbtest.CreateTestStaff(s.T(), s.DB, "desk@example.com", string(staff.RoleFrontDesk))
	dbtest.CreateTestStaff(s.T(), s.DB, "inactive@example.com", string(staff.RoleAdmin))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE staff_users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "admin@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown account", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "admin@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive account", email: "inactive@example.com", password: "password123", expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "admin@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie)
				require.NotEmpty(t, accessCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: returns the logged-in staff user", func() {
		t := s.T()

		token := authtest.LoginStaff(t, s.Router, "admin@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "admin@example.com")
	})

	s.Run("Error case: rejects requests without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("Normal case: issues a new token pair from the cookie", func() {
		t := s.T()

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "admin@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		refreshCookie := httptest.ExtractCookie(lw, "refresh_token")
		require.NotNil(t, refreshCookie)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{refreshCookie}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "access_token")
	})

	s.Run("Error case: rejects a garbage token", func() {
		t := s.T()

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{{Name: "refresh_token", Value: "garbage"}}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestRoleEnforcement() {
	s.Run("Error case: front desk staff cannot change room status", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 301, "STANDARD", 2, 10000)
		token := authtest.LoginStaff(t, s.Router, "desk@example.com", "password123")

		body := map[string]any{"status": "MAINTENANCE"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/"+roomID.String()+"/status", body, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Normal case: admins can change room status", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 302, "STANDARD", 2, 10000)
		token := authtest.LoginStaff(t, s.Router, "admin@example.com", "password123")

		body := map[string]any{"status": "MAINTENANCE"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, roomsURL+"/"+roomID.String()+"/status", body, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})
}
