//go:build unit

package staff_test

import (
	"testing"

	"innkeeper/internal/domain/staff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	email, err := staff.NewEmail("desk@example.com")
	require.NoError(t, err)

	s := staff.NewStaff(email, "$2a$10$hash", staff.RoleFrontDesk)
	require.NotNil(t, s)

	assert.NotEqual(t, uuid.Nil, s.ID())
	assert.Equal(t, "desk@example.com", s.Email().Value())
	assert.Equal(t, staff.RoleFrontDesk, s.Role())
	assert.True(t, s.IsActive())
	assert.Nil(t, s.LastLogin())
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		creds, err := staff.NewCredentials("desk@example.com", "secretpass")
		require.NoError(t, err)
		assert.Equal(t, "desk@example.com", creds.Email().Value())
		assert.Equal(t, "secretpass", creds.Password().Value())
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := staff.NewCredentials("not-an-email", "secretpass")
		assert.ErrorIs(t, err, staff.ErrInvalidEmail)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := staff.NewCredentials("desk@example.com", "short")
		assert.ErrorIs(t, err, staff.ErrPasswordTooWeak)
	})
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{in: "front_desk", valid: true},
		{in: "admin", valid: true},
		{in: "manager", valid: false},
		{in: "", valid: false},
		{in: "ADMIN", valid: false},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			role, err := staff.NewRole(c.in)
			if c.valid {
				require.NoError(t, err)
				assert.Equal(t, c.in, role.String())
			} else {
				assert.ErrorIs(t, err, staff.ErrInvalidRole)
			}
		})
	}
}
