package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a hotel employee account. Currently used for auth only.
type Staff struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStaff(email Email, passwordHash string, role Role) *Staff {
	return &Staff{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructStaff(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Staff {
	return &Staff{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Staff) ID() uuid.UUID         { return s.id }
func (s *Staff) Email() Email          { return s.email }
func (s *Staff) PasswordHash() string  { return s.passwordHash }
func (s *Staff) Role() Role            { return s.role }
func (s *Staff) LastLogin() *time.Time { return s.lastLogin }
func (s *Staff) IsActive() bool        { return s.isActive }
func (s *Staff) CreatedAt() time.Time  { return s.createdAt }
func (s *Staff) UpdatedAt() time.Time  { return s.updatedAt }
