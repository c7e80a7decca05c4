//go:build unit

package guest_test

import (
	"testing"

	"innkeeper/internal/domain/guest"
	"innkeeper/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		g, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, g)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, "Ada Lovelace", g.Name())
		assert.Equal(t, "ada@example.com", g.Email().Value())
		assert.Empty(t, g.Documents())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		g, err := builder.NewGuestBuilder().WithName("  Grace Hopper  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", g.Name())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := builder.NewGuestBuilder().WithName("   ").BuildDomain()
		assert.ErrorIs(t, err, guest.ErrEmptyName)
	})

	t.Run("phone is optional", func(t *testing.T) {
		g, err := builder.NewGuestBuilder().WithPhone("").BuildDomain()
		require.NoError(t, err)
		assert.Empty(t, g.Phone())
	})
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		valid bool
	}{
		{name: "plain address", in: "ada@example.com", valid: true},
		{name: "plus tag", in: "ada+tag@example.com", valid: true},
		{name: "surrounding whitespace trimmed", in: "  ada@example.com  ", valid: true},
		{name: "missing at sign", in: "ada.example.com", valid: false},
		{name: "missing tld", in: "ada@example", valid: false},
		{name: "empty", in: "", valid: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := guest.NewEmail(c.in)
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, guest.ErrInvalidEmail)
			}
		})
	}
}

func TestAddDocument(t *testing.T) {
	newGuest := func(t *testing.T) *guest.Guest {
		t.Helper()
		g, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)
		return g
	}

	t.Run("valid document is appended", func(t *testing.T) {
		g := newGuest(t)

		doc, err := g.AddDocument(guest.DocumentPassport, "P1234567")
		require.NoError(t, err)
		assert.Equal(t, guest.DocumentPassport, doc.Type())
		assert.Equal(t, "P1234567", doc.Number())
		assert.Len(t, g.Documents(), 1)
	})

	t.Run("unknown document type rejected", func(t *testing.T) {
		g := newGuest(t)

		_, err := g.AddDocument(guest.DocumentType("DRIVERS_LICENSE"), "D123")
		assert.ErrorIs(t, err, guest.ErrInvalidDocument)
		assert.Empty(t, g.Documents())
	})

	t.Run("blank number rejected", func(t *testing.T) {
		g := newGuest(t)

		_, err := g.AddDocument(guest.DocumentNationalID, "   ")
		assert.ErrorIs(t, err, guest.ErrEmptyDocumentValue)
	})

	t.Run("documents accumulate", func(t *testing.T) {
		g := newGuest(t)

		_, err := g.AddDocument(guest.DocumentNationalID, "ID-1")
		require.NoError(t, err)
		_, err = g.AddDocument(guest.DocumentPassport, "P-1")
		require.NoError(t, err)
		assert.Len(t, g.Documents(), 2)
	})
}
