//go:build unit

package room_test

import (
	"testing"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/room"
	"innkeeper/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, rm)

		assert.NotEqual(t, uuid.Nil, rm.ID())
		assert.Equal(t, 101, rm.Number())
		assert.Equal(t, room.TypeStandard, rm.RoomType())
		assert.Equal(t, room.StatusAvailable, rm.Status())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.RoomBuilder)
			errIs  error
		}{
			{
				name:   "zero room number",
				mutate: func(b *builder.RoomBuilder) { b.Number = 0 },
				errIs:  room.ErrInvalidNumber,
			},
			{
				name:   "unknown room type",
				mutate: func(b *builder.RoomBuilder) { b.Type = "SUITE" },
				errIs:  room.ErrInvalidType,
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.RoomBuilder) { b.Capacity = 0 },
				errIs:  room.ErrInvalidCapacity,
			},
			{
				name:   "single capacity is valid",
				mutate: func(b *builder.RoomBuilder) { b.Capacity = 1 },
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()
				if c.errIs != nil {
					assert.ErrorIs(t, err, c.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("non-positive base rate", func(t *testing.T) {
		_, err := room.NewRoom(101, room.TypeStandard, 2, money.NewMoney(0))
		assert.ErrorIs(t, err, room.ErrInvalidBaseRate)
	})
}

func TestRoomMutations(t *testing.T) {
	newRoom := func(t *testing.T) *room.Room {
		t.Helper()
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		return rm
	}

	t.Run("set capacity validates", func(t *testing.T) {
		rm := newRoom(t)
		assert.ErrorIs(t, rm.SetCapacity(0), room.ErrInvalidCapacity)
		assert.Equal(t, 2, rm.Capacity())

		require.NoError(t, rm.SetCapacity(4))
		assert.Equal(t, 4, rm.Capacity())
	})

	t.Run("set base rate validates", func(t *testing.T) {
		rm := newRoom(t)
		assert.ErrorIs(t, rm.SetBaseRate(money.NewMoney(-1)), room.ErrInvalidBaseRate)

		require.NoError(t, rm.SetBaseRate(money.FromFloat(150.00)))
		assert.Equal(t, money.FromFloat(150.00), rm.BaseRate())
	})

	t.Run("set status rejects unknown values", func(t *testing.T) {
		rm := newRoom(t)
		assert.ErrorIs(t, rm.SetStatus(room.Status("CLOSED")), room.ErrInvalidStatus)

		require.NoError(t, rm.SetStatus(room.StatusMaintenance))
		assert.Equal(t, room.StatusMaintenance, rm.Status())
	})

	t.Run("occupy and release", func(t *testing.T) {
		rm := newRoom(t)
		rm.MarkOccupied()
		assert.Equal(t, room.StatusOccupied, rm.Status())
		rm.Release()
		assert.Equal(t, room.StatusAvailable, rm.Status())
	})
}

func TestLess(t *testing.T) {
	mk := func(number int, roomType room.Type) *room.Room {
		rm, err := room.NewRoom(number, roomType, 2, money.FromFloat(100))
		require.NoError(t, err)
		return rm
	}

	standard := mk(301, room.TypeStandard)
	double := mk(101, room.TypeDouble)
	luxury := mk(1, room.TypeLuxury)

	assert.True(t, room.Less(standard, double), "type outranks number")
	assert.True(t, room.Less(double, luxury))
	assert.False(t, room.Less(luxury, standard))

	a := mk(101, room.TypeStandard)
	b := mk(102, room.TypeStandard)
	assert.True(t, room.Less(a, b), "same type orders by number")
	assert.False(t, room.Less(b, a))
}
