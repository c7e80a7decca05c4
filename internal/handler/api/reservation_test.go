//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
	"innkeeper/internal/handler/api"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"
	"innkeeper/tests/common/builder"
	"innkeeper/tests/common/httptest"
	"innkeeper/tests/common/testutil"
	commandsmock "innkeeper/tests/mock/commands"
	queriesmock "innkeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations", s.handler.ListReservations)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.POST("/reservations/:id/checkin", s.handler.CheckIn)
	s.router.POST("/reservations/:id/checkout", s.handler.CheckOut)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
	s.router.POST("/reservations/:id/charges", s.handler.AddExtraCharge)
	s.router.POST("/reservations/:id/payments", s.handler.RecordPayment)
	s.router.GET("/reservations/:id/statement", s.handler.GetStatement)
	s.router.POST("/reservations/no-show-sweep", s.handler.RunNoShowSweep)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with the stored view", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Status, response.Status)
		s.Equal(returnView.CheckIn, response.CheckIn)
	})

	s.Run("error: 404 Not Found when the room does not exist", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 404 Not Found when the guest does not exist", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrGuestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Guest not found")
	})

	s.Run("error: 409 Conflict when the room is not bookable", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not open for booking")
	})

	s.Run("error: 409 Conflict when the dates overlap an existing booking", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
			Return(uuid.Nil, errs.Mark(errs.New("overlap"), commands.ErrRoomConflict)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
			Return(uuid.Nil, commands.ErrReservationValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "validation failed")
	})

	s.Run("error: 400 Bad Request on malformed payloads", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing guest_id", mutate: testutil.Field("guest_id", nil)},
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "bad check_in format", mutate: testutil.Field("check_in", "03/02/2026")},
			{name: "zero occupants", mutate: testutil.Field("occupants", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	b := builder.NewReservationBuilder()

	s.Run("success: returns all reservations without filters", func() {
		items := []*queries.ReservationListItem{
			{ID: uuid.New(), GuestID: b.GuestID, RoomID: b.RoomID, Status: "CONFIRMED"},
			{ID: uuid.New(), GuestID: b.GuestID, RoomID: b.RoomID, Status: "CHECKOUT"},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), nil, nil, nil).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes parsed filters through", func() {
		status := "CONFIRMED"
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, guestID, roomID *uuid.UUID, st *string) ([]*queries.ReservationListItem, error) {
				s.Require().NotNil(guestID)
				s.Require().NotNil(st)
				s.Equal(b.GuestID, *guestID)
				s.Nil(roomID)
				s.Equal(status, *st)
				return []*queries.ReservationListItem{}, nil
			}).Times(1)

		url := "/reservations?guest_id=" + b.GuestID.String() + "&status=" + status
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown status value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?status=PARKED", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status value")
	})

	s.Run("error: 400 Bad Request on malformed guest_id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?guest_id=not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid guest_id format")
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 OK with the view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.RoomNumber, response.RoomNumber)
	})

	s.Run("error: 404 Not Found for an unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errs.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestCheckIn() {
	returnView := builder.NewReservationBuilder().BuildView()
	returnView.Status = "CHECKIN"

	s.Run("success: returns 200 OK with the updated view", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), returnView.ID).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+returnView.ID.String()+"/checkin", nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CHECKIN", response.Status)
	})

	s.Run("error: 409 Conflict with both statuses on a bad transition", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id).
			Return(&reservation.TransitionError{
				From:     reservation.StatusCheckOut,
				Required: reservation.StatusConfirmed,
				Op:       "check-in",
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/checkin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid lifecycle transition")
		s.Contains(rec.Body.String(), "CHECKOUT")
		s.Contains(rec.Body.String(), "CONFIRMED")
	})

	s.Run("error: 404 Not Found for an unknown id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/checkin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestCheckOut() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/checkout"

	s.Run("success: returns 200 OK with the settled statement", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id).
			Return(&commands.CheckOutResult{
				Statement: reservation.Statement{
					RoomCharge:  money.FromFloat(200),
					ExtrasTotal: money.FromFloat(30),
					TotalDue:    money.FromFloat(230),
					TotalPaid:   money.FromFloat(230),
					Balance:     money.FromFloat(0),
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.StatementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ReservationID)
		s.Equal("CHECKOUT", response.Status)
		s.InDelta(230.0, response.TotalDue, 0.001)
		s.InDelta(0.0, response.Balance, 0.001)
	})

	s.Run("error: 402 Payment Required with the outstanding amount", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id).
			Return(nil, &reservation.InsufficientPaymentError{Shortfall: money.FromFloat(50)}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusPaymentRequired, "Outstanding balance")
		s.Contains(rec.Body.String(), "50")
	})

	s.Run("error: 409 Conflict when not checked in", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id).
			Return(nil, &reservation.TransitionError{
				From:     reservation.StatusPending,
				Required: reservation.StatusCheckIn,
				Op:       "check-out",
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid lifecycle transition")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: early cancellation carries no penalty", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(&commands.CancelResult{Penalty: money.FromFloat(0), PenaltyApplied: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CANCELED", response.Status)
		s.False(response.PenaltyApplied)
	})

	s.Run("success: late cancellation reports the penalty", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(&commands.CancelResult{Penalty: money.FromFloat(100), PenaltyApplied: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.PenaltyApplied)
		s.InDelta(100.0, response.Penalty, 0.001)
	})

	s.Run("error: 409 Conflict when already closed", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).
			Return(nil, &reservation.TransitionError{
				From:     reservation.StatusCanceled,
				Required: reservation.StatusConfirmed,
				Op:       "cancel",
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid lifecycle transition")
	})
}

func (s *ReservationHandlerTestSuite) TestAddExtraCharge() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/charges"
	reqBody := map[string]any{"description": "Minibar", "amount": 12.50}

	s.Run("success: returns 201 Created with the charge id", func() {
		chargeID := uuid.New()
		s.mockCommands.EXPECT().AddExtraCharge(gomock.Any(), id, gomock.Any()).
			Return(chargeID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), chargeID.String())
	})

	s.Run("error: 409 Conflict on a closed reservation", func() {
		s.mockCommands.EXPECT().AddExtraCharge(gomock.Any(), id, gomock.Any()).
			Return(uuid.Nil, reservation.ErrReservationClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Reservation is closed")
	})

	s.Run("error: 404 Not Found for an unknown reservation", func() {
		s.mockCommands.EXPECT().AddExtraCharge(gomock.Any(), id, gomock.Any()).
			Return(uuid.Nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 400 Bad Request when amount is not positive", func() {
		body := map[string]any{"description": "Minibar", "amount": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ReservationHandlerTestSuite) TestRecordPayment() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/payments"
	reqBody := map[string]any{"method": "CARD", "amount": 150.00}

	s.Run("success: returns 201 Created with the payment id", func() {
		paymentID := uuid.New()
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), id, gomock.Any()).
			Return(paymentID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), paymentID.String())
	})

	s.Run("error: 404 Not Found for an unknown reservation", func() {
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), id, gomock.Any()).
			Return(uuid.Nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 422 Unprocessable Entity on domain validation failure", func() {
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), id, gomock.Any()).
			Return(uuid.Nil, commands.ErrReservationValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Payment validation failed")
	})
}

func (s *ReservationHandlerTestSuite) TestGetStatement() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/statement"

	s.Run("success: returns the reconciled statement", func() {
		s.mockQueries.EXPECT().GetStatement(gomock.Any(), id).
			Return(&queries.StatementView{
				ReservationID: id,
				Status:        "CHECKIN",
				RoomCharge:    200,
				ExtrasTotal:   30,
				TotalDue:      230,
				TotalPaid:     100,
				Balance:       -130,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.StatementResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ReservationID)
		s.InDelta(-130.0, response.Balance, 0.001)
	})

	s.Run("error: 404 Not Found for an unknown reservation", func() {
		s.mockQueries.EXPECT().GetStatement(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errs.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestRunNoShowSweep() {
	s.Run("success: reports how many reservations were marked", func() {
		s.mockCommands.EXPECT().RunNoShowSweep(gomock.Any()).
			Return(3, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/no-show-sweep", nil, "")

		var response resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.MarkedNoShow)
	})
}
