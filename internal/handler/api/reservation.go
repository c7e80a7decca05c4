package api

import (
	"errors"
	"net/http"

	"innkeeper/internal/domain/money"
	"innkeeper/internal/domain/reservation"
	reqdto "innkeeper/internal/handler/dto/request"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a room for a guest over a date range
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.reservationCommands.CreateReservation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errs.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errs.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not open for booking",
			})
		case errs.Is(err, commands.ErrRoomConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room already booked for the requested dates",
			})
		case errs.Is(err, commands.ErrReservationValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description List reservations with optional guest, room and status filters
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param guest_id query string false "Filter by guest"
// @Param room_id query string false "Filter by room"
// @Param status query string false "Filter by status"
// @Success 200 {array} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var guestID, roomID *uuid.UUID
	var status *string

	if s := c.Query("guest_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest_id format"})
			return
		}
		guestID = &id
	}
	if s := c.Query("room_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room_id format"})
			return
		}
		roomID = &id
	}
	if s := c.Query("status"); s != "" {
		if _, err := reservation.NewStatus(s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
			return
		}
		status = &s
	}

	items, err := h.reservationQueries.List(c.Request.Context(), guestID, roomID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}

// @Summary Get reservation
// @Description Get reservation by ID with payments and extra charges
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Check in
// @Description Move a confirmed reservation to CHECKIN
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/checkin [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.reservationCommands.CheckIn(c.Request.Context(), id); err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Check out
// @Description Settle the bill and move a CHECKIN reservation to CHECKOUT
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.StatementResponse
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/checkout [post]
func (h *ReservationHandler) CheckOut(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.reservationCommands.CheckOut(c.Request.Context(), id)
	if err != nil {
		var insufficient *reservation.InsufficientPaymentError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error":       "Outstanding balance must be paid before checkout",
				"outstanding": insufficient.Shortfall.Float64(),
			})
			return
		}
		h.respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckOutResult(id, result.Statement))
}

// @Summary Cancel reservation
// @Description Cancel a reservation, applying the late-cancellation penalty when due
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.reservationCommands.Cancel(c.Request.Context(), id)
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCancelResult(id, result))
}

// @Summary Add extra charge
// @Description Attach a charge to an open reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.AddExtraChargeRequest true "Charge request"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/charges [post]
func (h *ReservationHandler) AddExtraCharge(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.AddExtraChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	chargeID, err := h.reservationCommands.AddExtraCharge(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errs.Is(err, reservation.ErrReservationClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is closed",
			})
		case errs.Is(err, reservation.ErrEmptyDescription),
			errs.Is(err, money.ErrNonPositiveAmount),
			errs.Is(err, commands.ErrReservationValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Charge validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": chargeID})
}

// @Summary Record payment
// @Description Record a payment against a reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment request"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/payments [post]
func (h *ReservationHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	paymentID, err := h.reservationCommands.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errs.Is(err, reservation.ErrEmptyMethod),
			errs.Is(err, money.ErrNonPositiveAmount),
			errs.Is(err, commands.ErrReservationValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": paymentID})
}

// @Summary Get billing statement
// @Description Reconcile charges and payments for a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.StatementResponse
// @Failure 404 {object} map[string]string
// @Router /reservations/{id}/statement [get]
func (h *ReservationHandler) GetStatement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.GetStatement(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatementView(view))
}

// @Summary Run no-show sweep
// @Description Mark overdue confirmed reservations as NO_SHOW
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /reservations/no-show-sweep [post]
func (h *ReservationHandler) RunNoShowSweep(c *gin.Context) {
	count, err := h.reservationCommands.RunNoShowSweep(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.SweepResponse{MarkedNoShow: count})
}

func (h *ReservationHandler) respondLifecycleError(c *gin.Context, err error) {
	var transition *reservation.TransitionError
	switch {
	case errs.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{
			"error":           "Invalid lifecycle transition",
			"current_status":  transition.From.String(),
			"required_status": transition.Required.String(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
