package api

import (
	"net/http"

	reqdto "innkeeper/internal/handler/dto/request"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestCommands commands.GuestCommands
	guestQueries  queries.GuestQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{
		guestCommands: guestCommands,
		guestQueries:  guestQueries,
	}
}

// @Summary Create guest
// @Description Register a new guest record
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGuestRequest true "Guest request"
// @Success 201 {object} resdto.GuestResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests [post]
func (h *GuestHandler) CreateGuest(c *gin.Context) {
	var req reqdto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.guestCommands.CreateGuest(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Guest email already exists",
			})
		case errs.Is(err, commands.ErrGuestValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}

// @Summary List guests
// @Description List all guest records
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GuestResponse
// @Router /guests [get]
func (h *GuestHandler) ListGuests(c *gin.Context) {
	views, err := h.guestQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestViews(views))
}

// @Summary Get guest
// @Description Get guest with documents by ID
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

// @Summary Add guest document
// @Description Attach an identity document to a guest
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body reqdto.AddDocumentRequest true "Document request"
// @Success 201 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /guests/{id}/documents [post]
func (h *GuestHandler) AddDocument(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.guestCommands.AddDocument(c.Request.Context(), id, req); err != nil {
		switch {
		case errs.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errs.Is(err, commands.ErrDuplicateDocument):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Document already registered",
			})
		case errs.Is(err, commands.ErrGuestValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Document validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.guestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuestView(view))
}
