package api

import (
	"net/http"
	"time"

	"innkeeper/internal/domain/reporting"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Occupancy report
// @Description Aggregate occupancy, revenue, ADR and RevPAR over a date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param start query string true "Period start (YYYY-MM-DD)"
// @Param end query string true "Period end (YYYY-MM-DD, exclusive)"
// @Success 200 {object} resdto.OccupancyReportResponse
// @Failure 400 {object} map[string]string
// @Router /reports/occupancy [get]
func (h *ReportHandler) GetOccupancyReport(c *gin.Context) {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date"})
		return
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date"})
		return
	}

	view, err := h.reportQueries.OccupancyReport(c.Request.Context(), start, end)
	if err != nil {
		if errs.Is(err, reporting.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Period start must be before end"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOccupancyReportView(view))
}
