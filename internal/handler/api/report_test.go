//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"innkeeper/internal/domain/reporting"
	"innkeeper/internal/handler/api"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/usecase/queries"
	"innkeeper/tests/common/httptest"
	queriesmock "innkeeper/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReportQueries
	handler     *api.ReportHandler
}

func (s *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReportQueries(s.mockCtrl)
	s.handler = api.NewReportHandler(s.mockQueries)

	s.router.GET("/reports/occupancy", s.handler.GetOccupancyReport)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) TestGetOccupancyReport() {
	base := "/reports/occupancy"

	s.Run("success: returns the aggregated report", func() {
		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().OccupancyReport(gomock.Any(), start, end).
			Return(&queries.OccupancyReportView{
				PeriodStart:   "2026-03-01",
				PeriodEnd:     "2026-03-08",
				TotalRooms:    10,
				Days:          7,
				NightsSold:    21,
				Revenue:       2520,
				OccupancyRate: 30,
				ADR:           120,
				RevPAR:        36,
				Cancellations: 1,
				NoShows:       0,
			}, nil).Times(1)

		url := base + "?start=2026-03-01&end=2026-03-08"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OccupancyReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(21, response.NightsSold)
		s.InDelta(120.0, response.ADR, 0.001)
		s.Equal(1, response.Cancellations)
	})

	s.Run("error: 400 Bad Request on a missing start date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?end=2026-03-08", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid start date")
	})

	s.Run("error: 400 Bad Request on a malformed end date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2026-03-01&end=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid end date")
	})

	s.Run("error: 400 Bad Request on an inverted period", func() {
		start := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().OccupancyReport(gomock.Any(), start, end).
			Return(nil, reporting.ErrInvalidRange).Times(1)

		url := base + "?start=2026-03-08&end=2026-03-01"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Period start must be before end")
	})
}
