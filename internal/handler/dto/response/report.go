package response

import (
	"innkeeper/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OccupancyReportResponse struct {
	PeriodStart   string  `json:"periodStart"`
	PeriodEnd     string  `json:"periodEnd"`
	TotalRooms    int     `json:"totalRooms"`
	Days          int     `json:"days"`
	NightsSold    int     `json:"nightsSold"`
	Revenue       float64 `json:"revenue"`
	OccupancyRate float64 `json:"occupancyRate"`
	ADR           float64 `json:"adr"`
	RevPAR        float64 `json:"revpar"`
	Cancellations int     `json:"cancellations"`
	NoShows       int     `json:"noShows"`
}

func FromOccupancyReportView(view *queries.OccupancyReportView) *OccupancyReportResponse {
	var resp OccupancyReportResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
