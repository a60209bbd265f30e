package dto

import "github.com/alimikegami/sales-dashboard/product-stats-service/internal/domain"

type StatisticsResponse struct {
	Success           bool    `json:"success"`
	TotalSales        float64 `json:"totalSales"`
	TotalSoldItems    int64   `json:"totalSoldItems"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems"`
}

type SalesStatisticsResponse struct {
	Success    bool                     `json:"success"`
	Statistics []domain.PriceRangeCount `json:"statistics"`
}

type PieChartResponse struct {
	Success    bool                   `json:"success"`
	Statistics []domain.CategoryCount `json:"statistics"`
}

// TotalSalesStats mirrors the standalone statistics payload inside the
// combined response. The amount key differs from the standalone endpoint's
// totalSales; the dashboard client depends on both spellings.
type TotalSalesStats struct {
	TotalSalesAmount  float64 `json:"totalSalesAmount"`
	TotalSoldItems    int64   `json:"totalSoldItems"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems"`
}

type CombinedStats struct {
	TotalSalesStats TotalSalesStats          `json:"totalSalesStats"`
	PriceRangeStats []domain.PriceRangeCount `json:"priceRangeStats"`
	CategoryStats   []domain.CategoryCount   `json:"categoryStats"`
}

type CombinedStatsResponse struct {
	Success       bool          `json:"success"`
	CombinedStats CombinedStats `json:"combinedStats"`
}
