package service

import (
	"context"

	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/dto"
	pkgdto "github.com/alimikegami/sales-dashboard/product-stats-service/pkg/dto"
)

type ProductService interface {
	SeedProducts(ctx context.Context) (err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (responsePayload dto.ProductListResponse, err error)
	GetStatistics(ctx context.Context, month int) (responsePayload dto.StatisticsResponse, err error)
	GetSalesStatistics(ctx context.Context, month int) (responsePayload dto.SalesStatisticsResponse, err error)
	GetPieChart(ctx context.Context, month int) (responsePayload dto.PieChartResponse, err error)
	GetCombinedStats(ctx context.Context, month int) (responsePayload dto.CombinedStatsResponse, err error)
}
