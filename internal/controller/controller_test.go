package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/domain"
	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/dto"
	pkgdto "github.com/alimikegami/sales-dashboard/product-stats-service/pkg/dto"
	"github.com/alimikegami/sales-dashboard/product-stats-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	seedErr      error
	listResp     dto.ProductListResponse
	listErr      error
	statsResp    dto.StatisticsResponse
	statsErr     error
	salesResp    dto.SalesStatisticsResponse
	salesErr     error
	pieResp      dto.PieChartResponse
	pieErr       error
	combinedResp dto.CombinedStatsResponse
	combinedErr  error

	calls      int
	lastFilter pkgdto.Filter
	lastMonth  int
}

func (s *stubService) SeedProducts(ctx context.Context) error {
	s.calls++
	return s.seedErr
}

func (s *stubService) GetProducts(ctx context.Context, filter pkgdto.Filter) (dto.ProductListResponse, error) {
	s.calls++
	s.lastFilter = filter
	return s.listResp, s.listErr
}

func (s *stubService) GetStatistics(ctx context.Context, month int) (dto.StatisticsResponse, error) {
	s.calls++
	s.lastMonth = month
	return s.statsResp, s.statsErr
}

func (s *stubService) GetSalesStatistics(ctx context.Context, month int) (dto.SalesStatisticsResponse, error) {
	s.calls++
	s.lastMonth = month
	return s.salesResp, s.salesErr
}

func (s *stubService) GetPieChart(ctx context.Context, month int) (dto.PieChartResponse, error) {
	s.calls++
	s.lastMonth = month
	return s.pieResp, s.pieErr
}

func (s *stubService) GetCombinedStats(ctx context.Context, month int) (dto.CombinedStatsResponse, error) {
	s.calls++
	s.lastMonth = month
	return s.combinedResp, s.combinedErr
}

func setupTestServer(svc *stubService) *echo.Echo {
	e := echo.New()
	g := e.Group("/product")
	CreateProductController(g, svc)
	return e
}

func doRequest(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestMonthValidationRejectedBeforeService(t *testing.T) {
	testCases := []struct {
		Name            string
		Target          string
		ExpectedMessage string
	}{
		{Name: "statistics out of range", Target: "/product/statistics?month=13", ExpectedMessage: errs.ErrInvalidMonth.Error()},
		{Name: "statistics missing", Target: "/product/statistics", ExpectedMessage: errs.ErrMonthRequired.Error()},
		{Name: "statistics non-numeric", Target: "/product/statistics?month=march", ExpectedMessage: errs.ErrInvalidMonth.Error()},
		{Name: "sales statistics out of range", Target: "/product/sales-statistics?month=0", ExpectedMessage: errs.ErrInvalidMonth.Error()},
		{Name: "pie chart missing", Target: "/product/pie_chart", ExpectedMessage: errs.ErrMonthRequired.Error()},
		{Name: "pie chart invalid", Target: "/product/pie_chart?month=99", ExpectedMessage: errs.ErrInvalidMonth.Error()},
		{Name: "combined stats missing", Target: "/product/combined-stats", ExpectedMessage: errs.ErrMonthRequired.Error()},
		{Name: "product listing invalid month", Target: "/product/getProduct?month=13", ExpectedMessage: errs.ErrInvalidMonth.Error()},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			svc := &stubService{}
			e := setupTestServer(svc)

			rec := doRequest(e, tc.Target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls, "no query may run for invalid input")

			body := decodeEnvelope(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.ExpectedMessage, body["message"])
		})
	}
}

func TestGetProductsPassesTypedFilter(t *testing.T) {
	svc := &stubService{
		listResp: dto.ProductListResponse{
			Success:       true,
			Page:          2,
			PerPage:       5,
			TotalPages:    4,
			TotalProducts: 17,
			Products:      []domain.Product{{Title: "Wallet"}},
		},
	}
	e := setupTestServer(svc)

	rec := doRequest(e, "/product/getProduct?search=wallet&page=2&per_page=5&month=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pkgdto.Filter{Search: "wallet", Page: 2, PerPage: 5, Month: 3}, svc.lastFilter)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(17), body["total_products"])
	assert.Equal(t, float64(4), body["total_pages"])
}

func TestGetProductsNotFound(t *testing.T) {
	svc := &stubService{listErr: errs.ErrNoProducts}
	e := setupTestServer(svc)

	rec := doRequest(e, "/product/getProduct")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, errs.ErrNoProducts.Error(), body["message"])
}

func TestGetStatisticsSuccess(t *testing.T) {
	svc := &stubService{
		statsResp: dto.StatisticsResponse{
			Success:           true,
			TotalSales:        400.5,
			TotalSoldItems:    3,
			TotalNotSoldItems: 7,
		},
	}
	e := setupTestServer(svc)

	rec := doRequest(e, "/product/statistics?month=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastMonth)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 400.5, body["totalSales"])
	assert.Equal(t, float64(3), body["totalSoldItems"])
	assert.Equal(t, float64(7), body["totalNotSoldItems"])
}

func TestGetSalesStatisticsFixedBuckets(t *testing.T) {
	stats := make([]domain.PriceRangeCount, 0, len(domain.PriceBuckets))
	for _, bucket := range domain.PriceBuckets {
		stats = append(stats, domain.PriceRangeCount{PriceRange: bucket.Label})
	}

	svc := &stubService{
		salesResp: dto.SalesStatisticsResponse{Success: true, Statistics: stats},
	}
	e := setupTestServer(svc)

	rec := doRequest(e, "/product/sales-statistics?month=6")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	statistics, ok := body["statistics"].([]interface{})
	require.True(t, ok)
	require.Len(t, statistics, 10)

	first, ok := statistics[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "0 - 100", first["priceRange"])
}

func TestGetPieChartEmptyMonth(t *testing.T) {
	svc := &stubService{pieErr: errs.ErrNoItemsFound}
	e := setupTestServer(svc)

	rec := doRequest(e, "/product/pie_chart?month=5")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, errs.ErrNoItemsFound.Error(), body["message"])
}

func TestGetCombinedStatsEnvelope(t *testing.T) {
	svc := &stubService{
		combinedResp: dto.CombinedStatsResponse{
			Success: true,
			CombinedStats: dto.CombinedStats{
				TotalSalesStats: dto.TotalSalesStats{TotalSalesAmount: 250, TotalSoldItems: 2, TotalNotSoldItems: 8},
				PriceRangeStats: []domain.PriceRangeCount{{PriceRange: "101 - 200", TotalSoldItems: 2}},
				CategoryStats:   []domain.CategoryCount{{Category: "clothing", ItemCount: 2}},
			},
		},
	}
	e := setupTestServer(svc)

	rec := doRequest(e, "/product/combined-stats?month=4")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeEnvelope(t, rec)
	combined, ok := body["combinedStats"].(map[string]interface{})
	require.True(t, ok)

	totals, ok := combined["totalSalesStats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(250), totals["totalSalesAmount"])
	assert.Contains(t, combined, "priceRangeStats")
	assert.Contains(t, combined, "categoryStats")
}

func TestSeedProducts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{}
		e := setupTestServer(svc)

		rec := doRequest(e, "/product/init_db")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Data successfully inserted", body["message"])
	})

	t.Run("empty upstream", func(t *testing.T) {
		svc := &stubService{seedErr: errs.ErrNoUpstreamData}
		e := setupTestServer(svc)

		rec := doRequest(e, "/product/init_db")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("insert failure", func(t *testing.T) {
		svc := &stubService{seedErr: errs.ErrInsertFailed}
		e := setupTestServer(svc)

		rec := doRequest(e, "/product/init_db")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
