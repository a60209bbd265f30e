package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alimikegami/sales-dashboard/product-stats-service/config"
	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/domain"
	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/dto"
	circuitbreaker "github.com/alimikegami/sales-dashboard/product-stats-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/repository"
	pkgdto "github.com/alimikegami/sales-dashboard/product-stats-service/pkg/dto"
	"github.com/alimikegami/sales-dashboard/product-stats-service/pkg/errs"
	"github.com/alimikegami/sales-dashboard/product-stats-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

type ProductServiceImpl struct {
	mongoDBRepo    repository.MongoDBProductRepository
	config         config.Config
	kafkaProducer  *kafka.Conn
	circuitBreaker *gobreaker.CircuitBreaker[[]byte]
}

func CreateProductService(mongoDBRepo repository.MongoDBProductRepository, config config.Config, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{
		mongoDBRepo:    mongoDBRepo,
		config:         config,
		kafkaProducer:  kafkaProducer,
		circuitBreaker: circuitbreaker.CreateCircuitBreaker("product-data-upstream"),
	}
}

// SeedProducts fetches the upstream product transaction document and bulk
// inserts every record. Repeated calls duplicate data; the loader does no
// dedup or upsert.
func (s *ProductServiceImpl) SeedProducts(ctx context.Context) (err error) {
	body, err := s.circuitBreaker.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(httpclient.HttpRequest{
			URL:    s.config.UpstreamConfig.ProductDataURL,
			Method: http.MethodGet,
		})
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("upstream returned status %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SeedProducts").Msg("")
		return errs.ErrInsertFailed
	}

	var records []dto.ProductRecord
	if len(body) > 0 {
		if err = json.Unmarshal(body, &records); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "SeedProducts").Msg("")
			return errs.ErrInsertFailed
		}
	}

	if len(records) == 0 {
		return errs.ErrNoUpstreamData
	}

	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, domain.Product{
			Title:       record.Title,
			Price:       record.Price,
			Description: record.Description,
			Category:    record.Category,
			Image:       record.Image,
			Sold:        record.Sold,
			DateOfSale:  record.DateOfSale,
		})
	}

	if err = s.mongoDBRepo.AddProducts(ctx, products); err != nil {
		return errs.ErrInsertFailed
	}

	s.publishIngestedEvent(ctx, len(products))

	return nil
}

// publishIngestedEvent notifies downstream consumers that a seed completed.
// Ingestion success must not depend on the broker, so failures are only
// logged.
func (s *ProductServiceImpl) publishIngestedEvent(ctx context.Context, count int) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: "products_ingested",
		Data: dto.ProductsIngestedEvent{
			InsertedCount: count,
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishIngestedEvent").Msg("")
		return
	}

	if err := s.writeKafkaMessage(jsonMsg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishIngestedEvent").Msg("")
	}
}

func (s *ProductServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (responsePayload dto.ProductListResponse, err error) {
	data, err := s.mongoDBRepo.GetProducts(ctx, filter)
	if err != nil {
		return responsePayload, errs.ErrFetchProducts
	}

	total, err := s.mongoDBRepo.CountProducts(ctx, filter)
	if err != nil {
		return responsePayload, errs.ErrFetchProducts
	}

	if len(data) == 0 {
		return responsePayload, errs.ErrNoProducts
	}

	responsePayload.Success = true
	responsePayload.Page = filter.Page
	responsePayload.PerPage = filter.PerPage
	responsePayload.TotalPages = totalPages(total, filter.PerPage)
	responsePayload.TotalProducts = total
	responsePayload.Products = data

	return responsePayload, nil
}

func (s *ProductServiceImpl) GetStatistics(ctx context.Context, month int) (responsePayload dto.StatisticsResponse, err error) {
	sales, err := s.mongoDBRepo.GetMonthlySales(ctx, month)
	if err != nil {
		return responsePayload, errs.ErrFetchStatistics
	}

	totalItems, err := s.mongoDBRepo.CountAllProducts(ctx)
	if err != nil {
		return responsePayload, errs.ErrFetchStatistics
	}

	responsePayload.Success = true
	responsePayload.TotalSales = sales.TotalSales
	responsePayload.TotalSoldItems = sales.TotalSoldItems
	responsePayload.TotalNotSoldItems = totalItems - sales.TotalSoldItems

	return responsePayload, nil
}

func (s *ProductServiceImpl) GetSalesStatistics(ctx context.Context, month int) (responsePayload dto.SalesStatisticsResponse, err error) {
	counts, err := s.mongoDBRepo.GetPriceRangeCounts(ctx, month)
	if err != nil {
		return responsePayload, errs.ErrFetchSalesStats
	}

	responsePayload.Success = true
	responsePayload.Statistics = fillPriceRanges(counts)

	return responsePayload, nil
}

func (s *ProductServiceImpl) GetPieChart(ctx context.Context, month int) (responsePayload dto.PieChartResponse, err error) {
	stats, err := s.mongoDBRepo.GetCategoryCounts(ctx, month)
	if err != nil {
		return responsePayload, errs.ErrFetchCategoryStats
	}

	if len(stats) == 0 {
		return responsePayload, errs.ErrNoItemsFound
	}

	responsePayload.Success = true
	responsePayload.Statistics = stats

	return responsePayload, nil
}

// GetCombinedStats bundles the three statistics computed independently. It
// goes through the non-404 internals, so an empty month still answers with
// zero totals and an empty category list.
func (s *ProductServiceImpl) GetCombinedStats(ctx context.Context, month int) (responsePayload dto.CombinedStatsResponse, err error) {
	sales, err := s.mongoDBRepo.GetMonthlySales(ctx, month)
	if err != nil {
		return responsePayload, errs.ErrFetchCombinedStats
	}

	notSoldItems, err := s.mongoDBRepo.CountProductsOutsideMonth(ctx, month)
	if err != nil {
		return responsePayload, errs.ErrFetchCombinedStats
	}

	priceCounts, err := s.mongoDBRepo.GetPriceRangeCounts(ctx, month)
	if err != nil {
		return responsePayload, errs.ErrFetchCombinedStats
	}

	categoryStats, err := s.mongoDBRepo.GetCategoryCounts(ctx, month)
	if err != nil {
		return responsePayload, errs.ErrFetchCombinedStats
	}

	if categoryStats == nil {
		categoryStats = []domain.CategoryCount{}
	}

	responsePayload.Success = true
	responsePayload.CombinedStats = dto.CombinedStats{
		TotalSalesStats: dto.TotalSalesStats{
			TotalSalesAmount:  sales.TotalSales,
			TotalSoldItems:    sales.TotalSoldItems,
			TotalNotSoldItems: notSoldItems,
		},
		PriceRangeStats: fillPriceRanges(priceCounts),
		CategoryStats:   categoryStats,
	}

	return responsePayload, nil
}

func totalPages(total int64, perPage int) int64 {
	return (total + int64(perPage) - 1) / int64(perPage)
}

// fillPriceRanges expands the sparse aggregation result to the full fixed
// bucket list in ascending order, zero counts included.
func fillPriceRanges(counts []domain.PriceRangeCount) []domain.PriceRangeCount {
	byLabel := make(map[string]int64, len(counts))
	for _, count := range counts {
		byLabel[count.PriceRange] = count.TotalSoldItems
	}

	filled := make([]domain.PriceRangeCount, 0, len(domain.PriceBuckets))
	for _, bucket := range domain.PriceBuckets {
		filled = append(filled, domain.PriceRangeCount{
			PriceRange:     bucket.Label,
			TotalSoldItems: byLabel[bucket.Label],
		})
	}

	return filled
}
