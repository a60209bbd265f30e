package repository

import (
	"context"

	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/domain"
	pkgdto "github.com/alimikegami/sales-dashboard/product-stats-service/pkg/dto"
)

type MongoDBProductRepository interface {
	AddProducts(ctx context.Context, data []domain.Product) (err error)
	GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, param pkgdto.Filter) (total int64, err error)
	CountAllProducts(ctx context.Context) (total int64, err error)
	CountProductsOutsideMonth(ctx context.Context, month int) (total int64, err error)
	GetMonthlySales(ctx context.Context, month int) (sales domain.MonthlySales, err error)
	GetPriceRangeCounts(ctx context.Context, month int) (counts []domain.PriceRangeCount, err error)
	GetCategoryCounts(ctx context.Context, month int) (counts []domain.CategoryCount, err error)
}
