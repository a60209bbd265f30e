package repository

import (
	"context"

	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/domain"
	pkgdto "github.com/alimikegami/sales-dashboard/product-stats-service/pkg/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollection = "products"

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) MongoDBProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProducts(ctx context.Context, data []domain.Product) (err error) {
	docs := make([]interface{}, 0, len(data))
	for _, product := range data {
		docs = append(docs, product)
	}

	_, err = r.db.Collection(productCollection).InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProducts").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, param pkgdto.Filter) (data []domain.Product, err error) {
	findOptions := options.Find()
	findOptions.SetLimit(int64(param.PerPage))
	findOptions.SetSkip(int64((param.Page - 1) * param.PerPage))

	cursor, err := r.db.Collection(productCollection).Find(ctx, buildProductFilter(param), findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context, param pkgdto.Filter) (total int64, err error) {
	total, err = r.db.Collection(productCollection).CountDocuments(ctx, buildProductFilter(param))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) CountAllProducts(ctx context.Context) (total int64, err error) {
	total, err = r.db.Collection(productCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountAllProducts").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) CountProductsOutsideMonth(ctx context.Context, month int) (total int64, err error) {
	total, err = r.db.Collection(productCollection).CountDocuments(ctx, monthExcludeExpr(month))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProductsOutsideMonth").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetMonthlySales(ctx context.Context, month int) (sales domain.MonthlySales, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: monthMatchExpr(month)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: "$price"}}},
			{Key: "totalSoldItems", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.db.Collection(productCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetMonthlySales").Msg("")
		return
	}

	defer cursor.Close(ctx)

	var results []domain.MonthlySales
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetMonthlySales").Msg("")
		return
	}

	// An empty month yields no group at all; zero values stand in for it.
	if len(results) == 0 {
		return domain.MonthlySales{}, nil
	}

	return results[0], nil
}

func (r *MongoDBProductRepositoryImpl) GetPriceRangeCounts(ctx context.Context, month int) (counts []domain.PriceRangeCount, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: monthMatchExpr(month)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: priceBucketExpr()},
			{Key: "totalSoldItems", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "priceRange", Value: "$_id"},
			{Key: "totalSoldItems", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection(productCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPriceRangeCounts").Msg("")
		return
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &counts); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPriceRangeCounts").Msg("")
		return
	}

	return counts, nil
}

func (r *MongoDBProductRepositoryImpl) GetCategoryCounts(ctx context.Context, month int) (counts []domain.CategoryCount, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: monthMatchExpr(month)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "itemCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "itemCount", Value: 1},
		}}},
	}

	cursor, err := r.db.Collection(productCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryCounts").Msg("")
		return
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &counts); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryCounts").Msg("")
		return
	}

	return counts, nil
}
