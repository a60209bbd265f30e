package repository

import (
	"regexp"
	"strconv"

	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/domain"
	pkgdto "github.com/alimikegami/sales-dashboard/product-stats-service/pkg/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// monthMatchExpr matches records whose dateOfSale falls in the given calendar
// month, any year.
func monthMatchExpr(month int) bson.M {
	return bson.M{"$expr": bson.M{"$eq": bson.A{bson.M{"$month": "$dateOfSale"}, month}}}
}

func monthExcludeExpr(month int) bson.M {
	return bson.M{"$expr": bson.M{"$ne": bson.A{bson.M{"$month": "$dateOfSale"}, month}}}
}

// buildProductFilter turns the listing parameters into a find/count filter.
// The search term matches title or description as a case-insensitive
// substring; when it also parses as a number it matches the price exactly.
func buildProductFilter(param pkgdto.Filter) bson.M {
	conditions := []bson.M{}

	if param.Month != 0 {
		conditions = append(conditions, monthMatchExpr(param.Month))
	}

	if param.Search != "" {
		searchRegex := primitive.Regex{Pattern: regexp.QuoteMeta(param.Search), Options: "i"}

		or := []bson.M{
			{"title": bson.M{"$regex": searchRegex}},
			{"description": bson.M{"$regex": searchRegex}},
		}

		if price, err := strconv.ParseFloat(param.Search, 64); err == nil {
			or = append(or, bson.M{"price": price})
		}

		conditions = append(conditions, bson.M{"$or": or})
	}

	switch len(conditions) {
	case 0:
		return bson.M{}
	case 1:
		return conditions[0]
	default:
		return bson.M{"$and": conditions}
	}
}

// priceBucketExpr folds the bucket table into the $cond chain the histogram
// group stage keys on. The open-ended bucket is the default branch, so every
// record lands in the first bucket whose upper bound covers its price.
func priceBucketExpr() interface{} {
	buckets := domain.PriceBuckets

	expr := interface{}(buckets[len(buckets)-1].Label)
	for i := len(buckets) - 2; i >= 0; i-- {
		expr = bson.M{"$cond": bson.A{
			bson.M{"$lte": bson.A{"$price", buckets[i].Upper}},
			buckets[i].Label,
			expr,
		}}
	}

	return expr
}
