package domain

// PriceBucket is one fixed histogram range. Upper is inclusive; the last
// bucket is open-ended and Upper is ignored for it.
type PriceBucket struct {
	Upper float64
	Label string
}

// PriceBuckets lists the histogram ranges in ascending order. The bar chart
// always renders all ten, so the order and the labels are part of the API.
var PriceBuckets = []PriceBucket{
	{Upper: 100, Label: "0 - 100"},
	{Upper: 200, Label: "101 - 200"},
	{Upper: 300, Label: "201 - 300"},
	{Upper: 400, Label: "301 - 400"},
	{Upper: 500, Label: "401 - 500"},
	{Upper: 600, Label: "501 - 600"},
	{Upper: 700, Label: "601 - 700"},
	{Upper: 800, Label: "701 - 800"},
	{Upper: 900, Label: "801 - 900"},
	{Label: "901 - above"},
}

// BucketLabel returns the label of the first bucket whose upper bound is not
// exceeded by price.
func BucketLabel(price float64) string {
	for _, bucket := range PriceBuckets[:len(PriceBuckets)-1] {
		if price <= bucket.Upper {
			return bucket.Label
		}
	}

	return PriceBuckets[len(PriceBuckets)-1].Label
}
