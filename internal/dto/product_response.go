package dto

import "github.com/alimikegami/sales-dashboard/product-stats-service/internal/domain"

type ProductListResponse struct {
	Success       bool             `json:"success"`
	Page          int              `json:"page"`
	PerPage       int              `json:"per_page"`
	TotalPages    int64            `json:"total_pages"`
	TotalProducts int64            `json:"total_products"`
	Products      []domain.Product `json:"products"`
}
