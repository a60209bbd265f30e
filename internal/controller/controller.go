package controller

import (
	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/service"
	pkgdto "github.com/alimikegami/sales-dashboard/product-stats-service/pkg/dto"
	"github.com/alimikegami/sales-dashboard/product-stats-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := Controller{
		service: service,
	}

	e.GET("/init_db", c.SeedProducts)
	e.GET("/getProduct", c.GetProducts)
	e.GET("/statistics", c.GetStatistics)
	e.GET("/sales-statistics", c.GetSalesStatistics)
	e.GET("/pie_chart", c.GetPieChart)
	e.GET("/combined-stats", c.GetCombinedStats)
}

func (c *Controller) SeedProducts(e echo.Context) error {
	if err := c.service.SeedProducts(e.Request().Context()); err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessMessage(e, "Data successfully inserted")
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter, err := pkgdto.ParseFilter(
		e.QueryParam("search"),
		e.QueryParam("page"),
		e.QueryParam("per_page"),
		e.QueryParam("month"),
	)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	responsePayload, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, responsePayload)
}

func (c *Controller) GetStatistics(e echo.Context) error {
	month, err := pkgdto.ParseMonth(e.QueryParam("month"), true)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	responsePayload, err := c.service.GetStatistics(e.Request().Context(), month)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, responsePayload)
}

func (c *Controller) GetSalesStatistics(e echo.Context) error {
	month, err := pkgdto.ParseMonth(e.QueryParam("month"), true)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	responsePayload, err := c.service.GetSalesStatistics(e.Request().Context(), month)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, responsePayload)
}

func (c *Controller) GetPieChart(e echo.Context) error {
	month, err := pkgdto.ParseMonth(e.QueryParam("month"), true)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	responsePayload, err := c.service.GetPieChart(e.Request().Context(), month)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, responsePayload)
}

func (c *Controller) GetCombinedStats(e echo.Context) error {
	month, err := pkgdto.ParseMonth(e.QueryParam("month"), true)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	responsePayload, err := c.service.GetCombinedStats(e.Request().Context(), month)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, responsePayload)
}
