package response

import (
	"net/http"

	"github.com/alimikegami/sales-dashboard/product-stats-service/pkg/errs"
	"github.com/labstack/echo/v4"
)

// MessageResponse is the envelope for message-only outcomes, success and
// failure alike. The dashboard client keys on the success flag.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteSuccessMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: message,
	})
}

func WriteSuccessResponse(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	return c.JSON(statusCode, MessageResponse{
		Success: false,
		Message: err.Error(),
	})
}
