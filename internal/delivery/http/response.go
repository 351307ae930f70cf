package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stockledger/internal/domain"
)

// Response represents a standardized API response
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// CreatedResponse sends a 201 Created response
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Status: "success",
		Data:   data,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c echo.Context, statusCode int, message string, err interface{}) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Error:   err,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message, nil)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusUnauthorized, message, nil)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusNotFound, message, nil)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string, err error) error {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	return ErrorResponse(c, http.StatusInternalServerError, message, errMsg)
}

// DomainErrorResponse maps each domain error kind to its stable
// outward signal: bad input (400), missing entity (404), business
// rejection (422), duplicate (409), transient store failure (503).
func DomainErrorResponse(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return ErrorResponse(c, http.StatusBadRequest, ve.Reason, map[string]string{"field": ve.Field})
	case errors.Is(err, domain.ErrInvalidDateRange):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		return NotFoundResponse(c, "User not found")
	case errors.Is(err, domain.ErrStockNotFound):
		return NotFoundResponse(c, "Stock not found")
	case errors.Is(err, domain.ErrTransactionNotFound):
		return NotFoundResponse(c, "Transaction not found")
	case errors.Is(err, domain.ErrInsufficientBalance):
		return ErrorResponse(c, http.StatusUnprocessableEntity,
			"You don't have enough balance to perform the transaction", nil)
	case errors.Is(err, domain.ErrUsernameTaken):
		return ErrorResponse(c, http.StatusConflict, "Username already taken", nil)
	case errors.Is(err, domain.ErrTickerExists):
		return ErrorResponse(c, http.StatusConflict, "Ticker already exists", nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return ErrorResponse(c, http.StatusServiceUnavailable, "Store temporarily unavailable", nil)
	default:
		return InternalServerErrorResponse(c, "Unexpected error", err)
	}
}
