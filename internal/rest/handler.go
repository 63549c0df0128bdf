package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tastebookhq/tastebook/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewResponseError converts any error into the wire error shape. Raw
// store errors never leak: anything that is not a domain error becomes a
// generic internal error.
func NewResponseError(err error) ResponseError {
	var de *domain.Error
	if errors.As(err, &de) {
		return ResponseError{Code: de.Code, Message: de.Message}
	}
	return ResponseError{
		Code:    domain.ErrInternalServerError.Code,
		Message: domain.ErrInternalServerError.Message,
	}
}

// getStatusCode maps a domain error to its HTTP status.
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInvalidResolutionAction),
		errors.Is(err, domain.ErrInvalidIDs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrAlreadyReported),
		errors.Is(err, domain.ErrReportAlreadyResolved):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTargetNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the mapped status and error body.
func abortWithError(c *gin.Context, err error) {
	c.JSON(getStatusCode(err), NewResponseError(err))
}

// parseListWindow reads the dual-pagination query params. A present page
// param selects page mode even when a cursor was also supplied.
func parseListWindow(c *gin.Context) domain.ListWindow {
	window := domain.ListWindow{
		Cursor: c.Query("cursor"),
		SortBy: c.Query("sort"),
	}
	if page, err := strconv.ParseInt(c.Query("page"), 10, 64); err == nil && page > 0 {
		window.Page = page
	}
	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		window.Limit = limit
	}
	if c.Query("order") == string(domain.SortAsc) {
		window.Order = domain.SortAsc
	} else {
		window.Order = domain.SortDesc
	}
	return window
}

// actorFrom returns the authenticated actor set by the auth middleware.
func actorFrom(c *gin.Context) (domain.Actor, bool) {
	v, exists := c.Get("actor")
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}

// queryInt64 parses a numeric query param, zero when absent or invalid.
func queryInt64(c *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// pathID parses the numeric :id path param.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
