package handler

import (
	"strconv"
	"time"

	domainerrors "tienda/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " path parameter")
	}

	return id, nil
}

// boolQuery parses an optional boolean query parameter; nil means unset.
func boolQuery(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}

	return &value, nil
}

// int64Query parses an optional numeric query parameter; nil means unset.
func int64Query(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}

	return &value, nil
}

// timeQuery parses an optional RFC 3339 or date-only query parameter.
func timeQuery(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		value, err = time.Parse("2006-01-02", raw)
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}

	return &value, nil
}

// pageQuery parses the page/limit pair, leaving zero for the usecase defaults.
func pageQuery(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return page, limit
}
