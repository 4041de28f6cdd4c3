package params

import (
	"strconv"

	"mentorhub/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams holds common listing parameters parsed from the query string
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// NewQueryParams parses "page" and "limit" with sane defaults
func NewQueryParams(ctx echo.Context) *QueryParams {
	page, err := strconv.Atoi(ctx.QueryParam("page"))
	if err != nil || page < 1 {
		page = constants.DefaultPageNumber
	}

	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	return &QueryParams{
		PageNumber: page,
		PageSize:   limit,
	}
}
