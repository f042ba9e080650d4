// Package respond writes service errors as JSON with the status their kind maps to.
package respond

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"rotaplan/pkg/apperr"
)

type errorBody struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func Error(c echo.Context, err error) error {
	return c.JSON(apperr.HTTPStatus(err), errorBody{Error: err.Error(), Retryable: apperr.Retryable(err)})
}

// BadJSON answers a body that failed to bind.
func BadJSON(c echo.Context, err error) error {
	return Error(c, fmt.Errorf("%w: bad json: %v", apperr.ErrInvalidRequest, err))
}

// ParamID parses a positive numeric path parameter.
func ParamID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: bad %s %q", apperr.ErrInvalidRequest, name, raw)
	}
	return uint(n), nil
}
