package respond

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotaplan/pkg/apperr"
)

func TestError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, Error(c, fmt.Errorf("list rotations: %w", apperr.ErrDependencyFailure)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"list rotations: dependency failure","retryable":true}`, rec.Body.String())
}

func TestParamID(t *testing.T) {
	e := echo.New()
	for raw, ok := range map[string]bool{"12": true, "0": false, "-3": false, "abc": false, "": false} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)
		id, err := ParamID(c, "id")
		if ok {
			require.NoError(t, err, raw)
			assert.Equal(t, uint(12), id)
		} else {
			assert.ErrorIs(t, err, apperr.ErrInvalidRequest, raw)
		}
	}
}
