package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	var seen string
	e.Use(mw)
	e.GET("/", func(c echo.Context) error {
		seen = UID(c)
		return c.NoContent(http.StatusNoContent)
	})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seen
}

func TestDevLogin(t *testing.T) {
	cases := []struct {
		name   string
		build  func(r *http.Request)
		target string
		want   string
	}{
		{"header wins", func(r *http.Request) {
			r.Header.Set("X-User-Id", "U_HDR")
			r.AddCookie(&http.Cookie{Name: "LINE_UID", Value: "U_CK"})
		}, "/?uid=U_Q", "U_HDR"},
		{"cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "LINE_UID", Value: "U_CK"})
		}, "/?uid=U_Q", "U_CK"},
		{"query", func(*http.Request) {}, "/?uid=U_Q", "U_Q"},
		{"default", func(*http.Request) {}, "/", DefaultUID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			tc.build(req)
			rec, uid := serve(t, DevLogin(), req)
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tc.want, uid)
		})
	}
}

func TestDevLogin_RemembersQueryUID(t *testing.T) {
	rec, _ := serve(t, DevLogin(), httptest.NewRequest(http.MethodGet, "/?uid=U_Q", nil))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "LINE_UID", cookies[0].Name)
	assert.Equal(t, "U_Q", cookies[0].Value)
}

func TestLIFF(t *testing.T) {
	rec, _ := serve(t, LIFF(true), httptest.NewRequest(http.MethodGet, "/?uid=U_Q", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Line-Uid", "U_LINE")
	rec, uid := serve(t, LIFF(true), req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "U_LINE", uid)

	rec, uid = serve(t, LIFF(false), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, uid)
}
