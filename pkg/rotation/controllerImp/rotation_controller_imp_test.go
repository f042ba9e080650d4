package controllerImp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rotaplan/pkg/apperr"
	"rotaplan/pkg/middleware"
	"rotaplan/pkg/rotation/types"
)

// stubSvc answers every call with err, or with a canned rotation.
type stubSvc struct {
	err     error
	lastUID string
	lastID  uint
	gen     types.GenerateRequest
	size    types.UpdateDivisionSizeRequest
	balance types.UpdateNitrogenBalanceRequest
}

func (s *stubSvc) reply(uid string, id uint) (*types.RotationResponse, error) {
	s.lastUID, s.lastID = uid, id
	if s.err != nil {
		return nil, s.err
	}
	return &types.RotationResponse{RotationID: id, UserID: uid}, nil
}

func (s *stubSvc) Generate(_ context.Context, uid string, req types.GenerateRequest) (*types.RotationResponse, error) {
	s.gen = req
	return s.reply(uid, 1)
}

func (s *stubSvc) Get(_ context.Context, uid string, id uint) (*types.RotationResponse, error) {
	return s.reply(uid, id)
}

func (s *stubSvc) List(_ context.Context, uid string) ([]types.RotationResponse, error) {
	r, err := s.reply(uid, 0)
	if err != nil {
		return nil, err
	}
	return []types.RotationResponse{*r}, nil
}

func (s *stubSvc) UpdateDivisionSize(_ context.Context, uid string, id uint, req types.UpdateDivisionSizeRequest) (*types.RotationResponse, error) {
	s.size = req
	return s.reply(uid, id)
}

func (s *stubSvc) UpdateNitrogenBalance(_ context.Context, uid string, id uint, req types.UpdateNitrogenBalanceRequest) (*types.RotationResponse, error) {
	s.balance = req
	return s.reply(uid, id)
}

func (s *stubSvc) Delete(_ context.Context, uid string, id uint) error {
	_, err := s.reply(uid, id)
	return err
}

func newServer(svc *stubSvc) *echo.Echo {
	h := New(svc)
	e := echo.New()
	e.Use(middleware.DevLogin())
	e.POST("/rotations", h.Generate)
	e.GET("/rotations", h.List)
	e.GET("/rotations/:id", h.Get)
	e.PATCH("/rotations/:id/division-size", h.UpdateDivisionSize)
	e.PATCH("/rotations/:id/nitrogen-balance", h.UpdateNitrogenBalance)
	e.DELETE("/rotations/:id", h.Delete)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-User-Id", "U1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutesBindBodies(t *testing.T) {
	svc := &stubSvc{}
	e := newServer(svc)

	rec := do(e, http.MethodPost, "/rotations", `{"field_size":10,"number_of_divisions":2,"rotation_name":"a","crops":[{"crop_id":3},{"crop_id":1}],"max_years":4,"field_id":9}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "U1", svc.lastUID)
	assert.Equal(t, []types.CropRef{{CropID: 3}, {CropID: 1}}, svc.gen.Crops)
	assert.Nil(t, svc.gen.ResidualNitrogenSupply)
	require.NotNil(t, svc.gen.FieldID)
	assert.Equal(t, uint(9), *svc.gen.FieldID)

	rec = do(e, http.MethodPatch, "/rotations/5/division-size", `{"division":2,"new_division_size":4.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(5), svc.lastID)
	require.NotNil(t, svc.size.NewDivisionSize)
	assert.Equal(t, 2, *svc.size.Division)
	assert.Equal(t, 4.5, *svc.size.NewDivisionSize)

	rec = do(e, http.MethodPatch, "/rotations/6/nitrogen-balance", `{"year":2,"division":1,"nitrogen_balance":80}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.balance.NitrogenBalance)
	assert.Equal(t, 2, *svc.balance.Year)
	assert.Equal(t, 1, *svc.balance.Division)
	assert.Equal(t, 80.0, *svc.balance.NitrogenBalance)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/rotations/6", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/rotations", "").Code)
	assert.Equal(t, http.StatusNoContent, do(e, http.MethodDelete, "/rotations/6", "").Code)
}

func TestPatchMissingValue(t *testing.T) {
	cases := []struct{ path, body string }{
		{"/rotations/5/division-size", `{"division":2}`},
		{"/rotations/5/division-size", `{"new_division_size":3}`},
		{"/rotations/5/nitrogen-balance", `{"year":1,"division":1}`},
		{"/rotations/5/nitrogen-balance", `{}`},
	}
	for _, tc := range cases {
		svc := &stubSvc{}
		rec := do(newServer(svc), http.MethodPatch, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.body)
		assert.Contains(t, rec.Body.String(), "required", tc.body)
		assert.Zero(t, svc.lastID, tc.body)
	}

	svc := &stubSvc{}
	rec := do(newServer(svc), http.MethodPatch, "/rotations/5/nitrogen-balance", `{"year":1,"division":1,"nitrogen_balance":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, *svc.balance.NitrogenBalance)
}

func TestErrorStatus(t *testing.T) {
	cases := map[error]int{
		apperr.ErrInvalidRequest:    http.StatusBadRequest,
		apperr.ErrNotFound:          http.StatusNotFound,
		apperr.ErrUnauthorized:      http.StatusForbidden,
		apperr.ErrTimeout:           http.StatusGatewayTimeout,
		apperr.ErrDependencyFailure: http.StatusServiceUnavailable,
	}
	for kind, status := range cases {
		svc := &stubSvc{err: fmt.Errorf("rotation 3: %w", kind)}
		e := newServer(svc)
		assert.Equal(t, status, do(e, http.MethodGet, "/rotations/3", "").Code, kind.Error())
		assert.Equal(t, status, do(e, http.MethodDelete, "/rotations/3", "").Code, kind.Error())
	}
}

func TestBadInput(t *testing.T) {
	svc := &stubSvc{}
	e := newServer(svc)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/rotations", `{"crops":`).Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodGet, "/rotations/x", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPatch, "/rotations/0/division-size", `{}`).Code)
	assert.Empty(t, svc.lastUID)
}
