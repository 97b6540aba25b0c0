package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/candrasdkd/easywork/internal/form"
	"github.com/candrasdkd/easywork/internal/model"
	authsvc "github.com/candrasdkd/easywork/internal/service/auth"
	dashsvc "github.com/candrasdkd/easywork/internal/service/dashboard"
)

const testToken = "valid-token"

var testIdentity = model.Identity{UID: "uid-1", Email: "user@example.com"}

type stubAuth struct{}

func (stubAuth) GoogleSignIn(context.Context, string) (*authsvc.Session, error) {
	return nil, model.ErrUnauthorized
}

func (stubAuth) Register(context.Context, string, string, string) (*authsvc.Session, error) {
	return nil, model.ErrEmailTaken
}

func (stubAuth) Login(context.Context, string, string) (*authsvc.Session, error) {
	return nil, model.ErrUnauthorized
}

func (stubAuth) ParseToken(tokenString string) (model.Identity, error) {
	if tokenString != testToken {
		return model.Identity{}, model.ErrUnauthorized
	}
	return testIdentity, nil
}

type stubUsers struct{}

func (stubUsers) Profile(context.Context, model.Identity) (*model.UserProfile, error) {
	return &model.UserProfile{UID: testIdentity.UID, PICName: "Candra"}, nil
}

func (stubUsers) UpdateNames(_ context.Context, _ model.Identity, displayName, picName string) (*model.UserProfile, error) {
	return &model.UserProfile{UID: testIdentity.UID, DisplayName: displayName, PICName: picName}, nil
}

type stubCalibrations struct {
	rows []model.CalibrationRecord
}

func (s stubCalibrations) ListMonth(context.Context, model.Identity, model.Month, model.SortOrder) ([]model.CalibrationRecord, error) {
	return s.rows, nil
}

func (s stubCalibrations) Create(_ context.Context, _ model.Identity, rec model.CalibrationRecord) (model.CalibrationRecord, error) {
	rec.ID = "new-id"
	return rec, nil
}

func (s stubCalibrations) Replace(context.Context, model.Identity, model.CalibrationRecord) error {
	return nil
}

func (s stubCalibrations) Delete(context.Context, model.Identity, string) error {
	return model.ErrRecordNotFound
}

type stubInventories struct{}

func (stubInventories) ListMonth(context.Context, model.Identity, model.Month, model.SortOrder) ([]model.InventoryRecord, error) {
	return nil, nil
}

func (stubInventories) Create(context.Context, model.Identity, model.InventoryRecord) (model.InventoryRecord, error) {
	return model.InventoryRecord{}, &form.ValidationError{Missing: []string{"Nama Alat", "Merek"}}
}

func (stubInventories) Replace(context.Context, model.Identity, model.InventoryRecord) error {
	return nil
}

func (stubInventories) Delete(context.Context, model.Identity, string) error { return nil }

type stubOptions struct{}

func (stubOptions) List(_ context.Context, kind model.OptionKind) ([]model.Option, error) {
	return []model.Option{{ID: "1", Name: "Lab Kimia"}}, nil
}

func (stubOptions) Append(_ context.Context, _ model.OptionKind, name string) (model.Option, error) {
	return model.Option{ID: "2", Name: name}, nil
}

type stubDashboard struct{}

func (stubDashboard) MonthSummary(_ context.Context, _ model.Identity, month model.Month, room string) (*dashsvc.Summary, error) {
	return &dashsvc.Summary{Month: month, Room: room, TotalItems: 3, TotalRooms: 2}, nil
}

func newTestServer(rows []model.CalibrationRecord) http.Handler {
	h := NewHandler(stubAuth{}, stubUsers{}, stubCalibrations{rows: rows},
		stubInventories{}, stubOptions{}, stubDashboard{})
	return h.Routes()
}

func doRequest(t *testing.T, srv http.Handler, method, target string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil)

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodGet, "/api/v1/calibrations", nil, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/calibrations", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodGet, "/api/v1/me", nil, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Candra")
	})
}

func TestListCalibrations(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	rows := []model.CalibrationRecord{
		{ID: "1", ToolName: "Oven A", ImplementationDate: &date},
		{ID: "2", ToolName: "Timbangan", ImplementationDate: &date},
		{ID: "3", ToolName: "Oven B", ImplementationDate: &date},
	}
	srv := newTestServer(rows)

	t.Run("search narrows, row_count covers the filtered set", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodGet,
			"/api/v1/calibrations?month=2024-05&q=oven&page=0&page_size=1", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Rows     []model.CalibrationRecord `json:"rows"`
			RowCount int                       `json:"row_count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Rows, 1)
		assert.Equal(t, "Oven A", res.Rows[0].ToolName)
		assert.Equal(t, 2, res.RowCount)
	})

	t.Run("malformed month is a 400", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodGet, "/api/v1/calibrations?month=05-2024", nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete of a missing record is a 404", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodDelete, "/api/v1/calibrations/ghost", nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateInventoryValidation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil)
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/inventories",
		model.InventoryRecord{}, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var res struct {
		Missing []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"Nama Alat", "Merek"}, res.Missing)
}

func TestExportCalibrations(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	srv := newTestServer([]model.CalibrationRecord{
		{ID: "1", ToolName: "Oven", ImplementationDate: &date},
	})

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/calibrations/export?month=2024-05", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Calibration_Data_2024_05.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	got, err := f.GetRows("Calibration Data")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Oven", got[1][1])
}

func TestOptions(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil)

	t.Run("unknown kind is a 400", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodGet, "/api/v1/options/color", nil, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodGet, "/api/v1/options/room", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Lab Kimia")
	})

	t.Run("append", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, srv, http.MethodPost, "/api/v1/options/tool",
			map[string]string{"name": "Mikroskop"}, true)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Mikroskop")
	})
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil)
	rec := doRequest(t, srv, http.MethodGet, "/api/v1/dashboard?month=2024-05&room=Lab+Kimia", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dashsvc.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 3, res.TotalItems)
	assert.Equal(t, "Lab Kimia", res.Room)
}

func TestLoginRejected(t *testing.T) {
	t.Parallel()

	srv := newTestServer(nil)
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": "a@b.c", "password": "x"}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "invalid credentials"))
}
