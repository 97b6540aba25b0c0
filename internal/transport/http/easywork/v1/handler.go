// Package http exposes the JSON API: auth, profile, calibration and
// inventory records, option lists, xlsx export and the dashboard.
package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/candrasdkd/easywork/internal/model"
	authsvc "github.com/candrasdkd/easywork/internal/service/auth"
	dashsvc "github.com/candrasdkd/easywork/internal/service/dashboard"
)

type AuthService interface {
	GoogleSignIn(ctx context.Context, idToken string) (*authsvc.Session, error)
	Register(ctx context.Context, email, password, displayName string) (*authsvc.Session, error)
	Login(ctx context.Context, email, password string) (*authsvc.Session, error)
	ParseToken(tokenString string) (model.Identity, error)
}

type UserService interface {
	Profile(ctx context.Context, who model.Identity) (*model.UserProfile, error)
	UpdateNames(ctx context.Context, who model.Identity, displayName, picName string) (*model.UserProfile, error)
}

type CalibrationService interface {
	ListMonth(ctx context.Context, who model.Identity, month model.Month, order model.SortOrder) ([]model.CalibrationRecord, error)
	Create(ctx context.Context, who model.Identity, rec model.CalibrationRecord) (model.CalibrationRecord, error)
	Replace(ctx context.Context, who model.Identity, rec model.CalibrationRecord) error
	Delete(ctx context.Context, who model.Identity, id string) error
}

type InventoryService interface {
	ListMonth(ctx context.Context, who model.Identity, month model.Month, order model.SortOrder) ([]model.InventoryRecord, error)
	Create(ctx context.Context, who model.Identity, rec model.InventoryRecord) (model.InventoryRecord, error)
	Replace(ctx context.Context, who model.Identity, rec model.InventoryRecord) error
	Delete(ctx context.Context, who model.Identity, id string) error
}

type OptionService interface {
	List(ctx context.Context, kind model.OptionKind) ([]model.Option, error)
	Append(ctx context.Context, kind model.OptionKind, name string) (model.Option, error)
}

type DashboardService interface {
	MonthSummary(ctx context.Context, who model.Identity, month model.Month, room string) (*dashsvc.Summary, error)
}

type Handler struct {
	auth         AuthService
	users        UserService
	calibrations CalibrationService
	inventories  InventoryService
	options      OptionService
	dashboard    DashboardService
}

func NewHandler(
	auth AuthService,
	users UserService,
	calibrations CalibrationService,
	inventories InventoryService,
	options OptionService,
	dashboard DashboardService,
) *Handler {
	return &Handler{
		auth:         auth,
		users:        users,
		calibrations: calibrations,
		inventories:  inventories,
		options:      options,
		dashboard:    dashboard,
	}
}

// Routes mounts the full API surface under /api/v1.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/google", h.handleGoogleSignIn)
		r.Post("/auth/register", h.handleRegister)
		r.Post("/auth/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)

			r.Get("/me", h.handleProfile)
			r.Put("/me", h.handleUpdateProfile)

			r.Get("/calibrations", h.handleListCalibrations)
			r.Post("/calibrations", h.handleCreateCalibration)
			r.Put("/calibrations/{id}", h.handleReplaceCalibration)
			r.Delete("/calibrations/{id}", h.handleDeleteCalibration)
			r.Get("/calibrations/export", h.handleExportCalibrations)

			r.Get("/inventories", h.handleListInventories)
			r.Post("/inventories", h.handleCreateInventory)
			r.Put("/inventories/{id}", h.handleReplaceInventory)
			r.Delete("/inventories/{id}", h.handleDeleteInventory)
			r.Get("/inventories/export", h.handleExportInventories)

			r.Get("/options/{kind}", h.handleListOptions)
			r.Post("/options/{kind}", h.handleAppendOption)

			r.Get("/dashboard", h.handleDashboard)
		})
	})

	return r
}
