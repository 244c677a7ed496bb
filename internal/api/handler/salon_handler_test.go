package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonelidia/salon-system/internal/api/middleware"
	"github.com/salonelidia/salon-system/internal/core/domain"
)

type stubSalonService struct {
	statsFn        func(ctx context.Context) (domain.AdminStats, error)
	clientsFn      func(ctx context.Context) ([]domain.ClientSummary, error)
	profileFn      func(ctx context.Context, userID int64) (*domain.ClientProfile, error)
	appointmentsFn func(ctx context.Context, userID int64) ([]domain.Appointment, error)
}

func (s *stubSalonService) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	return s.statsFn(ctx)
}

func (s *stubSalonService) ListClients(ctx context.Context) ([]domain.ClientSummary, error) {
	return s.clientsFn(ctx)
}

func (s *stubSalonService) ClientProfile(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubSalonService) ClientAppointments(ctx context.Context, userID int64) ([]domain.Appointment, error) {
	return s.appointmentsFn(ctx, userID)
}

func newAuthedContext(target string, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(middleware.IdentityKey, *identity)
	}
	return c, rec
}

func TestAdminHandler_Stats(t *testing.T) {
	stub := &stubSalonService{
		statsFn: func(ctx context.Context) (domain.AdminStats, error) {
			return domain.AdminStats{TotalClients: 2, TotalPoints: 250, TotalAppointments: 3}, nil
		},
	}
	c, rec := newAuthedContext("/api/admin/stats", &domain.Identity{UserID: 1, Role: domain.RoleAdmin})

	if err := NewAdminHandler(stub).Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_clients"] != float64(2) || resp["total_points"] != float64(250) || resp["total_appointments"] != float64(3) {
		t.Fatalf("unexpected stats: %+v", resp)
	}
}

func TestAdminHandler_Stats_StorageError(t *testing.T) {
	stub := &stubSalonService{
		statsFn: func(ctx context.Context) (domain.AdminStats, error) {
			return domain.AdminStats{}, domain.ErrStorage
		},
	}
	c, _ := newAuthedContext("/api/admin/stats", &domain.Identity{UserID: 1, Role: domain.RoleAdmin})

	if err := NewAdminHandler(stub).Stats(c); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestAdminHandler_Clients(t *testing.T) {
	created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	stub := &stubSalonService{
		clientsFn: func(ctx context.Context) ([]domain.ClientSummary, error) {
			return []domain.ClientSummary{
				{ID: 3, Username: "bea", FirstName: "Bea", Phone: "333", Points: 20, CreatedAt: created},
				{ID: 2, Username: "anna", FirstName: "Anna", Phone: "334", Points: 10, CreatedAt: created.Add(-time.Hour)},
			}, nil
		},
	}
	c, rec := newAuthedContext("/api/admin/clients", &domain.Identity{UserID: 1, Role: domain.RoleAdmin})

	if err := NewAdminHandler(stub).Clients(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Clients []map[string]any `json:"clients"`
		Total   int              `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 2 || len(resp.Clients) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Clients[0]["username"] != "bea" {
		t.Fatalf("expected newest first, got %+v", resp.Clients[0])
	}
	for _, key := range []string{"id", "username", "first_name", "phone", "points", "created_at"} {
		if _, ok := resp.Clients[0][key]; !ok {
			t.Fatalf("missing %q in %+v", key, resp.Clients[0])
		}
	}
}

func TestAdminHandler_Clients_Empty(t *testing.T) {
	stub := &stubSalonService{
		clientsFn: func(ctx context.Context) ([]domain.ClientSummary, error) {
			return []domain.ClientSummary{}, nil
		},
	}
	c, rec := newAuthedContext("/api/admin/clients", &domain.Identity{UserID: 1, Role: domain.RoleAdmin})

	if err := NewAdminHandler(stub).Clients(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "{\"clients\":[],\"total\":0}\n" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestClientHandler_Profile_UsesTokenSubject(t *testing.T) {
	stub := &stubSalonService{
		profileFn: func(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
			if userID != 7 {
				t.Fatalf("expected token subject 7, got %d", userID)
			}
			return &domain.ClientProfile{ID: 7, Username: "xenia", FirstName: "Xenia", Phone: "333", Points: 70}, nil
		},
	}
	c, rec := newAuthedContext("/api/client/profile?id=8&user_id=8", &domain.Identity{UserID: 7, Role: domain.RoleClient})
	c.SetParamNames("id")
	c.SetParamValues("8")

	if err := NewClientHandler(stub).Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(7) || resp["points"] != float64(70) {
		t.Fatalf("unexpected profile: %+v", resp)
	}
}

func TestClientHandler_Profile_UserGone(t *testing.T) {
	stub := &stubSalonService{
		profileFn: func(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	c, _ := newAuthedContext("/api/client/profile", &domain.Identity{UserID: 7, Role: domain.RoleClient})

	if err := NewClientHandler(stub).Profile(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestClientHandler_WithoutIdentity(t *testing.T) {
	stub := &stubSalonService{
		profileFn: func(ctx context.Context, userID int64) (*domain.ClientProfile, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
		appointmentsFn: func(ctx context.Context, userID int64) ([]domain.Appointment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewClientHandler(stub)

	for _, fn := range []echo.HandlerFunc{h.Profile, h.Appointments} {
		c, _ := newAuthedContext("/", nil)
		err := fn(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 HTTPError, got %v", err)
		}
	}
}

func TestClientHandler_Appointments(t *testing.T) {
	stub := &stubSalonService{
		appointmentsFn: func(ctx context.Context, userID int64) ([]domain.Appointment, error) {
			if userID != 7 {
				t.Fatalf("expected token subject 7, got %d", userID)
			}
			return []domain.Appointment{
				{ID: 2, ClientID: 7, Service: "Piega", Date: "2026-01-12", Time: "09:30", Points: 15, Status: "confirmed"},
				{ID: 1, ClientID: 7, Service: "Taglio", Date: "2026-01-10", Time: "10:00", Points: 10, Status: "confirmed"},
			}, nil
		},
	}
	c, rec := newAuthedContext("/api/client/appointments?client_id=8", &domain.Identity{UserID: 7, Role: domain.RoleClient})

	if err := NewClientHandler(stub).Appointments(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Appointments []map[string]any `json:"appointments"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Appointments) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(resp.Appointments))
	}
	first := resp.Appointments[0]
	if first["service"] != "Piega" || first["date"] != "2026-01-12" || first["time"] != "09:30" || first["status"] != "confirmed" {
		t.Fatalf("unexpected appointment: %+v", first)
	}
	if _, leaked := first["client_id"]; leaked {
		t.Fatalf("client_id should not be serialised: %+v", first)
	}
}
