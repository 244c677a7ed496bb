package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
)

// ClientHandler serves a client's own data. The subject always comes from the
// session token; ids in the path or query are ignored.
type ClientHandler struct {
	salon ports.SalonService
}

func NewClientHandler(salon ports.SalonService) *ClientHandler {
	return &ClientHandler{salon: salon}
}

type appointmentsResponse struct {
	Appointments []domain.Appointment `json:"appointments"`
}

// Profile returns the caller's profile.
//
// @Summary      Client profile
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ClientProfile
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/client/profile [get]
func (h *ClientHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.salon.ClientProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Appointments returns the caller's appointments, latest date first.
//
// @Summary      Client appointments
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  appointmentsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/client/appointments [get]
func (h *ClientHandler) Appointments(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	appts, err := h.salon.ClientAppointments(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointmentsResponse{Appointments: appts})
}
