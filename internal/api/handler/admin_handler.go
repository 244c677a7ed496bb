package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
)

// AdminHandler serves the admin dashboard. Routes are mounted behind
// Auth and RequireRole(admin).
type AdminHandler struct {
	salon ports.SalonService
}

func NewAdminHandler(salon ports.SalonService) *AdminHandler {
	return &AdminHandler{salon: salon}
}

type clientsResponse struct {
	Clients []domain.ClientSummary `json:"clients"`
	Total   int                    `json:"total"`
}

// Stats returns the salon-wide aggregate.
//
// @Summary      Admin statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AdminStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.salon.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Clients lists every client account, newest first.
//
// @Summary      List clients
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clientsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/admin/clients [get]
func (h *AdminHandler) Clients(c echo.Context) error {
	clients, err := h.salon.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientsResponse{Clients: clients, Total: len(clients)})
}
