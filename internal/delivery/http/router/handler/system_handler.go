package handler

import (
	"bizconnect/config"
	"bizconnect/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves the liveness probe and the public about endpoint.
type SystemHandler struct {
	cfg *config.Config
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

// Health is a simple handler to check if the service is up.
func (h *SystemHandler) Health(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service sehat")
}

// About describes the service.
func (h *SystemHandler) About(c echo.Context) error {
	return response.OK(c, map[string]string{
		"name":        h.cfg.Env.ServiceName,
		"description": "Portal berita kampus dan direktori UMKM mahasiswa",
		"environment": h.cfg.Env.Env,
	}, "Tentang layanan")
}
