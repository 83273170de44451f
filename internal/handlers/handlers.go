package handlers

import (
	"net/http"
	"strings"

	"inspectrack/internal/apierr"
	"inspectrack/internal/logger"
	"inspectrack/internal/models"
	"inspectrack/internal/reconcile"
	"inspectrack/internal/store"

	"github.com/gin-gonic/gin"
)

// Env is what every handler needs from the rest of the process.
type Env struct {
	Catalog    store.CatalogStore
	Ledger     store.Ledger
	Reconciler *reconcile.Service
	BaseURL    string
	Log        *logger.Logger
}

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// RespondError writes err using the status of its apierr kind.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	ae := apierr.As(err)
	status := ae.Status()
	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, ErrorResponse{Error: ErrorBody{Message: ae.Error(), Code: ae.Code()}})
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierr.Validation("invalid request body: %v", err)
	}
	return nil
}

// DeviceView is a device plus the link a QR code should encode.
type DeviceView struct {
	models.Device
	ScanURL string `json:"scan_url"`
}

func (e *Env) view(d models.Device) DeviceView {
	return DeviceView{Device: d, ScanURL: ScanURL(e.BaseURL, d.ID)}
}

func (e *Env) views(list []models.Device) []DeviceView {
	out := make([]DeviceView, 0, len(list))
	for _, d := range list {
		out = append(out, e.view(d))
	}
	return out
}

// ScanURL is the canonical technician link for a device.
func ScanURL(baseURL, deviceID string) string {
	return strings.TrimRight(baseURL, "/") + "/scan/" + deviceID
}

// @Summary Ping
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/ping [get]
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
