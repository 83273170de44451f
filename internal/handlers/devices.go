package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"inspectrack/internal/models"
	"inspectrack/internal/store"

	"github.com/gin-gonic/gin"
)

// DeviceRequest creates or replaces a device. CheckItemText is the
// newline-separated form used by the admin page; it is only read when
// CheckItems is empty.
type DeviceRequest struct {
	SiteID        *string  `json:"site_id"`
	Name          string   `json:"name" binding:"required"`
	Location      string   `json:"location"`
	Specs         string   `json:"specs"`
	ExpiryDate    *string  `json:"expiry_date"`
	CheckItems    []string `json:"check_items"`
	CheckItemText string   `json:"check_item"`
}

func (r DeviceRequest) input() store.DeviceInput {
	items := r.CheckItems
	if len(items) == 0 && r.CheckItemText != "" {
		for _, line := range strings.Split(r.CheckItemText, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				items = append(items, line)
			}
		}
	}
	return store.DeviceInput{
		SiteID:     r.SiteID,
		Name:       r.Name,
		Location:   r.Location,
		Specs:      r.Specs,
		ExpiryDate: r.ExpiryDate,
		CheckItems: items,
	}
}

// @Summary Create device
// @Description Register an inspectable device, optionally under a site
// @Tags devices
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param body body DeviceRequest true "device"
// @Success 200 {object} DeviceView
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/devices [post]
func CreateDeviceHandler(c *gin.Context, env *Env) {
	var req DeviceRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, env.Log, err)
		return
	}
	d, err := env.Catalog.CreateDevice(c.Request.Context(), req.input())
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, env.view(*d))
}

// @Summary List global devices
// @Description Devices that do not belong to a site
// @Tags devices
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Success 200 {object} map[string]interface{}
// @Router /v1/devices [get]
func ListGlobalDevicesHandler(c *gin.Context, env *Env) {
	devices, err := env.Catalog.ListDevices(c.Request.Context(), nil)
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"devices": env.views(devices)})
}

// @Summary Get device
// @Tags devices
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "device id"
// @Success 200 {object} DeviceView
// @Failure 404 {object} ErrorResponse
// @Router /v1/devices/{id} [get]
func GetDeviceHandler(c *gin.Context, env *Env) {
	d, err := env.Catalog.GetDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, env.view(*d))
}

// @Summary Update device
// @Description Replace a device's fields. Renaming a checklist label orphans its history.
// @Tags devices
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "device id"
// @Param body body DeviceRequest true "device"
// @Success 200 {object} DeviceView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/devices/{id} [put]
func UpdateDeviceHandler(c *gin.Context, env *Env) {
	var req DeviceRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, env.Log, err)
		return
	}
	d, err := env.Catalog.UpdateDevice(c.Request.Context(), c.Param("id"), req.input())
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, env.view(*d))
}

// @Summary Delete device
// @Description Delete a device and its inspections. Unknown ids succeed.
// @Tags devices
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "device id"
// @Success 200 {object} map[string]bool
// @Router /v1/devices/{id} [delete]
func DeleteDeviceHandler(c *gin.Context, env *Env) {
	if err := env.Catalog.DeleteDevice(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Device history
// @Description Inspections of one device within a year, oldest period first
// @Tags devices
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "device id"
// @Param year query string false "YYYY, defaults to the current year"
// @Success 200 {object} reconcile.DeviceHistory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/devices/{id}/history [get]
func DeviceHistoryHandler(c *gin.Context, env *Env) {
	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		year = strconv.Itoa(models.TimeNow().Year())
	}
	h, err := env.Reconciler.DeviceHistory(c.Request.Context(), c.Param("id"), year)
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, h)
}
