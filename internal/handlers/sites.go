package handlers

import (
	"net/http"
	"strings"

	"inspectrack/internal/models"

	"github.com/gin-gonic/gin"
)

type CreateSiteRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// @Summary Create site
// @Description Register a new site that groups devices
// @Tags sites
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param body body CreateSiteRequest true "site"
// @Success 200 {object} models.Site
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/sites [post]
func CreateSiteHandler(c *gin.Context, env *Env) {
	var req CreateSiteRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, env.Log, err)
		return
	}
	site, err := env.Catalog.CreateSite(c.Request.Context(), req.Name, req.Location)
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

// @Summary List sites
// @Tags sites
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} ErrorResponse
// @Router /v1/sites [get]
func ListSitesHandler(c *gin.Context, env *Env) {
	sites, err := env.Catalog.ListSites(c.Request.Context())
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

// @Summary Get site
// @Tags sites
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "site id"
// @Success 200 {object} models.Site
// @Failure 404 {object} ErrorResponse
// @Router /v1/sites/{id} [get]
func GetSiteHandler(c *gin.Context, env *Env) {
	site, err := env.Catalog.GetSite(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

// @Summary Delete site
// @Description Delete a site with all of its devices and inspections. Unknown ids succeed.
// @Tags sites
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "site id"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} ErrorResponse
// @Router /v1/sites/{id} [delete]
func DeleteSiteHandler(c *gin.Context, env *Env) {
	if err := env.Catalog.DeleteSite(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary List site devices
// @Tags sites
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "site id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /v1/sites/{id}/devices [get]
func ListSiteDevicesHandler(c *gin.Context, env *Env) {
	ctx := c.Request.Context()
	site, err := env.Catalog.GetSite(ctx, c.Param("id"))
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	devices, err := env.Catalog.ListDevices(ctx, &site.ID)
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": site, "devices": env.views(devices)})
}

// @Summary Site status for a period
// @Description Per-device checklist status; this_period_status is null when the device was not inspected
// @Tags sites
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path string true "site id"
// @Param period query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} reconcile.SiteStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/sites/{id}/status [get]
func SiteStatusHandler(c *gin.Context, env *Env) {
	period := strings.TrimSpace(c.Query("period"))
	if period == "" {
		period = models.PeriodKeyOf(models.TimeNow())
	}
	status, err := env.Reconciler.SiteStatus(c.Request.Context(), c.Param("id"), period)
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
