package api

import (
	"net/http"

	"inspectrack/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the v1 API. Admin routes sit behind the shared
// password; the scan routes are open to technicians.
func RegisterRoutes(r *gin.Engine, env *handlers.Env, adminPassword string) {
	v1 := r.Group("/v1")
	{
		v1.GET("/ping", handlers.PingHandler)

		scan := v1.Group("/scan")
		scan.GET("/:id", func(c *gin.Context) {
			handlers.ScanDeviceHandler(c, env)
		})
		scan.POST("/:id", func(c *gin.Context) {
			handlers.SubmitInspectionHandler(c, env)
		})

		admin := v1.Group("", RequireAdmin(adminPassword, env.Log))

		admin.POST("/sites", func(c *gin.Context) {
			handlers.CreateSiteHandler(c, env)
		})
		admin.GET("/sites", func(c *gin.Context) {
			handlers.ListSitesHandler(c, env)
		})
		admin.GET("/sites/:id", func(c *gin.Context) {
			handlers.GetSiteHandler(c, env)
		})
		admin.DELETE("/sites/:id", func(c *gin.Context) {
			handlers.DeleteSiteHandler(c, env)
		})
		admin.GET("/sites/:id/devices", func(c *gin.Context) {
			handlers.ListSiteDevicesHandler(c, env)
		})
		admin.GET("/sites/:id/status", func(c *gin.Context) {
			handlers.SiteStatusHandler(c, env)
		})

		admin.POST("/devices", func(c *gin.Context) {
			handlers.CreateDeviceHandler(c, env)
		})
		admin.GET("/devices", func(c *gin.Context) {
			handlers.ListGlobalDevicesHandler(c, env)
		})
		admin.GET("/devices/:id", func(c *gin.Context) {
			handlers.GetDeviceHandler(c, env)
		})
		admin.PUT("/devices/:id", func(c *gin.Context) {
			handlers.UpdateDeviceHandler(c, env)
		})
		admin.DELETE("/devices/:id", func(c *gin.Context) {
			handlers.DeleteDeviceHandler(c, env)
		})
		admin.GET("/devices/:id/history", func(c *gin.Context) {
			handlers.DeviceHistoryHandler(c, env)
		})

		admin.GET("/inspections", func(c *gin.Context) {
			handlers.ListInspectionsHandler(c, env)
		})
		admin.GET("/inspections/:id", func(c *gin.Context) {
			handlers.GetInspectionHandler(c, env)
		})
		admin.GET("/dashboard", func(c *gin.Context) {
			handlers.DashboardHandler(c, env)
		})

		// redirect the legacy openapi path to the Swagger UI index page (temporary redirect to avoid client caching)
		v1.GET("/openapi.json", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/swagger/index.html")
		})
	}

	// technicians land on /scan/:id from the printed code
	r.GET("/scan/:id", func(c *gin.Context) {
		handlers.ScanDeviceHandler(c, env)
	})
	r.POST("/scan/:id", func(c *gin.Context) {
		handlers.SubmitInspectionHandler(c, env)
	})
}
