package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"inspectrack/internal/apierr"
	"inspectrack/internal/store"

	"github.com/gin-gonic/gin"
)

// @Summary Scan form data
// @Description What a technician sees after scanning a device's code
// @Tags scan
// @Produce json
// @Param id path string true "device id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /v1/scan/{id} [get]
func ScanDeviceHandler(c *gin.Context, env *Env) {
	d, err := env.Catalog.GetDevice(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"device": env.view(*d), "check_items": d.CheckItems})
}

// SubmitInspectionRequest is a technician's checklist. CheckedBy is accepted
// as an alias of Signature.
type SubmitInspectionRequest struct {
	PeriodKey string          `json:"period_key"`
	Results   map[string]bool `json:"results"`
	Signature string          `json:"signature"`
	CheckedBy string          `json:"checked_by"`
	Remarks   string          `json:"remarks"`
}

// @Summary Submit inspection
// @Description Record checklist results for a device. Duplicate submissions for a period are kept; the latest wins in status views.
// @Tags scan
// @Accept json
// @Produce json
// @Param id path string true "device id"
// @Param body body SubmitInspectionRequest true "results"
// @Success 200 {object} models.Inspection
// @Failure 400 {object} ErrorResponse
// @Router /v1/scan/{id} [post]
func SubmitInspectionHandler(c *gin.Context, env *Env) {
	var req SubmitInspectionRequest
	if err := bindJSON(c, &req); err != nil {
		RespondError(c, env.Log, err)
		return
	}
	signature := req.Signature
	if strings.TrimSpace(signature) == "" {
		signature = req.CheckedBy
	}
	ins, err := env.Ledger.Submit(c.Request.Context(), store.InspectionInput{
		DeviceID:  c.Param("id"),
		PeriodKey: req.PeriodKey,
		Results:   req.Results,
		Signature: signature,
		Remarks:   req.Remarks,
	})
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, ins)
}

// @Summary List inspections
// @Description Audit view of every submission, newest first
// @Tags inspections
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Success 200 {object} map[string]interface{}
// @Router /v1/inspections [get]
func ListInspectionsHandler(c *gin.Context, env *Env) {
	list, err := env.Ledger.ListAll(c.Request.Context())
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inspections": list})
}

// @Summary Get inspection
// @Tags inspections
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param id path int true "inspection id"
// @Success 200 {object} models.Inspection
// @Failure 404 {object} ErrorResponse
// @Router /v1/inspections/{id} [get]
func GetInspectionHandler(c *gin.Context, env *Env) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, env.Log, apierr.NotFound("inspection %q not found", c.Param("id")))
		return
	}
	ins, err := env.Ledger.GetInspection(c.Request.Context(), uint(id))
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, ins)
}

// @Summary Monthly dashboard
// @Description Whether each device has at least one inspection stamped in the month
// @Tags inspections
// @Produce json
// @Param X-Admin-Password header string true "admin password"
// @Param ym query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} reconcile.Dashboard
// @Failure 400 {object} ErrorResponse
// @Router /v1/dashboard [get]
func DashboardHandler(c *gin.Context, env *Env) {
	d, err := env.Reconciler.MonthlyDashboard(c.Request.Context(), strings.TrimSpace(c.Query("ym")))
	if err != nil {
		RespondError(c, env.Log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
