// Package reconcile merges the device catalog with the inspection ledger into
// the per-period views shown on dashboards. Nothing is cached; every call
// reads the stores.
package reconcile

import (
	"context"
	"time"

	"inspectrack/internal/apierr"
	"inspectrack/internal/logger"
	"inspectrack/internal/models"
	"inspectrack/internal/store"
)

type Service struct {
	catalog store.CatalogStore
	ledger  store.Ledger
	log     *logger.Logger
}

func NewService(catalog store.CatalogStore, ledger store.Ledger, baseLog *logger.Logger) *Service {
	return &Service{catalog: catalog, ledger: ledger, log: baseLog.With("service", "Reconciler")}
}

// InspectionSummary identifies the submission a status was taken from.
type InspectionSummary struct {
	ID          uint      `json:"id"`
	Signature   string    `json:"signature"`
	Remarks     string    `json:"remarks"`
	InspectedAt time.Time `json:"inspected_at"`
}

// DeviceStatus is one device's state for a period. ThisPeriodStatus is nil
// when nothing was reported, which is distinct from a map of false values.
type DeviceStatus struct {
	Device           models.Device      `json:"device"`
	Inspected        bool               `json:"inspected"`
	ThisPeriodStatus map[string]bool    `json:"this_period_status"`
	Inspection       *InspectionSummary `json:"inspection"`
	Submissions      int                `json:"submissions"`
}

type SiteStatus struct {
	Site    models.Site    `json:"site"`
	Period  string         `json:"period"`
	Devices []DeviceStatus `json:"devices"`
}

// SiteStatus reports every device of a site for periodKey. When a device
// has several submissions for the period, the one inserted last (highest id)
// wins.
func (s *Service) SiteStatus(ctx context.Context, siteID, periodKey string) (*SiteStatus, error) {
	if _, err := models.ParsePeriodKey(periodKey); err != nil {
		return nil, apierr.New(apierr.KindValidation, err)
	}
	site, err := s.catalog.GetSite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	devices, err := s.catalog.ListDevices(ctx, &site.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	inspections, err := s.ledger.ListForPeriod(ctx, ids, periodKey)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]models.Inspection, len(inspections))
	counts := make(map[string]int, len(inspections))
	for _, ins := range inspections {
		counts[ins.DeviceID]++
		if cur, ok := latest[ins.DeviceID]; !ok || ins.ID > cur.ID {
			latest[ins.DeviceID] = ins
		}
	}

	out := &SiteStatus{Site: *site, Period: periodKey, Devices: make([]DeviceStatus, 0, len(devices))}
	for _, d := range devices {
		st := DeviceStatus{Device: d, Submissions: counts[d.ID]}
		if ins, ok := latest[d.ID]; ok {
			st.Inspected = true
			st.ThisPeriodStatus = ins.Results()
			st.Inspection = &InspectionSummary{
				ID:          ins.ID,
				Signature:   ins.Signature,
				Remarks:     ins.Remarks,
				InspectedAt: ins.InspectedAt,
			}
		}
		out.Devices = append(out.Devices, st)
	}
	s.log.Debug("site status computed", "site_id", siteID, "period", periodKey, "devices", len(devices), "reported", len(latest))
	return out, nil
}

type HistoryEntry struct {
	InspectionID uint            `json:"inspection_id"`
	PeriodKey    string          `json:"period_key"`
	Results      map[string]bool `json:"results"`
	Signature    string          `json:"signature"`
	Remarks      string          `json:"remarks"`
	InspectedAt  time.Time       `json:"inspected_at"`
}

type DeviceHistory struct {
	Device  models.Device  `json:"device"`
	Year    string         `json:"year"`
	History []HistoryEntry `json:"history"`
}

// DeviceHistory lists every submission of a device within year, ordered by
// period and then insertion.
func (s *Service) DeviceHistory(ctx context.Context, deviceID, year string) (*DeviceHistory, error) {
	if !models.ValidYear(year) {
		return nil, apierr.Validation("year %q must be four digits", year)
	}
	device, err := s.catalog.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	inspections, err := s.ledger.ListByDevice(ctx, device.ID, store.PeriodFilter{Prefix: year + "-"})
	if err != nil {
		return nil, err
	}
	out := &DeviceHistory{Device: *device, Year: year, History: make([]HistoryEntry, 0, len(inspections))}
	for _, ins := range inspections {
		out.History = append(out.History, HistoryEntry{
			InspectionID: ins.ID,
			PeriodKey:    ins.PeriodKey,
			Results:      ins.Results(),
			Signature:    ins.Signature,
			Remarks:      ins.Remarks,
			InspectedAt:  ins.InspectedAt,
		})
	}
	return out, nil
}

type DashboardEntry struct {
	Device    models.Device `json:"device"`
	Inspected bool          `json:"inspected"`
}

type Dashboard struct {
	Period    string           `json:"ym"`
	Inspected int              `json:"inspected"`
	Total     int              `json:"total"`
	Items     []DashboardEntry `json:"items"`
}

// MonthlyDashboard flags every device that has at least one submission whose
// server timestamp falls in the month ym. An empty ym means the current month.
func (s *Service) MonthlyDashboard(ctx context.Context, ym string) (*Dashboard, error) {
	if ym == "" {
		ym = models.PeriodKeyOf(models.TimeNow())
	}
	from, to, err := models.MonthRange(ym)
	if err != nil {
		return nil, apierr.New(apierr.KindValidation, err)
	}
	devices, err := s.catalog.ListAllDevices(ctx)
	if err != nil {
		return nil, err
	}
	inspections, err := s.ledger.ListInspectedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	inspected := make(map[string]bool, len(inspections))
	for _, ins := range inspections {
		inspected[ins.DeviceID] = true
	}

	out := &Dashboard{Period: ym, Total: len(devices), Items: make([]DashboardEntry, 0, len(devices))}
	for _, d := range devices {
		ok := inspected[d.ID]
		if ok {
			out.Inspected++
		}
		out.Items = append(out.Items, DashboardEntry{Device: d, Inspected: ok})
	}
	return out, nil
}
