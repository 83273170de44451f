package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"inspectrack/internal/apierr"
	"inspectrack/internal/logger"
	"inspectrack/internal/models"
)

func newTestStore(tb testing.TB) *SQLStore {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("logger: %v", err)
	}
	s, err := Open(filepath.Join(tb.TempDir(), "inspect.db"), log)
	if err != nil {
		tb.Fatalf("open store: %v", err)
	}
	tb.Cleanup(func() { _ = s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func mustSite(tb testing.TB, s *SQLStore, name string) *models.Site {
	tb.Helper()
	site, err := s.CreateSite(context.Background(), name, "HQ")
	if err != nil {
		tb.Fatalf("CreateSite: %v", err)
	}
	return site
}

func mustDevice(tb testing.TB, s *SQLStore, siteID *string, name string, items ...string) *models.Device {
	tb.Helper()
	d, err := s.CreateDevice(context.Background(), DeviceInput{
		SiteID:     siteID,
		Name:       name,
		CheckItems: items,
	})
	if err != nil {
		tb.Fatalf("CreateDevice: %v", err)
	}
	return d
}

func countInspections(tb testing.TB, s *SQLStore, deviceIDs ...string) int64 {
	tb.Helper()
	var n int64
	if err := s.DB.Model(&models.Inspection{}).Where("device_id IN ?", deviceIDs).Count(&n).Error; err != nil {
		tb.Fatalf("count: %v", err)
	}
	return n
}

func TestDialector(t *testing.T) {
	cases := map[string]string{
		"":                            "sqlite",
		"sqlite://data/inspect.db":    "sqlite",
		"/var/lib/inspect.db":         "sqlite",
		"postgres://u:p@db/inspect":   "postgres",
		"postgresql://u:p@db/inspect": "postgres",
	}
	for dsn, want := range cases {
		if got := Dialector(dsn).Name(); got != want {
			t.Errorf("Dialector(%q) = %s, want %s", dsn, got, want)
		}
	}
}

func TestSQLiteDSN(t *testing.T) {
	cases := map[string]string{
		"":                       "inspection.db?_busy_timeout=5000&_foreign_keys=on",
		"sqlite://a.db":          "a.db?_busy_timeout=5000&_foreign_keys=on",
		"a.db?cache=shared":      "a.db?cache=shared&_busy_timeout=5000&_foreign_keys=on",
		"a.db?_busy_timeout=100": "a.db?_busy_timeout=100&_foreign_keys=on",
	}
	for in, want := range cases {
		if got := SQLiteDSN(in); got != want {
			t.Errorf("SQLiteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateSiteGeneratesDistinctIDs(t *testing.T) {
	s := newTestStore(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		site := mustSite(t, s, "Plant")
		if seen[site.ID] {
			t.Fatalf("duplicate id %s", site.ID)
		}
		seen[site.ID] = true
		if strings.ContainsAny(site.ID, "/?# ") {
			t.Fatalf("id %q not URL path safe", site.ID)
		}
	}
	sites, err := s.ListSites(context.Background())
	if err != nil {
		t.Fatalf("ListSites: %v", err)
	}
	if len(sites) != 20 {
		t.Fatalf("ListSites: got %d", len(sites))
	}
}

func TestCreateSiteRequiresName(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateSite(context.Background(), "  ", "x"); !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateDeviceRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	site := mustSite(t, s, "S1")

	items := []string{"pressure", "hose", "pin", "label"}
	created, err := s.CreateDevice(ctx, DeviceInput{
		SiteID:     &site.ID,
		Name:       "Extinguisher 1",
		Location:   "Lobby",
		Specs:      "ABC 6kg",
		ExpiryDate: strPtr("2028-05-31"),
		CheckItems: items,
	})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}

	got, err := s.GetDevice(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetDevice: %v", err)
	}
	if !reflect.DeepEqual([]string(got.CheckItems), items) {
		t.Fatalf("check items = %v, want %v", got.CheckItems, items)
	}
	if got.SiteID == nil || *got.SiteID != site.ID {
		t.Fatalf("site id = %v", got.SiteID)
	}
	if got.ExpiryDate == nil || *got.ExpiryDate != "2028-05-31" {
		t.Fatalf("expiry = %v", got.ExpiryDate)
	}
}

func TestCreateDeviceValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cases := map[string]DeviceInput{
		"no name":     {CheckItems: []string{"a"}},
		"no items":    {Name: "d"},
		"blank label": {Name: "d", CheckItems: []string{"a", " "}},
		"bad expiry":  {Name: "d", CheckItems: []string{"a"}, ExpiryDate: strPtr("31/05/2028")},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := s.CreateDevice(ctx, in); !errors.Is(err, apierr.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateDeviceUnknownSite(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateDevice(context.Background(), DeviceInput{
		SiteID:     strPtr("nope"),
		Name:       "d",
		CheckItems: []string{"a"},
	})
	if !errors.Is(err, apierr.ErrReference) {
		t.Fatalf("expected reference error, got %v", err)
	}
}

func TestListDevicesScopesBySite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := mustSite(t, s, "A")
	b := mustSite(t, s, "B")
	mustDevice(t, s, &a.ID, "a1", "x")
	mustDevice(t, s, &a.ID, "a2", "x")
	mustDevice(t, s, &b.ID, "b1", "x")
	mustDevice(t, s, nil, "global", "x")

	got, err := s.ListDevices(ctx, &a.ID)
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if len(got) != 2 || got[0].Name != "a1" || got[1].Name != "a2" {
		t.Fatalf("site A devices = %+v", got)
	}
	global, err := s.ListDevices(ctx, nil)
	if err != nil {
		t.Fatalf("ListDevices(nil): %v", err)
	}
	if len(global) != 1 || global[0].Name != "global" {
		t.Fatalf("global devices = %+v", global)
	}
	all, err := s.ListAllDevices(ctx)
	if err != nil {
		t.Fatalf("ListAllDevices: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("all devices = %d", len(all))
	}
}

func TestUpdateDeviceKeepsHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := mustDevice(t, s, nil, "d", "pressure", "hose")
	if _, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, PeriodKey: "2026-01", Results: map[string]bool{"hose": true}, Signature: "amy"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	updated, err := s.UpdateDevice(ctx, d.ID, DeviceInput{Name: "d2", CheckItems: []string{"pressure", "nozzle"}})
	if err != nil {
		t.Fatalf("UpdateDevice: %v", err)
	}
	if updated.Name != "d2" || !reflect.DeepEqual([]string(updated.CheckItems), []string{"pressure", "nozzle"}) {
		t.Fatalf("updated = %+v", updated)
	}
	hist, err := s.ListByDevice(ctx, d.ID, PeriodFilter{})
	if err != nil {
		t.Fatalf("ListByDevice: %v", err)
	}
	if len(hist) != 1 || !hist[0].Results()["hose"] {
		t.Fatalf("history = %+v", hist)
	}

	if _, err := s.UpdateDevice(ctx, "missing", DeviceInput{Name: "x", CheckItems: []string{"a"}}); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteDeviceIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := mustDevice(t, s, nil, "d", "a")
	if _, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, PeriodKey: "2026-03", Results: map[string]bool{"a": true}, Signature: "bob"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.DeleteDevice(ctx, d.ID); err != nil {
			t.Fatalf("DeleteDevice #%d: %v", i+1, err)
		}
		if _, err := s.GetDevice(ctx, d.ID); !errors.Is(err, apierr.ErrNotFound) {
			t.Fatalf("GetDevice after delete: %v", err)
		}
	}
	if n := countInspections(t, s, d.ID); n != 0 {
		t.Fatalf("orphan inspections: %d", n)
	}
}

func TestDeleteSiteCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	site := mustSite(t, s, "S")
	other := mustSite(t, s, "Other")
	keep := mustDevice(t, s, &other.ID, "keep", "a")

	var ids []string
	for i := 0; i < 3; i++ {
		d := mustDevice(t, s, &site.ID, "d", "a")
		ids = append(ids, d.ID)
		for m := 1; m <= 4; m++ {
			if _, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, PeriodKey: fmt.Sprintf("2026-%02d", m), Results: map[string]bool{"a": true}, Signature: "x"}); err != nil {
				t.Fatalf("Submit: %v", err)
			}
		}
	}
	if _, err := s.Submit(ctx, InspectionInput{DeviceID: keep.ID, PeriodKey: "2026-01", Signature: "x"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if n := countInspections(t, s, ids...); n != 12 {
		t.Fatalf("seeded %d inspections, want 12", n)
	}

	if err := s.DeleteSite(ctx, site.ID); err != nil {
		t.Fatalf("DeleteSite: %v", err)
	}
	if n := countInspections(t, s, ids...); n != 0 {
		t.Fatalf("inspections left after cascade: %d", n)
	}
	if _, err := s.GetSite(ctx, site.ID); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("GetSite after delete: %v", err)
	}
	if n := countInspections(t, s, keep.ID); n != 1 {
		t.Fatalf("other site's inspections touched: %d", n)
	}
	if err := s.DeleteSite(ctx, site.ID); err != nil {
		t.Fatalf("second DeleteSite: %v", err)
	}
}

func TestSubmitUnknownDevice(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Submit(context.Background(), InspectionInput{DeviceID: "ghost", PeriodKey: "2026-03", Signature: "x"})
	if !errors.Is(err, apierr.ErrReference) {
		t.Fatalf("expected reference error, got %v", err)
	}
	var n int64
	if err := s.DB.Model(&models.Inspection{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rows written: %d", n)
	}
}

func TestSubmitValidationAndDefaults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := mustDevice(t, s, nil, "d", "a")

	if _, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, PeriodKey: "2026-03"}); !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("missing signature: %v", err)
	}
	if _, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, PeriodKey: "March", Signature: "x"}); !errors.Is(err, apierr.ErrValidation) {
		t.Fatalf("bad period: %v", err)
	}

	restore := models.TimeNow
	models.TimeNow = func() time.Time { return time.Date(2026, 7, 15, 9, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { models.TimeNow = restore })

	ins, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, Results: map[string]bool{"a": false, "unlisted": true}, Signature: " carol "})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ins.PeriodKey != "2026-07" {
		t.Fatalf("default period = %q", ins.PeriodKey)
	}
	got, err := s.GetInspection(ctx, ins.ID)
	if err != nil {
		t.Fatalf("GetInspection: %v", err)
	}
	want := map[string]bool{"a": false, "unlisted": true}
	if !reflect.DeepEqual(got.Results(), want) {
		t.Fatalf("results = %v, want %v", got.Results(), want)
	}
	if got.Signature != "carol" {
		t.Fatalf("signature = %q", got.Signature)
	}
}

func TestGetInspectionNotFound(t *testing.T) {
	s := newTestStore(t)
	for _, id := range []uint{0, 42} {
		if _, err := s.GetInspection(context.Background(), id); !errors.Is(err, apierr.ErrNotFound) {
			t.Fatalf("GetInspection(%d): %v", id, err)
		}
	}
}

func TestListByDeviceFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := mustDevice(t, s, nil, "d", "a")
	for _, p := range []string{"2026-03", "2025-12", "2026-01", "2026-03"} {
		if _, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, PeriodKey: p, Signature: "x"}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	periods := func(list []models.Inspection) []string {
		var out []string
		for _, i := range list {
			out = append(out, i.PeriodKey)
		}
		return out
	}

	all, err := s.ListByDevice(ctx, d.ID, PeriodFilter{})
	if err != nil {
		t.Fatalf("ListByDevice: %v", err)
	}
	if got := periods(all); !reflect.DeepEqual(got, []string{"2025-12", "2026-01", "2026-03", "2026-03"}) {
		t.Fatalf("all = %v", got)
	}
	if all[2].ID > all[3].ID {
		t.Fatalf("same-period entries not in insertion order")
	}

	year, err := s.ListByDevice(ctx, d.ID, PeriodFilter{Prefix: "2026-"})
	if err != nil {
		t.Fatalf("ListByDevice prefix: %v", err)
	}
	if len(year) != 3 {
		t.Fatalf("2026 entries = %v", periods(year))
	}

	exact, err := s.ListByDevice(ctx, d.ID, PeriodFilter{Exact: "2026-03"})
	if err != nil {
		t.Fatalf("ListByDevice exact: %v", err)
	}
	if len(exact) != 2 {
		t.Fatalf("exact entries = %v", periods(exact))
	}

	wild, err := s.ListByDevice(ctx, d.ID, PeriodFilter{Prefix: "%"})
	if err != nil {
		t.Fatalf("ListByDevice wildcard: %v", err)
	}
	if len(wild) != 0 {
		t.Fatalf("wildcard prefix matched %d rows", len(wild))
	}
}

func TestListAllNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	d := mustDevice(t, s, nil, "d", "a")

	restore := models.TimeNow
	t.Cleanup(func() { models.TimeNow = restore })
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		models.TimeNow = func() time.Time { return at }
		if _, err := s.Submit(ctx, InspectionInput{DeviceID: d.ID, PeriodKey: "2026-03", Signature: "x"}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll len = %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].InspectedAt.Before(all[i].InspectedAt) {
			t.Fatalf("ListAll not descending: %v then %v", all[i-1].InspectedAt, all[i].InspectedAt)
		}
	}

	between, err := s.ListInspectedBetween(ctx, base.Add(30*time.Minute), base.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("ListInspectedBetween: %v", err)
	}
	if len(between) != 1 || !between[0].InspectedAt.Equal(base.Add(time.Hour)) {
		t.Fatalf("between = %+v", between)
	}
}

func TestListForPeriod(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := mustDevice(t, s, nil, "a", "x")
	b := mustDevice(t, s, nil, "b", "x")
	for _, in := range []InspectionInput{
		{DeviceID: a.ID, PeriodKey: "2026-03", Signature: "1"},
		{DeviceID: b.ID, PeriodKey: "2026-04", Signature: "2"},
		{DeviceID: a.ID, PeriodKey: "2026-03", Signature: "3"},
	} {
		if _, err := s.Submit(ctx, in); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	got, err := s.ListForPeriod(ctx, []string{a.ID, b.ID}, "2026-03")
	if err != nil {
		t.Fatalf("ListForPeriod: %v", err)
	}
	if len(got) != 2 || got[0].Signature != "1" || got[1].Signature != "3" {
		t.Fatalf("ListForPeriod = %+v", got)
	}
	empty, err := s.ListForPeriod(ctx, nil, "2026-03")
	if err != nil || len(empty) != 0 {
		t.Fatalf("ListForPeriod(nil) = %v, %v", empty, err)
	}
}
