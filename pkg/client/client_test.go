package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSubmitSendsHeadersAndBody(t *testing.T) {
	var gotPath, gotReqID, gotPassword string
	var gotBody Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotReqID = r.Header.Get("X-Request-ID")
		gotPassword = r.Header.Get("X-Admin-Password")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 9, "device_id": "d1", "period_key": "2026-03"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "pw", "tablet-1")
	ins, err := c.Submit(context.Background(), "d1", Submission{
		PeriodKey: "2026-03",
		Results:   map[string]bool{"pressure": true},
		Signature: "Lee",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ins.ID != 9 || ins.PeriodKey != "2026-03" {
		t.Fatalf("inspection = %+v", ins)
	}
	if gotPath != "/v1/scan/d1" {
		t.Fatalf("path = %q", gotPath)
	}
	if !strings.HasPrefix(gotReqID, "tablet-1-") {
		t.Fatalf("request id = %q", gotReqID)
	}
	if gotPassword != "pw" {
		t.Fatalf("password header = %q", gotPassword)
	}
	if gotBody.Signature != "Lee" || !gotBody.Results["pressure"] {
		t.Fatalf("body = %+v", gotBody)
	}
}

func TestErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("period") != "2026-04" {
			t.Errorf("period query = %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"site \"x\" not found","code":"not_found"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", "cli").SiteStatus(context.Background(), "x", "2026-04")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "not_found" {
		t.Fatalf("apiErr = %+v", apiErr)
	}
}

func TestDashboardDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ym":"2026-03","inspected":1,"total":2,"items":[{"device":{"id":"a","name":"A"},"inspected":true},{"device":{"id":"b","name":"B"},"inspected":false}]}`))
	}))
	defer srv.Close()

	d, err := NewClient(srv.URL, "pw", "cli").Dashboard(context.Background(), "2026-03")
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if d.Total != 2 || len(d.Items) != 2 || !d.Items[0].Inspected || d.Items[1].Device.Name != "B" {
		t.Fatalf("dashboard = %+v", d)
	}
}
