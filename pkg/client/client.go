package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the inspection tracker's v1 API.
type Client struct {
	ID       string
	BaseURL  string
	Password string
	HTTP     *http.Client
}

// NewClient creates a client; id tags every request's X-Request-ID prefix.
func NewClient(baseURL, password, id string) *Client {
	return &Client{
		ID:       id,
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Password: password,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError is a non-2xx reply.
type APIError struct {
	Status  int
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

type SiteStatus struct {
	Period  string `json:"period"`
	Devices []struct {
		Device struct {
			ID         string   `json:"id"`
			Name       string   `json:"name"`
			CheckItems []string `json:"check_items"`
		} `json:"device"`
		Inspected        bool            `json:"inspected"`
		ThisPeriodStatus map[string]bool `json:"this_period_status"`
	} `json:"devices"`
}

type DeviceHistory struct {
	Year    string `json:"year"`
	History []struct {
		InspectionID uint            `json:"inspection_id"`
		PeriodKey    string          `json:"period_key"`
		Results      map[string]bool `json:"results"`
		Signature    string          `json:"signature"`
		InspectedAt  time.Time       `json:"inspected_at"`
	} `json:"history"`
}

type Dashboard struct {
	Period    string `json:"ym"`
	Inspected int    `json:"inspected"`
	Total     int    `json:"total"`
	Items     []struct {
		Device struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"device"`
		Inspected bool `json:"inspected"`
	} `json:"items"`
}

type Inspection struct {
	ID        uint   `json:"id"`
	DeviceID  string `json:"device_id"`
	PeriodKey string `json:"period_key"`
}

type Submission struct {
	PeriodKey string          `json:"period_key,omitempty"`
	Results   map[string]bool `json:"results"`
	Signature string          `json:"signature"`
	Remarks   string          `json:"remarks,omitempty"`
}

func (c *Client) SiteStatus(ctx context.Context, siteID, period string) (*SiteStatus, error) {
	var out SiteStatus
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	err := c.do(ctx, http.MethodGet, "/v1/sites/"+url.PathEscape(siteID)+"/status", q, nil, &out)
	return &out, err
}

func (c *Client) DeviceHistory(ctx context.Context, deviceID, year string) (*DeviceHistory, error) {
	var out DeviceHistory
	q := url.Values{}
	if year != "" {
		q.Set("year", year)
	}
	err := c.do(ctx, http.MethodGet, "/v1/devices/"+url.PathEscape(deviceID)+"/history", q, nil, &out)
	return &out, err
}

func (c *Client) Dashboard(ctx context.Context, ym string) (*Dashboard, error) {
	var out Dashboard
	q := url.Values{}
	if ym != "" {
		q.Set("ym", ym)
	}
	err := c.do(ctx, http.MethodGet, "/v1/dashboard", q, nil, &out)
	return &out, err
}

func (c *Client) Submit(ctx context.Context, deviceID string, s Submission) (*Inspection, error) {
	var out Inspection
	err := c.do(ctx, http.MethodPost, "/v1/scan/"+url.PathEscape(deviceID), nil, s, &out)
	return &out, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", c.ID+"-"+uuid.NewString())
	if c.Password != "" {
		req.Header.Set("X-Admin-Password", c.Password)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var env struct {
			Error APIError `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&env)
		env.Error.Status = resp.StatusCode
		return &env.Error
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
