package models

import (
	"time"

	"gorm.io/datatypes"
)

type Site struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Location  string    `gorm:"size:255" json:"location"`
	CreatedAt time.Time `json:"created_at"`

	Devices []Device `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"-"`
}

// Device is the inspectable unit. A nil SiteID marks a global device.
type Device struct {
	ID         string                      `gorm:"primaryKey;size:64" json:"id"`
	SiteID     *string                     `gorm:"size:64;index" json:"site_id"`
	Name       string                      `gorm:"size:255;not null" json:"name"`
	Location   string                      `gorm:"size:255" json:"location"`
	Specs      string                      `gorm:"type:text" json:"specs"`
	ExpiryDate *string                     `gorm:"size:10" json:"expiry_date"`
	CheckItems datatypes.JSONSlice[string] `json:"check_items"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`

	Inspections []Inspection `gorm:"foreignKey:DeviceID;constraint:OnDelete:CASCADE" json:"-"`
}

// Inspection is one immutable checklist submission.
type Inspection struct {
	ID           uint                                `gorm:"primaryKey" json:"id"`
	DeviceID     string                              `gorm:"size:64;not null;index:idx_inspection_device_period" json:"device_id"`
	PeriodKey    string                              `gorm:"size:7;not null;index:idx_inspection_device_period" json:"period_key"`
	CheckResults datatypes.JSONType[map[string]bool] `json:"check_results"`
	Signature    string                              `gorm:"size:255" json:"signature"`
	Remarks      string                              `gorm:"type:text" json:"remarks"`
	InspectedAt  time.Time                           `gorm:"index" json:"inspected_at"`
}

// Results returns the decoded check_results map (never nil).
func (i Inspection) Results() map[string]bool {
	r := i.CheckResults.Data()
	if r == nil {
		return map[string]bool{}
	}
	return r
}

// TimeNow is the clock used for server-assigned timestamps.
var TimeNow = func() time.Time { return time.Now().UTC() }
