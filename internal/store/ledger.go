package store

import (
	"context"
	"errors"
	"maps"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"inspectrack/internal/apierr"
	"inspectrack/internal/models"
)

// InspectionInput is one field submission. An empty PeriodKey defaults to
// the UTC year-month of the submission time.
type InspectionInput struct {
	DeviceID  string
	PeriodKey string
	Results   map[string]bool
	Signature string
	Remarks   string
}

// PeriodFilter narrows ListByDevice. Exact wins over Prefix; both empty
// returns everything.
type PeriodFilter struct {
	Exact  string
	Prefix string
}

// Submit appends an inspection. Result labels are stored as given, even when
// they are not on the device's current checklist.
func (s *SQLStore) Submit(ctx context.Context, in InspectionInput) (*models.Inspection, error) {
	signature := strings.TrimSpace(in.Signature)
	if signature == "" {
		return nil, apierr.Validation("signature is required")
	}
	now := models.TimeNow()
	period := strings.TrimSpace(in.PeriodKey)
	if period == "" {
		period = models.PeriodKeyOf(now)
	} else if _, err := models.ParsePeriodKey(period); err != nil {
		return nil, apierr.New(apierr.KindValidation, err)
	}
	results := make(map[string]bool, len(in.Results))
	maps.Copy(results, in.Results)

	ins := &models.Inspection{
		DeviceID:     in.DeviceID,
		PeriodKey:    period,
		CheckResults: datatypes.NewJSONType(results),
		Signature:    signature,
		Remarks:      strings.TrimSpace(in.Remarks),
		InspectedAt:  now,
	}

	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, classify("submit inspection", tx.Error)
	}
	var count int64
	if err := tx.Model(&models.Device{}).Where("id = ?", in.DeviceID).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, classify("submit inspection", err)
	}
	if count == 0 {
		tx.Rollback()
		return nil, apierr.Reference("device %q does not exist", in.DeviceID)
	}
	if err := tx.Create(ins).Error; err != nil {
		tx.Rollback()
		return nil, classify("submit inspection", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, classify("submit inspection", err)
	}
	s.log.Info("inspection submitted", "inspection_id", ins.ID, "device_id", ins.DeviceID, "period", ins.PeriodKey)
	return ins, nil
}

func (s *SQLStore) GetInspection(ctx context.Context, id uint) (*models.Inspection, error) {
	if id == 0 {
		return nil, apierr.NotFound("inspection id is empty")
	}
	var ins models.Inspection
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&ins).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("inspection %d not found", id)
		}
		return nil, classify("get inspection", err)
	}
	return &ins, nil
}

// ListByDevice returns a device's inspections ordered by period then
// insertion.
func (s *SQLStore) ListByDevice(ctx context.Context, deviceID string, filter PeriodFilter) ([]models.Inspection, error) {
	q := s.DB.WithContext(ctx).Where("device_id = ?", deviceID)
	switch {
	case filter.Exact != "":
		q = q.Where("period_key = ?", filter.Exact)
	case filter.Prefix != "":
		q = q.Where(`period_key LIKE ? ESCAPE '\'`, escapeLike(filter.Prefix)+"%")
	}
	var out []models.Inspection
	if err := q.Order("period_key asc, id asc").Find(&out).Error; err != nil {
		return nil, classify("list inspections by device", err)
	}
	return out, nil
}

// ListForPeriod returns every inspection of the given devices for one period,
// oldest insertion first.
func (s *SQLStore) ListForPeriod(ctx context.Context, deviceIDs []string, periodKey string) ([]models.Inspection, error) {
	if len(deviceIDs) == 0 {
		return []models.Inspection{}, nil
	}
	var out []models.Inspection
	if err := s.DB.WithContext(ctx).
		Where("device_id IN ? AND period_key = ?", deviceIDs, periodKey).
		Order("id asc").
		Find(&out).Error; err != nil {
		return nil, classify("list inspections for period", err)
	}
	return out, nil
}

// ListInspectedBetween returns inspections with inspected_at in [from, to).
func (s *SQLStore) ListInspectedBetween(ctx context.Context, from, to time.Time) ([]models.Inspection, error) {
	var out []models.Inspection
	if err := s.DB.WithContext(ctx).
		Where("inspected_at >= ? AND inspected_at < ?", from.UTC(), to.UTC()).
		Order("id asc").
		Find(&out).Error; err != nil {
		return nil, classify("list inspections between", err)
	}
	return out, nil
}

// ListAll returns the audit view, newest first.
func (s *SQLStore) ListAll(ctx context.Context) ([]models.Inspection, error) {
	var out []models.Inspection
	if err := s.DB.WithContext(ctx).Order("inspected_at desc, id desc").Find(&out).Error; err != nil {
		return nil, classify("list inspections", err)
	}
	return out, nil
}
