package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"inspectrack/internal/apierr"
	"inspectrack/internal/models"
)

// DeviceInput carries the mutable fields of a device.
type DeviceInput struct {
	SiteID     *string
	Name       string
	Location   string
	Specs      string
	ExpiryDate *string
	CheckItems []string
}

// normalize trims labels and optional fields and enforces the required ones.
func (in DeviceInput) normalize() (DeviceInput, error) {
	out := in
	out.Name = strings.TrimSpace(in.Name)
	out.Location = strings.TrimSpace(in.Location)
	out.Specs = strings.TrimSpace(in.Specs)
	if out.Name == "" {
		return out, apierr.Validation("device name is required")
	}
	if len(in.CheckItems) == 0 {
		return out, apierr.Validation("check_items must contain at least one label")
	}
	out.CheckItems = make([]string, len(in.CheckItems))
	for i, label := range in.CheckItems {
		label = strings.TrimSpace(label)
		if label == "" {
			return out, apierr.Validation("check_items[%d] is empty", i)
		}
		out.CheckItems[i] = label
	}
	if in.SiteID != nil {
		id := strings.TrimSpace(*in.SiteID)
		if id == "" {
			out.SiteID = nil
		} else {
			out.SiteID = &id
		}
	}
	if in.ExpiryDate != nil {
		d := strings.TrimSpace(*in.ExpiryDate)
		switch {
		case d == "":
			out.ExpiryDate = nil
		case !models.ValidDate(d):
			return out, apierr.Validation("expiry_date %q must be formatted YYYY-MM-DD", d)
		default:
			out.ExpiryDate = &d
		}
	}
	return out, nil
}

func (s *SQLStore) CreateSite(ctx context.Context, name, location string) (*models.Site, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apierr.Validation("site name is required")
	}
	site := &models.Site{
		ID:       newID(),
		Name:     name,
		Location: strings.TrimSpace(location),
	}
	if err := s.DB.WithContext(ctx).Create(site).Error; err != nil {
		return nil, classify("create site", err)
	}
	s.log.Info("site created", "site_id", site.ID)
	return site, nil
}

func (s *SQLStore) ListSites(ctx context.Context) ([]models.Site, error) {
	var out []models.Site
	if err := s.DB.WithContext(ctx).Order("created_at asc, id asc").Find(&out).Error; err != nil {
		return nil, classify("list sites", err)
	}
	return out, nil
}

func (s *SQLStore) GetSite(ctx context.Context, siteID string) (*models.Site, error) {
	return getSite(ctx, s.DB, siteID)
}

func getSite(ctx context.Context, db *gorm.DB, siteID string) (*models.Site, error) {
	if siteID == "" {
		return nil, apierr.NotFound("site id is empty")
	}
	var site models.Site
	if err := db.WithContext(ctx).Where("id = ?", siteID).First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("site %q not found", siteID)
		}
		return nil, classify("get site", err)
	}
	return &site, nil
}

// DeleteSite removes the site, its devices and their inspections in one
// transaction. Unknown ids are a no-op.
func (s *SQLStore) DeleteSite(ctx context.Context, siteID string) error {
	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return classify("delete site", tx.Error)
	}
	deviceIDs := tx.Model(&models.Device{}).Select("id").Where("site_id = ?", siteID)
	if err := tx.Where("device_id IN (?)", deviceIDs).Delete(&models.Inspection{}).Error; err != nil {
		tx.Rollback()
		return classify("delete site inspections", err)
	}
	if err := tx.Where("site_id = ?", siteID).Delete(&models.Device{}).Error; err != nil {
		tx.Rollback()
		return classify("delete site devices", err)
	}
	res := tx.Where("id = ?", siteID).Delete(&models.Site{})
	if res.Error != nil {
		tx.Rollback()
		return classify("delete site", res.Error)
	}
	if err := tx.Commit().Error; err != nil {
		return classify("delete site", err)
	}
	s.log.Info("site deleted", "site_id", siteID, "found", res.RowsAffected > 0)
	return nil
}

func (s *SQLStore) CreateDevice(ctx context.Context, in DeviceInput) (*models.Device, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	device := &models.Device{
		ID:         newID(),
		SiteID:     in.SiteID,
		Name:       in.Name,
		Location:   in.Location,
		Specs:      in.Specs,
		ExpiryDate: in.ExpiryDate,
		CheckItems: in.CheckItems,
	}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireSite(ctx, tx, in.SiteID); err != nil {
			return err
		}
		return tx.Create(device).Error
	})
	if err != nil {
		return nil, classify("create device", err)
	}
	s.log.Info("device created", "device_id", device.ID, "site_id", in.SiteID, "check_items", len(in.CheckItems))
	return device, nil
}

// UpdateDevice rewrites the mutable fields of a device. Existing inspections
// are left untouched even when checklist labels change.
func (s *SQLStore) UpdateDevice(ctx context.Context, deviceID string, in DeviceInput) (*models.Device, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}
	var device *models.Device
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, err := getDevice(ctx, tx, deviceID)
		if err != nil {
			return err
		}
		if err := requireSite(ctx, tx, in.SiteID); err != nil {
			return err
		}
		d.SiteID = in.SiteID
		d.Name = in.Name
		d.Location = in.Location
		d.Specs = in.Specs
		d.ExpiryDate = in.ExpiryDate
		d.CheckItems = in.CheckItems
		device = d
		return tx.Save(d).Error
	})
	if err != nil {
		return nil, classify("update device", err)
	}
	s.log.Info("device updated", "device_id", deviceID)
	return device, nil
}

func requireSite(ctx context.Context, tx *gorm.DB, siteID *string) error {
	if siteID == nil {
		return nil
	}
	var count int64
	if err := tx.WithContext(ctx).Model(&models.Site{}).Where("id = ?", *siteID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apierr.Reference("site %q does not exist", *siteID)
	}
	return nil
}

func (s *SQLStore) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	return getDevice(ctx, s.DB, deviceID)
}

func getDevice(ctx context.Context, db *gorm.DB, deviceID string) (*models.Device, error) {
	if deviceID == "" {
		return nil, apierr.NotFound("device id is empty")
	}
	var d models.Device
	if err := db.WithContext(ctx).Where("id = ?", deviceID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("device %q not found", deviceID)
		}
		return nil, classify("get device", err)
	}
	return &d, nil
}

// ListDevices returns the devices of a site, or the global devices when
// siteID is nil, in creation order.
func (s *SQLStore) ListDevices(ctx context.Context, siteID *string) ([]models.Device, error) {
	q := s.DB.WithContext(ctx)
	if siteID == nil {
		q = q.Where("site_id IS NULL")
	} else {
		q = q.Where("site_id = ?", *siteID)
	}
	var out []models.Device
	if err := q.Order("created_at asc, id asc").Find(&out).Error; err != nil {
		return nil, classify("list devices", err)
	}
	return out, nil
}

func (s *SQLStore) ListAllDevices(ctx context.Context) ([]models.Device, error) {
	var out []models.Device
	if err := s.DB.WithContext(ctx).Order("created_at asc, id asc").Find(&out).Error; err != nil {
		return nil, classify("list all devices", err)
	}
	return out, nil
}

// DeleteDevice removes the device and its inspections. Unknown ids are a no-op.
func (s *SQLStore) DeleteDevice(ctx context.Context, deviceID string) error {
	var found bool
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", deviceID).Delete(&models.Inspection{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", deviceID).Delete(&models.Device{})
		found = res.RowsAffected > 0
		return res.Error
	})
	if err != nil {
		return classify("delete device", err)
	}
	s.log.Info("device deleted", "device_id", deviceID, "found", found)
	return nil
}
