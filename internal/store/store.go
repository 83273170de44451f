package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"inspectrack/internal/apierr"
	"inspectrack/internal/logger"
	"inspectrack/internal/models"
)

const (
	DefaultSQLitePath = "inspection.db"

	pgErrForeignKeyViolation = "23503"
)

// CatalogStore is the durable home of sites and devices.
type CatalogStore interface {
	CreateSite(ctx context.Context, name, location string) (*models.Site, error)
	ListSites(ctx context.Context) ([]models.Site, error)
	GetSite(ctx context.Context, siteID string) (*models.Site, error)
	DeleteSite(ctx context.Context, siteID string) error

	CreateDevice(ctx context.Context, in DeviceInput) (*models.Device, error)
	UpdateDevice(ctx context.Context, deviceID string, in DeviceInput) (*models.Device, error)
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)
	ListDevices(ctx context.Context, siteID *string) ([]models.Device, error)
	ListAllDevices(ctx context.Context) ([]models.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error
}

// Ledger is the append-only store of inspection submissions.
type Ledger interface {
	Submit(ctx context.Context, in InspectionInput) (*models.Inspection, error)
	GetInspection(ctx context.Context, id uint) (*models.Inspection, error)
	ListByDevice(ctx context.Context, deviceID string, filter PeriodFilter) ([]models.Inspection, error)
	ListForPeriod(ctx context.Context, deviceIDs []string, periodKey string) ([]models.Inspection, error)
	ListInspectedBetween(ctx context.Context, from, to time.Time) ([]models.Inspection, error)
	ListAll(ctx context.Context) ([]models.Inspection, error)
}

// SQLStore implements CatalogStore and Ledger on top of gorm. The same code
// runs against SQLite and Postgres; only the dialector differs.
type SQLStore struct {
	DB  *gorm.DB
	log *logger.Logger
}

var (
	_ CatalogStore = (*SQLStore)(nil)
	_ Ledger       = (*SQLStore)(nil)
)

// Open selects a driver from dsn, connects and runs the idempotent schema
// migration. postgres:// and postgresql:// URLs use Postgres; anything else
// (including an empty string) is treated as a SQLite file path.
func Open(dsn string, baseLog *logger.Logger) (*SQLStore, error) {
	return OpenDialector(Dialector(dsn), baseLog)
}

func OpenDialector(dialector gorm.Dialector, baseLog *logger.Logger) (*SQLStore, error) {
	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}

	if err := db.AutoMigrate(&models.Site{}, &models.Device{}, &models.Inspection{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	storeLog := baseLog.With("component", "SQLStore", "driver", dialector.Name())
	storeLog.Info("storage ready")
	return &SQLStore{DB: db, log: storeLog}, nil
}

// Dialector maps a connection string onto a gorm dialector.
func Dialector(dsn string) gorm.Dialector {
	dsn = strings.TrimSpace(dsn)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn)
	default:
		return sqlite.Open(SQLiteDSN(dsn))
	}
}

// SQLiteDSN normalises a SQLite location and adds a bounded lock wait and
// foreign key enforcement.
func SQLiteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "sqlite3://")
	if dsn == "" {
		dsn = DefaultSQLitePath
	}
	var params []string
	if !strings.Contains(dsn, "_busy_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if !strings.Contains(dsn, "_foreign_keys") {
		params = append(params, "_foreign_keys=on")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// Close releases the underlying connection pool.
func (s *SQLStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newID builds "<unix-millis>-<8 hex chars>": sortable by creation and safe
// to embed in a URL path segment.
func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", models.TimeNow().UnixMilli(), suffix)
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrForeignKeyViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// classify turns a raw gorm error into the apierr taxonomy.
func classify(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return apierr.New(apierr.KindReference, fmt.Errorf("%s: %w", op, err))
	default:
		return apierr.Storage(op, err)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
