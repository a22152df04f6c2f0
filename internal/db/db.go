package db

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/aikerim-n/uni-carpool/internal/config"
)

// StorageKey is the fixed key the whole dataset document lives under,
// carried over from the original browser store.
const StorageKey = "uni_carpool_sql_v1"

// Snapshot is the single-row table holding the serialized dataset.
type Snapshot struct {
	Key       string `gorm:"primaryKey;size:255"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// Connect opens the configured database (embedded sqlite by default,
// postgres when selected) and ensures the snapshot table exists.
func Connect(cfg config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var gdb *gorm.DB
	var err error
	switch cfg.Driver {
	case "postgres":
		for i := 0; i < 10; i++ {
			gdb, err = gorm.Open(postgres.Open(cfg.DSN), gcfg)
			if err == nil {
				break
			}
			time.Sleep(2 * time.Second)
		}
	case "sqlite":
		gdb, err = gorm.Open(sqlite.Open(cfg.DSN), gcfg)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := gdb.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("automigrate snapshots: %w", err)
	}
	return gdb, nil
}

// SnapshotBackend implements store.Backend over the snapshots table:
// the dataset is one row, read and replaced whole.
type SnapshotBackend struct {
	db  *gorm.DB
	key string
}

// NewSnapshotBackend builds a backend over an open connection. An empty
// key falls back to StorageKey.
func NewSnapshotBackend(gdb *gorm.DB, key string) *SnapshotBackend {
	if key == "" {
		key = StorageKey
	}
	return &SnapshotBackend{db: gdb, key: key}
}

func (b *SnapshotBackend) Load() ([]byte, bool, error) {
	var snap Snapshot
	err := b.db.First(&snap, "key = ?", b.key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}
	return snap.Data, true, nil
}

func (b *SnapshotBackend) Save(data []byte) error {
	snap := Snapshot{Key: b.key, Data: data, UpdatedAt: time.Now().UTC()}
	err := b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Reset drops the persisted document so the next store construction
// reseeds the bootstrap dataset.
func (b *SnapshotBackend) Reset() error {
	return b.db.Delete(&Snapshot{}, "key = ?", b.key).Error
}
