package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seatingConfigID = 1

// SeedStore keeps the explicit seating seed in the singleton seating_config row.
type SeedStore struct {
	DB *gorm.DB
}

// ReadSeed returns the stored seed, ok=false when the row does not exist yet.
func (s SeedStore) ReadSeed(ctx context.Context) (int64, bool, error) {
	var cfg SeatingConfig
	res := s.DB.WithContext(ctx).Where("id = ?", seatingConfigID).Limit(1).Find(&cfg)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return cfg.Seed, true, nil
}

// WriteSeed upserts the singleton row in one statement.
func (s SeedStore) WriteSeed(ctx context.Context, seed int64) error {
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"seed", "updated_at"}),
	}).Create(&SeatingConfig{ID: seatingConfigID, Seed: seed}).Error
}
