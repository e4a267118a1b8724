package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeatingConfig represents the seating_config table. It holds a single row.
type SeatingConfig struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Seed      int64     `gorm:"not null" json:"seed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the singleton table name.
func (SeatingConfig) TableName() string {
	return "seating_config"
}

// TeamMember represents the team_members table
type TeamMember struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"uniqueIndex;not null" json:"employee_id"`
	FirstName  string    `gorm:"not null" json:"first_name"`
	LastName   string    `gorm:"not null" json:"last_name"`
	NickName   string    `json:"nick_name"`
	Email      string    `json:"email"`
	Role       string    `gorm:"index" json:"role"`
	Avatar     string    `json:"avatar"`
	Birthday   string    `json:"birthday"`
	JoinedDate string    `json:"joined_date"`
	IsActive   bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// InitDB opens postgres when dsn is set, otherwise the sqlite file at
// dataPath, and migrates the schema.
func InitDB(dsn, dataPath string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	if dsn != "" {
		cfg.PrepareStmt = false
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), cfg)
	} else {
		if dataPath == "" {
			dataPath = "dashboard.db"
		}
		db, err = gorm.Open(sqlite.Open(dataPath), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&SeatingConfig{}, &TeamMember{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}
