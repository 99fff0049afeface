package connection

import (
	"fmt"
	"time"

	"todolists/config"
	"todolists/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DBConnection opens the MySQL database, tunes the pool, migrates the schema
// and seeds the reference data.
func DBConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.ToDo{},
		&model.State{},
		&model.Task{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Seed writes the static reference data: the two roles and the workflow
// states. It is idempotent, keyed on the unique names.
func Seed(db *gorm.DB) error {
	for _, name := range []string{model.RoleAdmin, model.RoleUser} {
		role := model.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	for _, name := range []string{model.StateNew, "In Progress", "Done"} {
		state := model.State{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&state).Error; err != nil {
			return fmt.Errorf("seed state %q: %w", name, err)
		}
	}
	return nil
}
