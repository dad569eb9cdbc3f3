// Package db opens the relational store and keeps the schema migrated
package db

import (
	"fmt"

	"mupro/lostfound-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database selected by db.driver (sqlite or postgres) and
// automigrates every table.
func New() (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	switch viper.GetString("db.driver") {
	case "postgres":
		conn, err = gorm.Open(postgres.Open(viper.GetString("db.dsn")))
	case "sqlite":
		conn, err = gorm.Open(sqlite.Open(viper.GetString("db.dsn")))
	default:
		return nil, fmt.Errorf("unknown db driver %q", viper.GetString("db.driver"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = conn.AutoMigrate(
		model.User{},
		model.Token{},
		model.LostItem{},
		model.FoundItem{},
		model.Claim{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return conn, nil
}
