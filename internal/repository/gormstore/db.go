// Package gormstore implements the repositories on a SQL database through gorm.
// IDs are generated as ObjectIDs and stored in their 24 character hex form so
// every store hands out the same kind of identifier.
package gormstore

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported dialects for Open.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Open connects to the database named by driver and creates the tables if missing.
// MySQL DSNs need parseTime=true so dates scan into time.Time.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", driver)
	}
	if err := db.AutoMigrate(&userRecord{}, &exerciseRecord{}); err != nil {
		return nil, errors.Wrap(err, "auto migrate")
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
