// Package database owns process bootstrap for the store: opening the
// configured driver, bringing the schema up to date, and seeding the fixed
// genre reference rows.
package database

import (
	"fmt"
	"strings"

	"gamestore/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens a database handle for the configured driver. TranslateError
// is enabled so constraint violations surface as GORM sentinel errors on
// both drivers.
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(withForeignKeys(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// withForeignKeys makes SQLite enforce the genre foreign key, which it
// leaves off unless the DSN asks for it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_fk=") || strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_fk=1"
	}
	return dsn + "?_fk=1"
}

// Migrate brings the schema up to date, creating the tables if the store is
// empty. It runs before the server accepts traffic.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Genre{}, &models.Game{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// genreSeed is the fixed genre population, keyed by stable ids.
var genreSeed = []models.Genre{
	{ID: 1, Name: "Action"},
	{ID: 2, Name: "Adventure"},
	{ID: 3, Name: "RPG"},
	{ID: 4, Name: "Simulation"},
	{ID: 5, Name: "Strategy"},
}

// SeedGenres inserts the fixed genre rows, skipping any id that already
// exists, so repeated bootstraps never duplicate or fail.
func SeedGenres(db *gorm.DB) error {
	for _, genre := range genreSeed {
		var row models.Genre
		err := db.Where(models.Genre{ID: genre.ID}).
			Attrs(models.Genre{Name: genre.Name}).
			FirstOrCreate(&row).Error
		if err != nil {
			return fmt.Errorf("failed to seed genre %q: %w", genre.Name, err)
		}
	}
	return nil
}
