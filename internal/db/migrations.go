// internal/db/migrations.go
package db

import (
	"fmt"

	"gorm.io/gorm"
)

// MigrateTranslationUniqueIndexes enforces one translation per
// (template, locale) and per (service, locale). AutoMigrate only creates
// the plain composite indexes, so uniqueness is added here per dialect.
func MigrateTranslationUniqueIndexes(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	dialect := db.Dialector.Name()

	type idx struct {
		table string
		name  string
		cols  string
	}
	indexes := []idx{
		{"template_translations", "ux_tpl_translations_locale", "template_id, locale"},
		{"service_translations", "ux_svc_translations_locale", "service_id, locale"},
	}

	for _, ix := range indexes {
		if !db.Migrator().HasTable(ix.table) {
			continue
		}
		switch dialect {
		case "mysql":
			// MySQL has no CREATE INDEX IF NOT EXISTS; tolerate duplicates
			_ = db.Exec(fmt.Sprintf("CREATE UNIQUE INDEX `%s` ON `%s` (%s)", ix.name, ix.table, ix.cols)).Error
		case "postgres":
			if err := db.Exec(fmt.Sprintf(`CREATE UNIQUE INDEX IF NOT EXISTS %s ON "%s" (%s)`, ix.name, ix.table, ix.cols)).Error; err != nil {
				return err
			}
		case "sqlite":
			if err := db.Exec(fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s)", ix.name, ix.table, ix.cols)).Error; err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported dialect: %s", dialect)
		}
	}
	return nil
}
