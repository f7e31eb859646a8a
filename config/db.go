// picks the GORM driver by DBDriver when comment_store=sql.

package config

import (
	"CommentCase/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// dialector maps cfg.DBDriver to a GORM dialector, checking the matching DSN is set.
func dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, errors.New("mysql selected but mysql_dsn empty")
		}
		return mysql.Open(cfg.MySQLDSN), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, errors.New("postgres selected but postgres_dsn empty")
		}
		return postgres.Open(cfg.PostgresDSN), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil // file is created if missing
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			return nil, errors.New("sqlserver selected but sqlserver_dsn empty")
		}
		return sqlserver.Open(cfg.SQLServerDSN), nil
	}
	return nil, errors.Errorf("unknown db_driver: %q", cfg.DBDriver)
}

// InitDB opens the SQL store and auto-migrates the comments table.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn), // Info is very verbose
	})
	if err != nil {
		return nil, errors.Wrap(err, "open sql store")
	}
	if err := db.AutoMigrate(&models.Comment{}); err != nil {
		return nil, errors.Wrap(err, "automigrate comments")
	}
	return db, nil
}
