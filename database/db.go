// Package database owns the SQLite store: opening it, creating the schema
// and seeding the default account.
package database

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopdesk/shopdesk/config"
	"github.com/shopdesk/shopdesk/database/model"
	applog "github.com/shopdesk/shopdesk/logger"
	"github.com/shopdesk/shopdesk/util/crypto"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var db *gorm.DB

const (
	defaultUsername = "admin"
	defaultPassword = "123"
)

// migrationLogger routes goose output to the application log.
type migrationLogger struct{}

func (migrationLogger) Printf(format string, v ...any) {
	applog.Debugf(strings.TrimSuffix(format, "\n"), v...)
}

func (migrationLogger) Fatalf(format string, v ...any) {
	panic(fmt.Sprintf(format, v...))
}

// initModels applies the embedded migrations. The baseline only creates
// tables that are absent, so files made by earlier releases are adopted as is.
func initModels(sqlDB *sql.DB) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(migrationLogger{})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// initUser seeds the default admin account when it does not exist. The check
// and the insert are separate statements; InitDB runs once per process.
func initUser() error {
	var count int64
	err := db.Model(&model.Account{}).
		Where("username = ?", defaultUsername).
		Count(&count).
		Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := crypto.HashPasswordAsBcrypt(defaultPassword)
	if err != nil {
		return err
	}
	return db.Create(&model.Account{
		Username:     defaultUsername,
		PasswordHash: hash,
	}).Error
}

// InitDB opens the database file at dbPath, creating its folder, the schema
// and the default account as needed. It is safe to call on every boot.
func InitDB(dbPath string) error {
	dbConfig := config.GetDefaultDatabaseConfig(dbPath)
	if err := dbConfig.ValidateConfig(); err != nil {
		return err
	}
	if err := dbConfig.EnsureDirectoryExists(); err != nil {
		return err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	var err error
	db, err = gorm.Open(sqlite.Open(dbConfig.GetDSN()), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	// foreign_keys stays off: cart items may reference deleted rows.
	if _, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;"); err != nil {
		return err
	}

	if err := initModels(sqlDB); err != nil {
		return err
	}
	return initUser()
}

func CloseDB() error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(context.Background()); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	err = sqlDB.Close()
	db = nil
	return err
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func IsSQLiteDB(file io.ReaderAt) (bool, error) {
	signature := []byte("SQLite format 3\x00")
	buf := make([]byte, len(signature))
	_, err := file.ReadAt(buf, 0)
	if err != nil {
		return false, err
	}
	return bytes.Equal(buf, signature), nil
}

// SchemaVersion returns the version of the last applied migration.
func SchemaVersion() (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, err
	}
	return goose.GetDBVersion(sqlDB)
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint(ctx context.Context) error {
	return db.WithContext(ctx).Exec("PRAGMA wal_checkpoint;").Error
}
