package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options selects and tunes the database connection
type Options struct {
	// DBPath is the local sqlite file, used when TursoURL is empty
	DBPath string
	// TursoURL points at a remote libsql database (libsql://...)
	TursoURL       string
	TursoAuthToken string
	Environment    string
}

// Initialize sets up the database connection. A local sqlite file is opened
// with WAL mode; a Turso URL switches to the libsql driver.
func Initialize(opts Options) error {
	// Determine log level based on environment
	logLevel := logger.Info
	if opts.Environment == "production" {
		logLevel = logger.Warn
	}

	dialector, err := dialectorFor(opts)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if opts.TursoURL != "" {
		log.Println("Database connection established (libsql remote)")
	} else {
		log.Println("Database connection established (WAL mode enabled)")
	}
	return nil
}

func dialectorFor(opts Options) (gorm.Dialector, error) {
	if opts.TursoURL == "" {
		// Enable WAL mode for better concurrency support
		return sqlite.Open(opts.DBPath + "?_journal_mode=WAL"), nil
	}

	dsn := opts.TursoURL
	if opts.TursoAuthToken != "" {
		dsn += "?authToken=" + opts.TursoAuthToken
	}
	conn, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open libsql connection: %w", err)
	}
	return sqlite.New(sqlite.Config{DriverName: "libsql", Conn: conn}), nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
