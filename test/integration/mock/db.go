// Package mock provides in-memory test doubles for the integration suite.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/swiftbudget/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// ledgerModels lists every model the suite persists.
var ledgerModels = []any{
	&model.CategoryModel{},
	&model.ProjectModel{},
	&model.TransactionModel{},
	&model.BudgetGoalModel{},
}

// NewDb opens a shared in-memory SQLite database with the ledger schema
// migrated. The connection is a singleton: scenarios share it and call
// ClearDb between runs.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = open()
	})
	return dbConn
}

func open() *gorm.DB {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	if err := conn.AutoMigrate(ledgerModels...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return conn
}

// ClearDb wipes every table, soft-deleted rows included.
func ClearDb(db *gorm.DB) error {
	for _, m := range ledgerModels {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
