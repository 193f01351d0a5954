package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"leadflow.backend/internal/domain/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLeadTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE leads (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT,
		company TEXT,
		position TEXT,
		stage TEXT NOT NULL,
		status TEXT NOT NULL,
		source TEXT,
		value REAL NOT NULL DEFAULT 0,
		notes TEXT,
		assigned_to TEXT,
		country TEXT,
		city TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

type leadSeed struct {
	email   string
	first   string
	last    string
	company string
	stage   entities.Stage
	status  entities.LeadStatus
	source  string
	country string
	value   float64
}

func seedLead(t *testing.T, repo *LeadRepository, s leadSeed) *entities.Lead {
	t.Helper()
	lead := &entities.Lead{
		Email:     s.email,
		FirstName: s.first,
		LastName:  s.last,
		Phone:     "+1-555-0100",
		Company:   s.company,
		Position:  "Manager",
		Stage:     s.stage,
		Status:    s.status,
		Source:    s.source,
		Value:     s.value,
		Country:   s.country,
		City:      "Springfield",
	}
	require.NoError(t, repo.Create(context.Background(), lead))
	return lead
}
