package main

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"leadflow.backend/internal/config"
	plog "leadflow.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origOpenDB := openDB
	origRunServer := runServer
	origGetStdDB := getStdDB

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		openDB = origOpenDB
		runServer = origRunServer
		getStdDB = origGetStdDB
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Driver:   "sqlite",
			Path:     "file::memory:",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "leadflow",
			SSLMode:  "disable",
		},
		JWT: config.JWTConfig{
			Secret: "secret",
			Expiry: 24 * time.Hour,
		},
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(*config.Config) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_StdDBError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(*config.Config) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_stddb_err?mode=memory&cache=shared"), &gorm.Config{})
	}
	getStdDB = func(*gorm.DB) (*sql.DB, error) { return nil, errors.New("no generic db") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected generic database error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(*config.Config) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_server_err?mode=memory&cache=shared"), &gorm.Config{})
	}
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	if err := runMainProcess(); err == nil {
		t.Fatal("expected server run error")
	}
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	openDB = func(*config.Config) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_success?mode=memory&cache=shared"), &gorm.Config{})
	}

	var registered []string
	runServer = func(r *gin.Engine, port string) error {
		for _, route := range r.Routes() {
			registered = append(registered, route.Method+" "+route.Path)
		}
		if port != "18080" {
			return errors.New("unexpected port " + port)
		}
		return nil
	}

	if err := runMainProcess(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expects := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/leads",
		"GET /api/leads/analytics",
		"GET /api/leads/:id",
		"GET /health",
		"GET /metrics",
	}
	for _, exp := range expects {
		found := false
		for _, route := range registered {
			if route == exp {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s not registered", exp)
		}
	}
}
