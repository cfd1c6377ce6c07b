package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"silent":  logger.Silent,
		"ERROR":   logger.Error,
		"info":    logger.Info,
		"warn":    logger.Warn,
		"unknown": logger.Warn,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParseLogLevel(in))
		})
	}
}

func TestNewGormDBSQLite(t *testing.T) {
	db, err := NewGormDB(GormConfig{
		Driver:   DriverSQLite,
		DSN:      "file:gorm_test?mode=memory&cache=shared",
		LogLevel: "silent",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, sqlDB.Ping())

	type widget struct {
		ID   uint
		Name string
	}
	require.NoError(t, AutoMigrate(db, &widget{}))
	assert.True(t, db.Migrator().HasTable(&widget{}))
}

func TestNewGormDBUnsupportedDriver(t *testing.T) {
	_, err := NewGormDB(GormConfig{Driver: "mysql", DSN: "x"})
	assert.EqualError(t, err, `unsupported database driver "mysql"`)
}
