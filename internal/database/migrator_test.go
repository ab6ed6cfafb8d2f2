package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingableMock(t *testing.T) (*MigrationRunner, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMigrationRunner(db), mock
}

func TestWaitForDatabaseReady(t *testing.T) {
	runner, mock := newPingableMock(t)
	mock.ExpectPing()

	err := runner.WaitForDatabase()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabaseRetriesThenSucceeds(t *testing.T) {
	origRetries, origInterval := maxRetries, retryInterval
	maxRetries, retryInterval = 3, time.Millisecond
	defer func() { maxRetries, retryInterval = origRetries, origInterval }()

	runner, mock := newPingableMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	err := runner.WaitForDatabase()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabaseGivesUp(t *testing.T) {
	origRetries, origInterval := maxRetries, retryInterval
	maxRetries, retryInterval = 2, time.Millisecond
	defer func() { maxRetries, retryInterval = origRetries, origInterval }()

	runner, mock := newPingableMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := runner.WaitForDatabase()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not ready after 2 attempts")
}

func TestRunMigrationsSkipsWhenDirectoryMissing(t *testing.T) {
	runner, _ := newPingableMock(t)
	runner.migrationsPath = filepath.Join(t.TempDir(), "does-not-exist")

	err := runner.RunMigrations()
	assert.NoError(t, err)
}

func TestLoadSeedsDisabledByDefault(t *testing.T) {
	t.Setenv("SEED_DATABASE", "false")

	runner, mock := newPingableMock(t)
	err := runner.LoadSeeds()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedsExecutesFiles(t *testing.T) {
	t.Setenv("SEED_DATABASE", "true")

	dir := t.TempDir()
	seed := "INSERT INTO users (email) VALUES ('demo@example.com');"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "001_demo.sql"), []byte(seed), 0o644))

	runner, mock := newPingableMock(t)
	runner.seedsPath = dir

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(1, 1))

	err := runner.LoadSeeds()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeedsSkipsWhenDirectoryMissing(t *testing.T) {
	t.Setenv("SEED_DATABASE", "true")

	runner, _ := newPingableMock(t)
	runner.seedsPath = filepath.Join(t.TempDir(), "no-seeds-here")

	err := runner.LoadSeeds()
	assert.NoError(t, err)
}
