package database

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/landviz/parcelcore/internal/model"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewManager(zerolog.New(&buf)), &buf
}

func TestConnect_SqliteMemory(t *testing.T) {
	m, buf := newTestManager(t)
	require.NoError(t, m.Connect("sqlite", ""))
	defer m.Close()

	assert.True(t, m.IsValid)
	assert.Equal(t, "sqlite", m.DB.Dialector.Name())
	assert.Contains(t, buf.String(), "in memory")

	require.NoError(t, m.Setup())
	assert.True(t, m.DB.Migrator().HasTable(&model.Parcel{}))
}

func TestConnect_SqliteMemoryIsolated(t *testing.T) {
	a, _ := newTestManager(t)
	b, _ := newTestManager(t)
	require.NoError(t, a.Connect("sqlite", ""))
	defer a.Close()
	require.NoError(t, b.Connect("sqlite", ""))
	defer b.Close()

	require.NoError(t, a.Setup())
	assert.False(t, b.DB.Migrator().HasTable(&model.Parcel{}))
}

func TestConnect_SqliteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parcels.db")
	m, _ := newTestManager(t)
	require.NoError(t, m.Connect("sqlite", path))
	defer m.Close()

	assert.Equal(t, path, m.SqliteFilePath)
	assert.FileExists(t, path)
	require.NoError(t, m.Setup())
}

func TestConnect_UnknownType(t *testing.T) {
	m, _ := newTestManager(t)
	err := m.Connect("mongo", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown database type")
	assert.False(t, m.IsValid)
}

func TestSetup_NotConnected(t *testing.T) {
	m, _ := newTestManager(t)
	assert.ErrorIs(t, m.Setup(), ErrNotConnected)
}

func TestClose_NotConnected(t *testing.T) {
	m, _ := newTestManager(t)
	assert.NoError(t, m.Close())
}

func TestPostgresDSN(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("db.host", "db.internal")
	viper.Set("db.port", "6543")
	viper.Set("db.username", "gis")
	viper.Set("db.password", "secret")
	viper.Set("db.database", "land")

	assert.Equal(t,
		"host=db.internal port=6543 user=gis password=secret dbname=land sslmode=disable",
		PostgresDSN())
}
