package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("ARTIST_DELETE_CASCADE", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "venue_booking", cfg.Database.DBName)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Booking.ArtistDeleteCascade)
	assert.Equal(t, 15*time.Minute, cfg.MinIO.PresignExpiry)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("ARTIST_DELETE_CASCADE", "true")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Booking.ArtistDeleteCascade)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("DB_QUERY_TIMEOUT", "soon")
	t.Setenv("ARTIST_DELETE_CASCADE", "perhaps")

	cfg := Load()

	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Booking.ArtistDeleteCascade)
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "h", Port: "6543", User: "u", Password: "p", DBName: "d", SSLMode: "require",
	}
	assert.Equal(t,
		"host=h user=u password=p dbname=d port=6543 sslmode=require TimeZone=UTC connect_timeout=10",
		cfg.DSN())
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "localhost", DBName: "venue_booking"},
		MinIO:    MinIOConfig{Endpoint: "localhost:9000", AccessKeyID: "key", SecretAccessKey: "secret"},
	}
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.MinIOEnabled())

	cfg.MinIO.SecretAccessKey = ""
	assert.Error(t, cfg.Validate())
	assert.False(t, cfg.MinIOEnabled())

	cfg.Database.Host = ""
	assert.EqualError(t, cfg.Validate(), "DB_HOST is required")
}
