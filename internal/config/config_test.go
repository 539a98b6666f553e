package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHEETVIEW_ADDR", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("SHEETVIEW_MAX_UPLOAD_MB", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, int64(50*1024*1024), cfg.Upload.MaxUploadBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHEETVIEW_ADDR", ":9001")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("SHEETVIEW_MAX_UPLOAD_MB", "5")

	cfg := Load()

	assert.Equal(t, ":9001", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxUploadBytes)
}

func TestLoadRejectsBadUploadLimit(t *testing.T) {
	t.Setenv("SHEETVIEW_MAX_UPLOAD_MB", "-3")
	assert.Equal(t, int64(50*1024*1024), Load().Upload.MaxUploadBytes)

	t.Setenv("SHEETVIEW_MAX_UPLOAD_MB", "lots")
	assert.Equal(t, int64(50*1024*1024), Load().Upload.MaxUploadBytes)
}
