package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpWrapsOpenError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.xlsx")

	err := runDump(nil, []string{missing})

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}
