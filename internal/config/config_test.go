package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.DeepWork.MinimumBlockMinutes)
	assert.Equal(t, 14, cfg.TractionWindowDays)
	assert.Equal(t, 10, cfg.Score.OnTime)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
traction_window_days = 7

[deep_work]
minimum_block_minutes = 30

[score]
on_time = 20
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.TractionWindowDays)
	assert.Equal(t, 30, cfg.DeepWork.MinimumBlockMinutes)
	assert.Equal(t, 20, cfg.Score.OnTime)
	// Untouched values keep defaults.
	assert.Equal(t, -5, cfg.Score.Postponed)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDeltaFor(t *testing.T) {
	s := Default().Score
	assert.Equal(t, 10, s.DeltaFor(domain.OutcomeOnTime))
	assert.Equal(t, 3, s.DeltaFor(domain.OutcomeLate))
	assert.Equal(t, -5, s.DeltaFor(domain.OutcomePostponed))
	assert.Equal(t, -10, s.DeltaFor(domain.OutcomeNotConfirmed))
	assert.Equal(t, 0, s.DeltaFor(domain.Outcome("nope")))
}
