package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/mkoskin/gaugectl/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, 5.0, cfg.SampleRate)
	assert.Equal(t, 32, cfg.MaxDelta)
	assert.Equal(t, EmitEveryTick, cfg.Emit)
	assert.True(t, cfg.Sweep)
	assert.True(t, cfg.Park.Enabled)

	assert.Equal(t, 128, cfg.Network.PWMZero)
	assert.Equal(t, 100.0, cfg.Network.FullScaleMbps)
	assert.Equal(t, 102400.0, cfg.Disk.FullScaleSectors)

	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := `version: 1
serial:
  port: /dev/ttyUSB0
samplerate: 10
max_delta: 16
emit: on-change
sweep: false
network:
  pwm_zero: 100
  full_scale_mbps: 1000
disk:
  device_pattern: "^vd[a-z]+$"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.Baud, "unset keys keep defaults")
	assert.Equal(t, 10.0, cfg.SampleRate)
	assert.Equal(t, 16, cfg.MaxDelta)
	assert.Equal(t, EmitOnChange, cfg.Emit)
	assert.False(t, cfg.Sweep)
	assert.Equal(t, 100, cfg.Network.PWMZero)
	assert.Equal(t, 1000.0, cfg.Network.FullScaleMbps)
	assert.Equal(t, `^vd[a-z]+$`, cfg.Disk.DevicePattern)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, gerrors.IsCode(err, gerrors.ErrConfig))
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("samplerate: -3\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, gerrors.IsCode(err, gerrors.ErrConfig))
}

func TestFindExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	// Run from an empty directory with no global config reachable.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
