package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, -1, cfg.Card, "card discovery is the default")
	assert.Equal(t, "/etc/alsaroute", cfg.DefinitionsDir)
	assert.Empty(t, cfg.LogFile, "event logging is opt-in")
}

func TestParse(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		cfg, err := Parse([]byte(`
card: 2
definitions_dir: /opt/alsaroute/defs
chip_name_pattern: /tmp/sysfs/hwC%dD0/chip_name
device_dir: /tmp/snd
log_file: /var/log/alsaroute/card2.rlog
`))
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Card)
		assert.Equal(t, "/opt/alsaroute/defs", cfg.DefinitionsDir)
		assert.Equal(t, "/tmp/sysfs/hwC%dD0/chip_name", cfg.ChipNamePattern)
		assert.Equal(t, "/tmp/snd", cfg.DeviceDir)
		assert.Equal(t, "/var/log/alsaroute/card2.rlog", cfg.LogFile)
	})

	t.Run("DefaultsApply", func(t *testing.T) {
		cfg, err := Parse([]byte(`log_file: /tmp/events.rlog`))
		require.NoError(t, err)
		assert.Equal(t, -1, cfg.Card)
		assert.Equal(t, "/etc/alsaroute", cfg.DefinitionsDir)
	})

	t.Run("EmptyDefinitionsDir", func(t *testing.T) {
		_, err := Parse([]byte(`definitions_dir: ""`))
		assert.Error(t, err)
	})

	t.Run("BadYAML", func(t *testing.T) {
		_, err := Parse([]byte(`card: [`))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alsaroute.yaml")
		require.NoError(t, os.WriteFile(path, []byte("card: 1\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Card)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
