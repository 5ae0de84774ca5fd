package alsaroute_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaroute/alsaroute-go/internal/mixertest"
	"github.com/alsaroute/alsaroute-go/pkg/config"
	"github.com/alsaroute/alsaroute-go/pkg/log"
	"github.com/alsaroute/alsaroute-go/pkg/mixer"
	"github.com/alsaroute/alsaroute-go/pkg/pathdef"
	"github.com/alsaroute/alsaroute-go/pkg/route"
)

const e2eDefs = `
<mixer>
  <ctl name="Master Playback Switch" value="1"/>

  <path name="dac">
    <ctl name="DAC Switch" value="1"/>
  </path>

  <path name="speaker">
    <ctl name="Speaker Switch" value="1"/>
    <path name="dac"/>
  </path>

  <path name="headphones">
    <ctl name="Headphone Volume" value="80"/>
    <path name="dac"/>
  </path>
</mixer>`

func e2eDevice() *mixertest.Device {
	return mixertest.NewDevice(
		mixertest.NewControl("Master Playback Switch", mixer.CtlTypeBool, 1, 0),
		mixertest.NewControl("Speaker Switch", mixer.CtlTypeBool, 1, 0),
		mixertest.NewControl("DAC Switch", mixer.CtlTypeBool, 1, 0),
		mixertest.NewControl("Headphone Volume", mixer.CtlTypeInt, 2, 0),
	)
}

func e2eValue(t *testing.T, dev mixer.Device, name string) int {
	t.Helper()
	ctl, ok := dev.ControlByName(name)
	require.True(t, ok)
	v, err := ctl.Value(0)
	require.NoError(t, err)
	return v
}

// TestE2E_RouteSwitching drives a full engine lifecycle: load a
// definitions file from disk, switch between output routes and restore
// the boot state.
func TestE2E_RouteSwitching(t *testing.T) {
	defsPath := filepath.Join(t.TempDir(), "mixer_paths_test.xml")
	require.NoError(t, os.WriteFile(defsPath, []byte(e2eDefs), 0o644))

	f, err := os.Open(defsPath)
	require.NoError(t, err)
	defer f.Close()

	dev := e2eDevice()
	rt, err := route.Open(dev, pathdef.NewXMLSource(f), route.WithSourceName(filepath.Base(defsPath)))
	require.NoError(t, err)
	defer rt.Close()

	// the initializer was committed during Open
	assert.Equal(t, 1, e2eValue(t, dev, "Master Playback Switch"))
	assert.Equal(t, []string{"dac", "speaker", "headphones"}, rt.Paths())

	// speaker route
	require.NoError(t, rt.ApplyPath("speaker"))
	require.NoError(t, rt.Update())
	assert.Equal(t, 1, e2eValue(t, dev, "Speaker Switch"))
	assert.Equal(t, 1, e2eValue(t, dev, "DAC Switch"))

	// switch to headphones: speaker stays on until explicitly reset
	dev.ClearWrites()
	require.NoError(t, rt.ApplyPath("headphones"))
	require.NoError(t, rt.Update())
	assert.Equal(t, 80, e2eValue(t, dev, "Headphone Volume"))
	assert.Empty(t, dev.WritesFor("DAC Switch"), "the shared DAC setting was already active")

	// reset restores the post-load state, including the initializer
	rt.Reset()
	require.NoError(t, rt.Update())
	assert.Equal(t, 1, e2eValue(t, dev, "Master Playback Switch"))
	assert.Equal(t, 0, e2eValue(t, dev, "Speaker Switch"))
	assert.Equal(t, 0, e2eValue(t, dev, "DAC Switch"))
	assert.Equal(t, 0, e2eValue(t, dev, "Headphone Volume"))
}

// TestE2E_EventLog wires the engine to a CBOR file logger and reads the
// events back through the filtered reader.
func TestE2E_EventLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "card0.rlog")

	fl, err := log.NewFileLogger(logPath)
	require.NoError(t, err)

	dev := e2eDevice()
	rt, err := route.Open(dev, pathdef.NewXMLSource(newDefsReader(t, dir)),
		route.WithLogger(fl), route.WithCard(0), route.WithSourceName("mixer_paths_test.xml"))
	require.NoError(t, err)

	require.NoError(t, rt.ApplyPath("speaker"))
	require.NoError(t, rt.Update())
	require.NoError(t, rt.Close())
	require.NoError(t, fl.Close())

	_, err = uuid.Parse(rt.Session())
	require.NoError(t, err, "session IDs are UUIDs")

	// all events carry this engine's session ID
	r, err := log.NewFilteredReader(logPath, log.Filter{SessionID: rt.Session()})
	require.NoError(t, err)
	defer r.Close()

	counts := map[log.Category]int{}
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		counts[ev.Category]++
	}

	assert.Equal(t, 1, counts[log.CategoryLoad])
	assert.Equal(t, 1, counts[log.CategoryApply])
	assert.Equal(t, 2, counts[log.CategoryCommit], "one commit at load, one for the apply")
	// initializer write plus the two speaker settings
	assert.Equal(t, 3, counts[log.CategoryWrite])
	assert.Zero(t, counts[log.CategoryError])

	// write events are filterable by control name
	r2, err := log.NewFilteredReader(logPath, log.Filter{Control: "Speaker Switch"})
	require.NoError(t, err)
	defer r2.Close()
	ev, err := r2.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, ev.Write.Value)
}

// TestE2E_ConfigDrivenSetup resolves the definitions file the way the
// daemon does: config file, vendor name from sysfs, per-vendor filename.
func TestE2E_ConfigDrivenSetup(t *testing.T) {
	dir := t.TempDir()

	// fake sysfs chip-name file for card 0
	sysfs := filepath.Join(dir, "sysfs")
	require.NoError(t, os.MkdirAll(filepath.Join(sysfs, "hwC0D0"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sysfs, "hwC0D0", "chip_name"), []byte("Test Codec\n"), 0o644))

	// fake /dev/snd with one control node
	devDir := filepath.Join(dir, "snd")
	require.NoError(t, os.MkdirAll(devDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(devDir, "controlC0"), nil, 0o644))

	defsDir := filepath.Join(dir, "defs")
	require.NoError(t, os.MkdirAll(defsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(defsDir, "mixer_paths_test_codec.xml"), []byte(e2eDefs), 0o644))

	cfgPath := filepath.Join(dir, "alsaroute.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"definitions_dir: "+defsDir+"\n"+
			"chip_name_pattern: "+filepath.Join(sysfs, "hwC%dD0", "chip_name")+"\n"+
			"device_dir: "+devDir+"\n"), 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	card := cfg.Card
	if card < 0 {
		card, err = mixer.FirstCard(cfg.DeviceDir)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, card)

	vendor := mixer.VendorName(cfg.ChipNamePattern, card)
	assert.Equal(t, "test_codec", vendor)

	defsPath := mixer.DefinitionsFile(cfg.DefinitionsDir, vendor)
	f, err := os.Open(defsPath)
	require.NoError(t, err)
	defer f.Close()

	rt, err := route.Open(e2eDevice(), pathdef.NewXMLSource(f), route.WithCard(card))
	require.NoError(t, err)
	defer rt.Close()
	assert.Len(t, rt.Paths(), 3)
}

func newDefsReader(t *testing.T, dir string) *os.File {
	t.Helper()
	path := filepath.Join(dir, "mixer_paths_test.xml")
	require.NoError(t, os.WriteFile(path, []byte(e2eDefs), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}
