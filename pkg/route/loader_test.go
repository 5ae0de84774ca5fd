package route

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alsaroute/alsaroute-go/internal/mixertest"
	"github.com/alsaroute/alsaroute-go/pkg/log"
	"github.com/alsaroute/alsaroute-go/pkg/mixer"
	"github.com/alsaroute/alsaroute-go/pkg/pathdef"
)

// testDevice builds the control set used by the loader tests.
func testDevice() *mixertest.Device {
	return mixertest.NewDevice(
		mixertest.NewControl("Master Playback Switch", mixer.CtlTypeBool, 1, 0),
		mixertest.NewControl("Speaker Switch", mixer.CtlTypeBool, 1, 0),
		mixertest.NewControl("DAC Switch", mixer.CtlTypeBool, 1, 0),
		mixertest.NewControl("Headphone Volume", mixer.CtlTypeInt, 2, 0),
		mixertest.NewEnumControl("Capture Source", []string{"off", "on", "auto"}, 0),
	)
}

func openTest(t *testing.T, dev *mixertest.Device, defs string, opts ...Option) *Router {
	t.Helper()
	rt, err := Open(dev, pathdef.NewXMLSource(strings.NewReader(defs)), opts...)
	require.NoError(t, err)
	return rt
}

func TestLoadPathsAndInitializers(t *testing.T) {
	dev := testDevice()
	rt := openTest(t, dev, `
<mixer>
  <ctl name="Master Playback Switch" value="1"/>
  <path name="common">
    <ctl name="DAC Switch" value="1"/>
  </path>
  <path name="speaker">
    <ctl name="Speaker Switch" value="1"/>
    <path name="common"/>
  </path>
</mixer>`)

	assert.Equal(t, []string{"common", "speaker"}, rt.Paths())

	// the top-level initializer was committed at the end of the load
	master, _ := dev.ControlByName("Master Playback Switch")
	v, err := master.Value(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// only the initializer changed, so only it was written
	assert.Equal(t, 1, dev.WriteCount())
}

func TestLoadFlattensNestedPaths(t *testing.T) {
	dev := testDevice()
	rt := openTest(t, dev, `
<mixer>
  <path name="common">
    <ctl name="DAC Switch" value="1"/>
  </path>
  <path name="speaker">
    <ctl name="Speaker Switch" value="1"/>
    <path name="common"/>
  </path>
</mixer>`)

	p, ok := rt.store.ByName("speaker")
	require.True(t, ok)
	assert.Equal(t, 2, p.Len(), "speaker should hold the union of its own and common's settings")
}

func TestLoadEnumValueResolution(t *testing.T) {
	dev := testDevice()
	rt := openTest(t, dev, `
<mixer>
  <path name="record">
    <ctl name="Capture Source" value="auto"/>
  </path>
  <path name="record-bad">
    <ctl name="Capture Source" value="nonsense"/>
  </path>
</mixer>`)

	// a duplicate of "Capture Source" across two different paths is fine
	p, ok := rt.store.ByName("record")
	require.True(t, ok)
	assert.Equal(t, 2, p.Settings()[0].Value, `"auto" is item index 2`)

	p, ok = rt.store.ByName("record-bad")
	require.True(t, ok)
	assert.Equal(t, 0, p.Settings()[0].Value, "unmatched enum strings resolve to 0")
}

func TestLoadSkipsAuthoringErrors(t *testing.T) {
	dev := testDevice()
	rec := &recordLogger{}
	rt := openTest(t, dev, `
<mixer>
  <path/>
  <ctl name="No Such Control" value="1"/>
  <path name="speaker">
    <ctl name="Speaker Switch" value="1"/>
    <ctl name="Speaker Switch" value="0"/>
    <path name="undefined"/>
  </path>
</mixer>`, WithLogger(rec))

	// the valid parts still loaded
	p, ok := rt.store.ByName("speaker")
	require.True(t, ok)
	assert.Equal(t, 1, p.Len())

	// every skipped tag produced an error event
	assert.Equal(t, 4, rec.countCategory(log.CategoryError))
}

func TestLoadDuplicatePathName(t *testing.T) {
	dev := testDevice()
	rt := openTest(t, dev, `
<mixer>
  <path name="speaker">
    <ctl name="Speaker Switch" value="1"/>
  </path>
  <path name="speaker">
    <ctl name="DAC Switch" value="1"/>
  </path>
</mixer>`)

	require.Len(t, rt.Paths(), 1)
	p, _ := rt.store.ByName("speaker")
	assert.Equal(t, 1, p.Len(), "first definition wins; the duplicate is skipped")
}

func TestLoadForwardReferenceUnsupported(t *testing.T) {
	dev := testDevice()
	rt := openTest(t, dev, `
<mixer>
  <path name="speaker">
    <path name="common"/>
    <ctl name="Speaker Switch" value="1"/>
  </path>
  <path name="common">
    <ctl name="DAC Switch" value="1"/>
  </path>
</mixer>`)

	// "common" was not defined yet when "speaker" referenced it
	p, _ := rt.store.ByName("speaker")
	assert.Equal(t, 1, p.Len())
}

func TestLoadStreamAbort(t *testing.T) {
	dev := testDevice()
	_, err := Open(dev, pathdef.NewXMLSource(strings.NewReader(`<mixer><path name="speaker">`)))
	require.ErrorIs(t, err, ErrParseAborted)

	// no partial configuration was committed
	assert.Zero(t, dev.WriteCount())
}

func TestControlValueConversion(t *testing.T) {
	boolCtl := mixertest.NewControl("B", mixer.CtlTypeBool, 1, 0)
	intCtl := mixertest.NewControl("I", mixer.CtlTypeInt, 1, 0)
	enumCtl := mixertest.NewEnumControl("E", []string{"off", "on"}, 0)

	tests := []struct {
		name string
		ctl  mixer.Control
		raw  string
		want int
	}{
		{"Bool", boolCtl, "1", 1},
		{"Int", intCtl, "64", 64},
		{"IntGarbage", intCtl, "abc", 0},
		{"IntMissing", intCtl, "", 0},
		{"Enum", enumCtl, "on", 1},
		{"EnumUnmatched", enumCtl, "blue", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, controlValue(tt.ctl, tt.raw))
		})
	}
}
