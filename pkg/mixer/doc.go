// Package mixer defines the hardware mixer boundary used by the routing
// engine.
//
// # Devices and Controls
//
// A Device is one open control interface for a sound card; it exposes the
// card's Controls (switches, gains, enum selectors). The routing engine in
// pkg/route treats controls as opaque handles and compares them by
// identity, so a Control must be a stable value for the lifetime of its
// Device.
//
// The real backend lives in pkg/mixer/alsactl. Tests use the scripted
// device in internal/mixertest.
//
// # One-shot operations
//
// SetControlValue and SetControlEnum change a control directly on a
// Device, outside any routing state. They are meant for ad hoc tweaks on a
// separately opened handle and never touch the staged bookkeeping held by
// a routing engine for the same card.
//
// # Card discovery
//
// FirstCard scans the control device directory for the lowest numbered
// card. VendorName reads the codec chip name exposed by the kernel and
// normalizes it for use in the mixer_paths_<vendor>.xml definitions
// filename convention (see DefinitionsFile).
package mixer
