// Package alsactl is the ALSA control backend for pkg/mixer.
//
// It talks to /dev/snd/controlC<card> directly through the kernel's
// control element ioctls, without cgo or an alsa-lib dependency, so
// binaries cross-compile like any other Go program. Element metadata
// (name, type, backing value count, enum item tables) is loaded once at
// Open; reads and writes go to the kernel per call.
//
// Only 64-bit Linux is supported; on other platforms Open returns
// ErrUnsupported.
package alsactl
