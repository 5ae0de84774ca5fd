//go:build linux && (amd64 || arm64 || riscv64 || loong64)

package alsactl

import (
	"testing"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
)

func TestCtlTypeFromKernel(t *testing.T) {
	tests := []struct {
		name   string
		kernel int32
		want   mixer.CtlType
	}{
		{"Boolean", elemTypeBoolean, mixer.CtlTypeBool},
		{"Integer", elemTypeInteger, mixer.CtlTypeInt},
		{"Enumerated", elemTypeEnumerated, mixer.CtlTypeEnum},
		{"Bytes", elemTypeBytes, mixer.CtlTypeByte},
		{"IEC958", elemTypeIEC958, mixer.CtlTypeIEC958},
		{"Integer64", elemTypeInteger64, mixer.CtlTypeInt64},
		{"None", elemTypeNone, mixer.CtlTypeUnknown},
		{"OutOfRange", 99, mixer.CtlTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ctlTypeFromKernel(tt.kernel); got != tt.want {
				t.Errorf("ctlTypeFromKernel(%d) = %v, want %v", tt.kernel, got, tt.want)
			}
		})
	}
}
