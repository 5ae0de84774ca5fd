//go:build linux && (amd64 || arm64 || riscv64 || loong64)

package alsactl

import "unsafe"

// Kernel ABI structs for the ALSA control interface. Layouts assume a
// 64-bit long and 8-byte pointer alignment, matching the build
// constraint above.

// Kernel element value types (snd_ctl_elem_type_t).
const (
	elemTypeNone       = 0
	elemTypeBoolean    = 1
	elemTypeInteger    = 2
	elemTypeEnumerated = 3
	elemTypeBytes      = 4
	elemTypeIEC958     = 5
	elemTypeInteger64  = 6
)

// sndCtlCardInfo contains general information about a sound card.
type sndCtlCardInfo struct {
	Card       int32
	Pad        int32
	Id         [16]byte
	Driver     [16]byte
	Name       [32]byte
	Longname   [80]byte
	Reserved   [16]byte
	Mixername  [80]byte
	Components [128]byte
}

// sndCtlElemId identifies a single control element.
type sndCtlElemId struct {
	Numid     uint32
	Iface     int32
	Device    uint32
	Subdevice uint32
	Name      [44]byte
	Index     uint32
}

// sndCtlElemList is the ioctl argument for enumerating elements.
// Pids points at a caller-provided sndCtlElemId array.
type sndCtlElemList struct {
	Offset   uint32
	Space    uint32
	Used     uint32
	Count    uint32
	Pids     uint64
	Reserved [50]byte
}

// sndCtlElemInfo contains metadata about a control element. Value is
// the C union, sized to its largest member.
type sndCtlElemInfo struct {
	Id       sndCtlElemId
	Typ      int32
	Access   uint32
	Count    uint32
	Owner    int32
	Value    [128]byte
	Reserved [64]byte
}

// sndCtlElemValue carries element values for read/write. Value is the
// C union: long[128] for boolean/integer, u32[128] for enumerated,
// bytes for the rest.
type sndCtlElemValue struct {
	Id       sndCtlElemId
	Indirect uint32
	_        [4]byte
	Value    [1024]byte
	Reserved [128]byte
}

// Offsets into the sndCtlElemInfo value union for enumerated elements:
// struct { u32 items; u32 item; char name[64]; u64 names_ptr; u32 names_length; }.
const (
	enumItemsOff = 0
	enumItemOff  = 4
	enumNameOff  = 8
	enumNameLen  = 64
)

// ioctl request numbers, computed the way the kernel macros do.
const (
	iocWrite = 1
	iocRead  = 2

	iocNrShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

func ioc(dir, nr, size uintptr) uintptr {
	return dir<<iocDirShift | 'U'<<iocTypeShift | size<<iocSizeShift | nr<<iocNrShift
}

var (
	ioctlCardInfo  = ioc(iocRead, 0x01, unsafe.Sizeof(sndCtlCardInfo{}))
	ioctlElemList  = ioc(iocRead|iocWrite, 0x10, unsafe.Sizeof(sndCtlElemList{}))
	ioctlElemInfo  = ioc(iocRead|iocWrite, 0x11, unsafe.Sizeof(sndCtlElemInfo{}))
	ioctlElemRead  = ioc(iocRead|iocWrite, 0x12, unsafe.Sizeof(sndCtlElemValue{}))
	ioctlElemWrite = ioc(iocRead|iocWrite, 0x13, unsafe.Sizeof(sndCtlElemValue{}))
)

// cstr truncates a NUL-terminated byte buffer to a string.
func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
