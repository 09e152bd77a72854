package versioninfo

import (
	"fmt"
	"strings"
)

// FileFlag is a bitmask describing the Boolean attributes of the file,
// as defined for the dwFileFlags member of VS_FIXEDFILEINFO.
//
// https://docs.microsoft.com/en-us/windows/win32/api/verrsrc/ns-verrsrc-vs_fixedfileinfo
type FileFlag uint32

const (
	// FileFlagNone indicates that no file flags apply.
	// Not a real value in verrsrc.h.
	FileFlagNone FileFlag = 0x00000000

	// FileFlagDebug marks a file that contains debugging information or
	// was compiled with debugging features enabled.
	FileFlagDebug FileFlag = 0x00000001

	// FileFlagPrerelease marks a development version, not a commercially
	// released product.
	FileFlagPrerelease FileFlag = 0x00000002

	// FileFlagPatched marks a file that has been modified and is not
	// identical to the original shipping file of the same version number.
	FileFlagPatched FileFlag = 0x00000004

	// FileFlagPrivateBuild marks a file not built using standard release
	// procedures. The string table should carry a PrivateBuild entry.
	FileFlagPrivateBuild FileFlag = 0x00000008

	// FileFlagInfoInferred marks a version structure that was created
	// dynamically; it should never be set in a file's VS_VERSIONINFO data.
	FileFlagInfoInferred FileFlag = 0x00000010

	// FileFlagSpecialBuild marks a variation of the normal file of the
	// same version number. The string table should carry a SpecialBuild
	// entry.
	FileFlagSpecialBuild FileFlag = 0x00000020

	// FileFlagsMask combines every flag verrsrc.h defines
	// (VS_FFI_FILEFLAGSMASK).
	FileFlagsMask FileFlag = 0x0000003F
)

var fileFlagNames = []struct {
	name string
	flag FileFlag
}{
	{"debug", FileFlagDebug},
	{"prerelease", FileFlagPrerelease},
	{"patched", FileFlagPatched},
	{"privatebuild", FileFlagPrivateBuild},
	{"infoinferred", FileFlagInfoInferred},
	{"specialbuild", FileFlagSpecialBuild},
}

// Valid reports whether every set bit belongs to FileFlagsMask.
func (f FileFlag) Valid() bool {
	return f&^FileFlagsMask == 0
}

// Has reports whether all bits of flag are set in f.
func (f FileFlag) Has(flag FileFlag) bool {
	return f&flag == flag
}

func (f FileFlag) String() string {
	if f == FileFlagNone {
		return "none"
	}
	parts := []string{}
	rest := f
	for _, e := range fileFlagNames {
		if rest.Has(e.flag) {
			parts = append(parts, e.name)
			rest &^= e.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// FileFlagFromName resolves a single flag name such as "debug" or
// "prerelease". Names are matched case-insensitively.
func FileFlagFromName(name string) (FileFlag, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "none" {
		return FileFlagNone, nil
	}
	for _, e := range fileFlagNames {
		if e.name == n {
			return e.flag, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown file flag %q", ErrInvalidFlag, name)
}

// FileOS identifies the operating system for which the file was designed
// (dwFileOS). Base systems occupy the high word, sub-systems the low word,
// and the two halves may be combined to indicate one system running on
// another.
type FileOS uint32

const (
	FileOSUnknown FileOS = 0x00000000
	FileOSDOS     FileOS = 0x00010000
	FileOSOS216   FileOS = 0x00020000
	FileOSOS232   FileOS = 0x00030000
	FileOSNT      FileOS = 0x00040000
	FileOSWinCE   FileOS = 0x00050000

	FileOSWindows16 FileOS = 0x00000001
	FileOSPM16      FileOS = 0x00000002
	FileOSPM32      FileOS = 0x00000003
	FileOSWindows32 FileOS = 0x00000004

	FileOSDOSWindows16 FileOS = 0x00010001
	FileOSDOSWindows32 FileOS = 0x00010004
	FileOSOS216PM16    FileOS = 0x00020002
	FileOSOS232PM32    FileOS = 0x00030003
	FileOSNTWindows32  FileOS = 0x00040004
)

var fileOSNames = []struct {
	name string
	os   FileOS
}{
	{"unknown", FileOSUnknown},
	{"dos", FileOSDOS},
	{"os216", FileOSOS216},
	{"os232", FileOSOS232},
	{"nt", FileOSNT},
	{"wince", FileOSWinCE},
	{"windows16", FileOSWindows16},
	{"pm16", FileOSPM16},
	{"pm32", FileOSPM32},
	{"windows32", FileOSWindows32},
	{"dos_windows16", FileOSDOSWindows16},
	{"dos_windows32", FileOSDOSWindows32},
	{"os216_pm16", FileOSOS216PM16},
	{"os232_pm32", FileOSOS232PM32},
	{"nt_windows32", FileOSNTWindows32},
}

// Valid reports whether os is a known base system, a known sub-system, or
// a combination of the two.
func (os FileOS) Valid() bool {
	base := os >> 16
	sub := os & 0xFFFF
	return base <= FileOSWinCE>>16 && sub <= FileOSWindows32
}

func (os FileOS) String() string {
	for _, e := range fileOSNames {
		if e.os == os {
			return e.name
		}
	}
	return fmt.Sprintf("%#x", uint32(os))
}

// FileOSFromName resolves a name such as "nt_windows32" or "dos".
func FileOSFromName(name string) (FileOS, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range fileOSNames {
		if e.name == n {
			return e.os, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown file OS %q", ErrInvalidEnum, name)
}

// FileType is the general type of file (dwFileType). Values not listed
// here are reserved.
type FileType uint32

const (
	FileTypeUnknown   FileType = 0x00000000
	FileTypeApp       FileType = 0x00000001
	FileTypeDLL       FileType = 0x00000002
	FileTypeDrv       FileType = 0x00000003
	FileTypeFont      FileType = 0x00000004
	FileTypeVxd       FileType = 0x00000005
	FileTypeStaticLib FileType = 0x00000007
)

var fileTypeNames = []struct {
	name string
	ft   FileType
}{
	{"unknown", FileTypeUnknown},
	{"app", FileTypeApp},
	{"dll", FileTypeDLL},
	{"drv", FileTypeDrv},
	{"font", FileTypeFont},
	{"vxd", FileTypeVxd},
	{"static_lib", FileTypeStaticLib},
}

// Valid reports whether ft is one of the defined file types.
func (ft FileType) Valid() bool {
	for _, e := range fileTypeNames {
		if e.ft == ft {
			return true
		}
	}
	return false
}

func (ft FileType) String() string {
	for _, e := range fileTypeNames {
		if e.ft == ft {
			return e.name
		}
	}
	return fmt.Sprintf("%#x", uint32(ft))
}

// FileTypeFromName resolves a name such as "app" or "dll".
func FileTypeFromName(name string) (FileType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range fileTypeNames {
		if e.name == n {
			return e.ft, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown file type %q", ErrInvalidEnum, name)
}

// FileSubtype is the function of the file (dwFileSubtype). Its meaning
// depends on the file type: driver functions for FileTypeDrv, font kinds
// for FileTypeFont, a free-form virtual-device identifier for FileTypeVxd,
// and zero for everything else.
type FileSubtype uint32

const (
	FileSubtypeUnknown FileSubtype = 0x00000000

	// Driver subtypes (FileTypeDrv).
	FileSubtypeDrvPrinter          FileSubtype = 0x00000001
	FileSubtypeDrvKeyboard         FileSubtype = 0x00000002
	FileSubtypeDrvLanguage         FileSubtype = 0x00000003
	FileSubtypeDrvDisplay          FileSubtype = 0x00000004
	FileSubtypeDrvMouse            FileSubtype = 0x00000005
	FileSubtypeDrvNetwork          FileSubtype = 0x00000006
	FileSubtypeDrvSystem           FileSubtype = 0x00000007
	FileSubtypeDrvInstallable      FileSubtype = 0x00000008
	FileSubtypeDrvSound            FileSubtype = 0x00000009
	FileSubtypeDrvComm             FileSubtype = 0x0000000A
	FileSubtypeDrvInputMethod      FileSubtype = 0x0000000B
	FileSubtypeDrvVersionedPrinter FileSubtype = 0x0000000C

	// Font subtypes (FileTypeFont).
	FileSubtypeFontRaster   FileSubtype = 0x00000001
	FileSubtypeFontVector   FileSubtype = 0x00000002
	FileSubtypeFontTrueType FileSubtype = 0x00000003
)

var fileSubtypeNames = []struct {
	name string
	st   FileSubtype
}{
	{"unknown", FileSubtypeUnknown},
	{"printer", FileSubtypeDrvPrinter},
	{"keyboard", FileSubtypeDrvKeyboard},
	{"language", FileSubtypeDrvLanguage},
	{"display", FileSubtypeDrvDisplay},
	{"mouse", FileSubtypeDrvMouse},
	{"network", FileSubtypeDrvNetwork},
	{"system", FileSubtypeDrvSystem},
	{"installable", FileSubtypeDrvInstallable},
	{"sound", FileSubtypeDrvSound},
	{"comm", FileSubtypeDrvComm},
	{"inputmethod", FileSubtypeDrvInputMethod},
	{"versioned_printer", FileSubtypeDrvVersionedPrinter},
	{"raster", FileSubtypeFontRaster},
	{"vector", FileSubtypeFontVector},
	{"truetype", FileSubtypeFontTrueType},
}

// ValidFor reports whether st is a defined subtype for the given file
// type. verrsrc.h reserves subtypes for all other type values.
func (st FileSubtype) ValidFor(ft FileType) bool {
	switch ft {
	case FileTypeDrv:
		return st <= FileSubtypeDrvVersionedPrinter
	case FileTypeFont:
		return st <= FileSubtypeFontTrueType
	case FileTypeVxd:
		// Virtual-device identifier, not an enumeration.
		return true
	default:
		return st == FileSubtypeUnknown
	}
}

// FileSubtypeFromName resolves a name such as "printer" or "truetype".
func FileSubtypeFromName(name string) (FileSubtype, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range fileSubtypeNames {
		if e.name == n {
			return e.st, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown file subtype %q", ErrInvalidEnum, name)
}
