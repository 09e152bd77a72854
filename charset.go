package versioninfo

import (
	"fmt"
	"strconv"
	"strings"
)

// CharsetID is an IBM code page number as used in StringFileInfo block
// names and VarFileInfo translation pairs. Values outside the table are
// still usable as raw code page numbers.
//
// https://docs.microsoft.com/en-us/windows/win32/menurc/stringfileinfo-block
type CharsetID uint16

const (
	Charset7BitASCII    CharsetID = 0x0000
	CharsetJapan        CharsetID = 0x03A4
	CharsetKorea        CharsetID = 0x03B5
	CharsetTaiwan       CharsetID = 0x03B6
	CharsetUnicode      CharsetID = 0x04B0
	CharsetLatin2       CharsetID = 0x04E2
	CharsetCyrillic     CharsetID = 0x04E3
	CharsetMultilingual CharsetID = 0x04E4
	CharsetGreek        CharsetID = 0x04E5
	CharsetTurkish      CharsetID = 0x04E6
	CharsetHebrew       CharsetID = 0x04E7
	CharsetArabic       CharsetID = 0x04E8
)

var charsetNames = []struct {
	name string
	id   CharsetID
}{
	{"ascii", Charset7BitASCII},
	{"japan", CharsetJapan},
	{"korea", CharsetKorea},
	{"taiwan", CharsetTaiwan},
	{"unicode", CharsetUnicode},
	{"latin2", CharsetLatin2},
	{"cyrillic", CharsetCyrillic},
	{"multilingual", CharsetMultilingual},
	{"greek", CharsetGreek},
	{"turkish", CharsetTurkish},
	{"hebrew", CharsetHebrew},
	{"arabic", CharsetArabic},
}

// Registered reports whether the code page appears in the charset table.
func (id CharsetID) Registered() bool {
	for _, e := range charsetNames {
		if e.id == id {
			return true
		}
	}
	return false
}

func (id CharsetID) String() string {
	for _, e := range charsetNames {
		if e.id == id {
			return e.name
		}
	}
	return fmt.Sprintf("%#04x", uint16(id))
}

// CharsetIDFromName resolves a name such as "unicode" or "latin2".
func CharsetIDFromName(name string) (CharsetID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, e := range charsetNames {
		if e.name == n {
			return e.id, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown charset name %q", ErrInvalidEnum, name)
}

// CharsetIDFromString resolves a charset name or a numeric code page
// ("1200", "0x04B0").
func CharsetIDFromString(s string) (CharsetID, error) {
	if id, err := CharsetIDFromName(s); err == nil {
		return id, nil
	}
	if n, err := strconv.ParseUint(strings.TrimSpace(s), 0, 16); err == nil {
		return CharsetID(n), nil
	}
	return 0, fmt.Errorf("%w: unknown charset %q", ErrInvalidEnum, s)
}
