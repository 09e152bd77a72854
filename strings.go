package versioninfo

import (
	"fmt"
	"sort"
)

// Recognized StringFileInfo field names, in the canonical order version
// resources list them. Other names are either passed through verbatim or
// rejected, depending on the strict-strings setting.
var recognizedFields = [...]string{
	"Comments",
	"CompanyName",
	"FileDescription",
	"FileVersion",
	"InternalName",
	"LegalCopyright",
	"LegalTrademarks",
	"OriginalFilename",
	"PrivateBuild",
	"ProductName",
	"ProductVersion",
	"SpecialBuild",
}

// RecognizedField reports whether name is one of the documented
// StringFileInfo field names.
func RecognizedField(name string) bool {
	for _, f := range recognizedFields {
		if f == name {
			return true
		}
	}
	return false
}

// StringEntry is a single name/value pair inside a string table.
type StringEntry struct {
	Name  string
	Value string
}

// StringTable is one StringFileInfo block: the language/charset pair it
// applies to plus its ordered field values.
type StringTable struct {
	LangID    LangID
	CharsetID CharsetID
	Strings   []StringEntry
}

// Key renders the block name the resource format uses, the language and
// charset identifiers as eight uppercase hex digits (e.g. "040904B0").
func (t *StringTable) Key() string {
	return fmt.Sprintf("%04X%04X", uint16(t.LangID), uint16(t.CharsetID))
}

// Get returns the value for a field name and whether it is present.
func (t *StringTable) Get(name string) (string, bool) {
	for _, e := range t.Strings {
		if e.Name == name {
			return e.Value, true
		}
	}
	return "", false
}

// newStringTable validates and orders a field map into a StringTable.
// The input map is read once and never retained; recognized fields come
// first in canonical order, remaining fields follow sorted by name so the
// result is deterministic.
func newStringTable(lang LangID, charset CharsetID, fields map[string]string, strict bool) (StringTable, error) {
	t := StringTable{LangID: lang, CharsetID: charset}

	seen := make(map[string]bool, len(fields))
	for _, name := range recognizedFields {
		if value, ok := fields[name]; ok {
			t.Strings = append(t.Strings, StringEntry{Name: name, Value: value})
			seen[name] = true
		}
	}

	var custom []string
	for name := range fields {
		if seen[name] {
			continue
		}
		if strict {
			return StringTable{}, fmt.Errorf("%w: %q", ErrUnrecognizedField, name)
		}
		custom = append(custom, name)
	}
	sort.Strings(custom)
	for _, name := range custom {
		t.Strings = append(t.Strings, StringEntry{Name: name, Value: fields[name]})
	}

	return t, nil
}
