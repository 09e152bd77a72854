package versioninfo

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
)

// Manifest is a declarative version-info document. Versions are strings
// in any form VersionFromString accepts, flags and enumerations go by
// name, and languages/charsets by long name, short tag, or number.
// YAML is a superset of JSON, so both serializations parse.
type Manifest struct {
	FileVersion    string            `yaml:"file_version"`
	ProductVersion string            `yaml:"product_version"`
	FlagsMask      []string          `yaml:"flags_mask"`
	Flags          []string          `yaml:"flags"`
	OS             string            `yaml:"os"`
	Type           string            `yaml:"type"`
	Subtype        string            `yaml:"subtype"`
	Date           string            `yaml:"date"` // RFC 3339
	StrictStrings  bool              `yaml:"strict_strings"`
	Strings        []ManifestStrings `yaml:"strings"`
}

// ManifestStrings declares one string table.
type ManifestStrings struct {
	Lang    string            `yaml:"lang"`
	Charset string            `yaml:"charset"`
	Fields  map[string]string `yaml:"fields"`
}

// ParseManifest unmarshals a YAML or JSON manifest and builds the graph
// through the same validating constructor as the option API.
func ParseManifest(data []byte) (*VersionInfo, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return m.Build()
}

// Build translates the manifest into options and runs New.
func (m *Manifest) Build() (*VersionInfo, error) {
	var opts []Option

	if m.FileVersion != "" {
		v, err := VersionFromString(m.FileVersion)
		if err != nil {
			return nil, fmt.Errorf("file_version: %w", err)
		}
		opts = append(opts, WithFileVersion(v))
	}
	if m.ProductVersion != "" {
		v, err := VersionFromString(m.ProductVersion)
		if err != nil {
			return nil, fmt.Errorf("product_version: %w", err)
		}
		opts = append(opts, WithProductVersion(v))
	}

	if len(m.FlagsMask) > 0 {
		mask, err := fileFlagsFromNames(m.FlagsMask)
		if err != nil {
			return nil, fmt.Errorf("flags_mask: %w", err)
		}
		opts = append(opts, WithFlagsMask(mask))
	}
	if len(m.Flags) > 0 {
		flags, err := fileFlagsFromNames(m.Flags)
		if err != nil {
			return nil, fmt.Errorf("flags: %w", err)
		}
		opts = append(opts, WithFlags(flags))
	}

	if m.OS != "" {
		os, err := FileOSFromName(m.OS)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithOS(os))
	}
	if m.Type != "" {
		ft, err := FileTypeFromName(m.Type)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithType(ft))
	}
	if m.Subtype != "" {
		st, err := FileSubtypeFromName(m.Subtype)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithSubtype(st))
	}

	if m.Date != "" {
		t, err := time.Parse(time.RFC3339, m.Date)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		opts = append(opts, WithDate(t))
	}
	if m.StrictStrings {
		opts = append(opts, WithStrictStrings())
	}

	for _, s := range m.Strings {
		lang, err := LangIDFromString(s.Lang)
		if err != nil {
			return nil, err
		}
		charset, err := CharsetIDFromString(s.Charset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithStringTable(lang, charset, s.Fields))
	}

	return New(opts...)
}

func fileFlagsFromNames(names []string) (FileFlag, error) {
	var flags FileFlag
	for _, name := range names {
		f, err := FileFlagFromName(name)
		if err != nil {
			return 0, err
		}
		flags |= f
	}
	return flags, nil
}
