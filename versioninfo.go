// Package versioninfo builds a validated in-memory representation of the
// Windows VS_VERSIONINFO resource: the numeric VS_FIXEDFILEINFO block plus
// zero or more per-language string tables and their translation pairs.
//
// The package owns no binary format and performs no I/O. The resulting
// graph is meant to be handed to the packaging tool that serializes it
// (see GoVersionInfo), typically during a build pipeline.
package versioninfo

import (
	"fmt"
	"time"
)

// Version is a four-component file or product version. Each component
// must fit in 16 bits.
type Version struct {
	Major int
	Minor int
	Patch int
	Build int
}

// Validate checks every component into [0, 65535].
func (v Version) Validate() error {
	for _, c := range [...]int{v.Major, v.Minor, v.Patch, v.Build} {
		if c < 0 || c > 0xFFFF {
			return fmt.Errorf("%w: %d is not a 16-bit value", ErrVersionRange, c)
		}
	}
	return nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Translation is one language/code-page pair from the VarFileInfo block.
// The low-order word of the stored DWORD is the language identifier, the
// high-order word the code page.
type Translation struct {
	LangID    LangID
	CharsetID CharsetID
}

// FixedFileInfo mirrors the numeric VS_FIXEDFILEINFO block.
type FixedFileInfo struct {
	FileVersion    Version
	ProductVersion Version
	FileFlagsMask  FileFlag
	FileFlags      FileFlag
	FileOS         FileOS
	FileType       FileType
	FileSubtype    FileSubtype
	FileDate       Filetime
}

// VersionInfo is the complete version-resource graph: the fixed numeric
// block, the string tables in input order, and one translation pair per
// table. It is never mutated after New returns it.
type VersionInfo struct {
	FixedFileInfo  FixedFileInfo
	StringFileInfo []StringTable
	VarFileInfo    []Translation
}

type tableSpec struct {
	lang    LangID
	charset CharsetID
	fields  map[string]string
}

type config struct {
	fileVersion    Version
	productVersion *Version
	flagsMask      *FileFlag
	flags          FileFlag
	os             FileOS
	fileType       FileType
	subtype        FileSubtype
	date           Filetime
	tables         []tableSpec
	strict         bool
}

// Option configures New.
type Option func(*config)

// WithFileVersion sets the binary file version. Default: 0.0.0.0.
func WithFileVersion(v Version) Option {
	return func(c *config) { c.fileVersion = v }
}

// WithProductVersion sets the binary product version. Default: the file
// version.
func WithProductVersion(v Version) Option {
	return func(c *config) { c.productVersion = &v }
}

// WithFlagsMask sets the mask of valid bits in the file flags
// (dwFileFlagsMask). Default: FileFlagsMask.
func WithFlagsMask(mask FileFlag) Option {
	return func(c *config) { c.flagsMask = &mask }
}

// WithFlags sets the file flags. They must be covered by the effective
// flags mask. Default: none.
func WithFlags(flags FileFlag) Option {
	return func(c *config) { c.flags = flags }
}

// WithOS sets the target operating system. Default: FileOSNTWindows32.
func WithOS(os FileOS) Option {
	return func(c *config) { c.os = os }
}

// WithType sets the general file type. Default: FileTypeApp.
func WithType(ft FileType) Option {
	return func(c *config) { c.fileType = ft }
}

// WithSubtype sets the file subtype. It must be valid for the configured
// file type. Default: FileSubtypeUnknown.
func WithSubtype(st FileSubtype) Option {
	return func(c *config) { c.subtype = st }
}

// WithDate sets the file date. Default: omitted (zero FILETIME).
func WithDate(t time.Time) Option {
	return func(c *config) { c.date = FiletimeFromTime(t) }
}

// WithFiletime sets the file date from an already-computed FILETIME.
func WithFiletime(ft Filetime) Option {
	return func(c *config) { c.date = ft }
}

// WithStringTable appends one string table for the given language/charset
// pair. Tables appear in the result in the order the options are given.
// The fields map is copied; the caller keeps ownership of it.
func WithStringTable(lang LangID, charset CharsetID, fields map[string]string) Option {
	return func(c *config) {
		c.tables = append(c.tables, tableSpec{lang: lang, charset: charset, fields: fields})
	}
}

// WithStrictStrings rejects string-table field names outside the
// recognized set instead of passing them through verbatim.
func WithStrictStrings() Option {
	return func(c *config) { c.strict = true }
}

// New validates its inputs and assembles the version-resource graph in a
// single pass. There is no partial success: it returns either a complete
// graph or an error from the taxonomy in errors.go.
func New(opts ...Option) (*VersionInfo, error) {
	c := config{
		os:       FileOSNTWindows32,
		fileType: FileTypeApp,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if err := c.fileVersion.Validate(); err != nil {
		return nil, fmt.Errorf("file version: %w", err)
	}
	productVersion := c.fileVersion
	if c.productVersion != nil {
		productVersion = *c.productVersion
		if err := productVersion.Validate(); err != nil {
			return nil, fmt.Errorf("product version: %w", err)
		}
	}

	mask := FileFlagsMask
	if c.flagsMask != nil {
		mask = *c.flagsMask
		if !mask.Valid() {
			return nil, fmt.Errorf("%w: mask %#x has bits outside %#x",
				ErrInvalidFlag, uint32(mask), uint32(FileFlagsMask))
		}
	}
	if !c.flags.Valid() {
		return nil, fmt.Errorf("%w: flags %#x have bits outside %#x",
			ErrInvalidFlag, uint32(c.flags), uint32(FileFlagsMask))
	}
	if c.flags&^mask != 0 {
		return nil, fmt.Errorf("%w: flags %#x not covered by mask %#x",
			ErrInvalidFlag, uint32(c.flags), uint32(mask))
	}

	if !c.os.Valid() {
		return nil, fmt.Errorf("%w: file OS %#x", ErrInvalidEnum, uint32(c.os))
	}
	if !c.fileType.Valid() {
		return nil, fmt.Errorf("%w: file type %#x", ErrInvalidEnum, uint32(c.fileType))
	}
	if !c.subtype.ValidFor(c.fileType) {
		return nil, fmt.Errorf("%w: file subtype %#x for file type %v",
			ErrInvalidEnum, uint32(c.subtype), c.fileType)
	}

	vi := &VersionInfo{
		FixedFileInfo: FixedFileInfo{
			FileVersion:    c.fileVersion,
			ProductVersion: productVersion,
			FileFlagsMask:  mask,
			FileFlags:      c.flags,
			FileOS:         c.os,
			FileType:       c.fileType,
			FileSubtype:    c.subtype,
			FileDate:       c.date,
		},
	}

	for i, spec := range c.tables {
		table, err := newStringTable(spec.lang, spec.charset, spec.fields, c.strict)
		if err != nil {
			return nil, fmt.Errorf("string table %d (%04X%04X): %w",
				i, uint16(spec.lang), uint16(spec.charset), err)
		}
		vi.StringFileInfo = append(vi.StringFileInfo, table)
		vi.VarFileInfo = append(vi.VarFileInfo, Translation{
			LangID:    spec.lang,
			CharsetID: spec.charset,
		})
	}

	return vi, nil
}
