package versioninfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icedream/versioninfo"
)

func TestNew_Defaults(t *testing.T) {
	vi, err := versioninfo.New()
	require.NoError(t, err)

	ffi := vi.FixedFileInfo
	assert.Equal(t, versioninfo.Version{}, ffi.FileVersion)
	assert.Equal(t, versioninfo.Version{}, ffi.ProductVersion)
	assert.Equal(t, versioninfo.FileFlagsMask, ffi.FileFlagsMask)
	assert.Equal(t, versioninfo.FileFlagNone, ffi.FileFlags)
	assert.Equal(t, versioninfo.FileOSNTWindows32, ffi.FileOS)
	assert.Equal(t, versioninfo.FileTypeApp, ffi.FileType)
	assert.Equal(t, versioninfo.FileSubtypeUnknown, ffi.FileSubtype)
	assert.True(t, ffi.FileDate.IsZero())
	assert.Empty(t, vi.StringFileInfo)
	assert.Empty(t, vi.VarFileInfo)
}

func TestNew_VersionRoundTrip(t *testing.T) {
	for _, v := range []versioninfo.Version{
		{},
		{Major: 1, Minor: 2, Patch: 3, Build: 4},
		{Major: 65535, Minor: 65535, Patch: 65535, Build: 65535},
		{Major: 0, Minor: 0, Patch: 0, Build: 1},
	} {
		vi, err := versioninfo.New(versioninfo.WithFileVersion(v))
		require.NoError(t, err, v)
		assert.Equal(t, v, vi.FixedFileInfo.FileVersion)
		// Product version defaults to the file version.
		assert.Equal(t, v, vi.FixedFileInfo.ProductVersion)
	}
}

func TestNew_VersionRange(t *testing.T) {
	for _, v := range []versioninfo.Version{
		{Major: -1},
		{Minor: -1},
		{Patch: 65536},
		{Build: 1 << 20},
	} {
		_, err := versioninfo.New(versioninfo.WithFileVersion(v))
		assert.ErrorIs(t, err, versioninfo.ErrVersionRange, v)

		_, err = versioninfo.New(versioninfo.WithProductVersion(v))
		assert.ErrorIs(t, err, versioninfo.ErrVersionRange, v)
	}
}

func TestNew_ProductVersion(t *testing.T) {
	file := versioninfo.Version{Major: 1, Minor: 2, Patch: 3, Build: 4}
	product := versioninfo.Version{Major: 5, Minor: 6, Patch: 7, Build: 8}

	vi, err := versioninfo.New(
		versioninfo.WithFileVersion(file),
		versioninfo.WithProductVersion(product),
	)
	require.NoError(t, err)
	assert.Equal(t, file, vi.FixedFileInfo.FileVersion)
	assert.Equal(t, product, vi.FixedFileInfo.ProductVersion)
}

func TestNew_Flags(t *testing.T) {
	vi, err := versioninfo.New(versioninfo.WithFlags(
		versioninfo.FileFlagDebug | versioninfo.FileFlagPrerelease,
	))
	require.NoError(t, err)
	assert.True(t, vi.FixedFileInfo.FileFlags.Has(versioninfo.FileFlagDebug))
	assert.True(t, vi.FixedFileInfo.FileFlags.Has(versioninfo.FileFlagPrerelease))
	assert.False(t, vi.FixedFileInfo.FileFlags.Has(versioninfo.FileFlagPatched))

	// Bits outside the defined bitmask.
	_, err = versioninfo.New(versioninfo.WithFlags(0x40))
	assert.ErrorIs(t, err, versioninfo.ErrInvalidFlag)

	// Valid flag, but not covered by a narrowed mask.
	_, err = versioninfo.New(
		versioninfo.WithFlagsMask(versioninfo.FileFlagDebug),
		versioninfo.WithFlags(versioninfo.FileFlagPrerelease),
	)
	assert.ErrorIs(t, err, versioninfo.ErrInvalidFlag)

	// Mask itself may not carry undefined bits.
	_, err = versioninfo.New(versioninfo.WithFlagsMask(0x1000))
	assert.ErrorIs(t, err, versioninfo.ErrInvalidFlag)
}

func TestNew_EnumValidation(t *testing.T) {
	_, err := versioninfo.New(versioninfo.WithOS(versioninfo.FileOS(0x00080000)))
	assert.ErrorIs(t, err, versioninfo.ErrInvalidEnum)

	_, err = versioninfo.New(versioninfo.WithType(versioninfo.FileType(6)))
	assert.ErrorIs(t, err, versioninfo.ErrInvalidEnum)

	// Subtypes are only defined for drivers, fonts and VXDs.
	_, err = versioninfo.New(versioninfo.WithSubtype(versioninfo.FileSubtypeDrvPrinter))
	assert.ErrorIs(t, err, versioninfo.ErrInvalidEnum)

	_, err = versioninfo.New(
		versioninfo.WithType(versioninfo.FileTypeDrv),
		versioninfo.WithSubtype(versioninfo.FileSubtypeDrvPrinter),
	)
	assert.NoError(t, err)

	_, err = versioninfo.New(
		versioninfo.WithType(versioninfo.FileTypeFont),
		versioninfo.WithSubtype(versioninfo.FileSubtypeFontTrueType),
	)
	assert.NoError(t, err)

	_, err = versioninfo.New(
		versioninfo.WithType(versioninfo.FileTypeFont),
		versioninfo.WithSubtype(versioninfo.FileSubtype(9)),
	)
	assert.ErrorIs(t, err, versioninfo.ErrInvalidEnum)

	// VXD subtype is a free-form virtual-device identifier.
	_, err = versioninfo.New(
		versioninfo.WithType(versioninfo.FileTypeVxd),
		versioninfo.WithSubtype(versioninfo.FileSubtype(0x1234)),
	)
	assert.NoError(t, err)
}

func TestNew_StringTable(t *testing.T) {
	vi, err := versioninfo.New(
		versioninfo.WithFileVersion(versioninfo.Version{Major: 1, Minor: 2, Patch: 3, Build: 4}),
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode,
			map[string]string{"FileVersion": "1.2.3.4"}),
	)
	require.NoError(t, err)

	require.Len(t, vi.StringFileInfo, 1)
	table := vi.StringFileInfo[0]
	assert.Equal(t, "040904B0", table.Key())
	assert.Equal(t, versioninfo.LangUSEnglish, table.LangID)
	assert.Equal(t, versioninfo.CharsetUnicode, table.CharsetID)

	value, ok := table.Get("FileVersion")
	require.True(t, ok)
	assert.Equal(t, "1.2.3.4", value)

	require.Len(t, vi.VarFileInfo, 1)
	assert.Equal(t, versioninfo.LangUSEnglish, vi.VarFileInfo[0].LangID)
	assert.Equal(t, versioninfo.CharsetUnicode, vi.VarFileInfo[0].CharsetID)
}

func TestNew_StringTableRoundTrip(t *testing.T) {
	fields := map[string]string{
		"Comments":         "a",
		"CompanyName":      "b",
		"FileDescription":  "c",
		"FileVersion":      "d",
		"InternalName":     "e",
		"LegalCopyright":   "f",
		"LegalTrademarks":  "g",
		"OriginalFilename": "h",
		"PrivateBuild":     "i",
		"ProductName":      "j",
		"ProductVersion":   "k",
		"SpecialBuild":     "l",
		"CustomField":      "m",
	}

	vi, err := versioninfo.New(
		versioninfo.WithStringTable(versioninfo.LangGerman, versioninfo.CharsetUnicode, fields),
	)
	require.NoError(t, err)

	require.Len(t, vi.StringFileInfo, 1)
	table := vi.StringFileInfo[0]
	assert.Len(t, table.Strings, len(fields))
	for name, want := range fields {
		got, ok := table.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestNew_StringTableOrder(t *testing.T) {
	vi, err := versioninfo.New(
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode,
			map[string]string{"ProductName": "first"}),
		versioninfo.WithStringTable(versioninfo.LangGerman, versioninfo.CharsetMultilingual,
			map[string]string{"ProductName": "zweite"}),
	)
	require.NoError(t, err)

	require.Len(t, vi.StringFileInfo, 2)
	assert.Equal(t, "040904B0", vi.StringFileInfo[0].Key())
	assert.Equal(t, "040704E4", vi.StringFileInfo[1].Key())

	require.Len(t, vi.VarFileInfo, 2)
	assert.Equal(t, versioninfo.LangUSEnglish, vi.VarFileInfo[0].LangID)
	assert.Equal(t, versioninfo.LangGerman, vi.VarFileInfo[1].LangID)
}

func TestNew_CanonicalFieldOrder(t *testing.T) {
	vi, err := versioninfo.New(
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode,
			map[string]string{
				"ZCustom":     "z",
				"ACustom":     "a",
				"ProductName": "p",
				"CompanyName": "c",
			}),
	)
	require.NoError(t, err)

	require.Len(t, vi.StringFileInfo, 1)
	names := []string{}
	for _, e := range vi.StringFileInfo[0].Strings {
		names = append(names, e.Name)
	}
	// Recognized fields in canonical order, then custom fields sorted.
	assert.Equal(t, []string{"CompanyName", "ProductName", "ACustom", "ZCustom"}, names)
}

func TestNew_StrictStrings(t *testing.T) {
	fields := map[string]string{
		"ProductName": "ok",
		"CustomField": "custom",
	}

	// Unrecognized names pass through verbatim by default.
	vi, err := versioninfo.New(
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode, fields),
	)
	require.NoError(t, err)
	value, ok := vi.StringFileInfo[0].Get("CustomField")
	require.True(t, ok)
	assert.Equal(t, "custom", value)

	_, err = versioninfo.New(
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode, fields),
		versioninfo.WithStrictStrings(),
	)
	assert.ErrorIs(t, err, versioninfo.ErrUnrecognizedField)
}

func TestNew_UnregisteredRawValues(t *testing.T) {
	// Raw identifiers outside the tables stay usable, as documented.
	lang := versioninfo.LangID(0x1234)
	charset := versioninfo.CharsetID(0x5678)
	assert.False(t, lang.Registered())
	assert.False(t, charset.Registered())

	vi, err := versioninfo.New(
		versioninfo.WithStringTable(lang, charset, map[string]string{"ProductName": "raw"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "12345678", vi.StringFileInfo[0].Key())
}

func TestVersion_String(t *testing.T) {
	v := versioninfo.Version{Major: 1, Minor: 2, Patch: 3, Build: 4}
	assert.Equal(t, "1.2.3.4", v.String())
}
