package versioninfo_test

import (
	"testing"

	"github.com/josephspurrier/goversioninfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icedream/versioninfo"
)

func TestGoVersionInfo(t *testing.T) {
	vi, err := versioninfo.New(
		versioninfo.WithFileVersion(versioninfo.Version{Major: 1, Minor: 2, Patch: 3, Build: 4}),
		versioninfo.WithProductVersion(versioninfo.Version{Major: 5, Minor: 6, Patch: 7, Build: 8}),
		versioninfo.WithFlags(versioninfo.FileFlagDebug|versioninfo.FileFlagPrerelease),
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode,
			map[string]string{
				"CompanyName":    "ACME",
				"FileVersion":    "1.2.3.4",
				"ProductName":    "Anvil",
				"ProductVersion": "5.6.7.8",
			}),
	)
	require.NoError(t, err)

	gvi, err := vi.GoVersionInfo()
	require.NoError(t, err)

	assert.Equal(t, 1, gvi.FixedFileInfo.FileVersion.Major)
	assert.Equal(t, 2, gvi.FixedFileInfo.FileVersion.Minor)
	assert.Equal(t, 3, gvi.FixedFileInfo.FileVersion.Patch)
	assert.Equal(t, 4, gvi.FixedFileInfo.FileVersion.Build)
	assert.Equal(t, 5, gvi.FixedFileInfo.ProductVersion.Major)
	assert.Equal(t, 8, gvi.FixedFileInfo.ProductVersion.Build)

	// goversioninfo spells these fields as hex strings.
	assert.Equal(t, "3f", gvi.FixedFileInfo.FileFlagsMask)
	assert.Equal(t, "03", gvi.FixedFileInfo.FileFlags)
	assert.Equal(t, "040004", gvi.FixedFileInfo.FileOS)
	assert.Equal(t, "01", gvi.FixedFileInfo.FileType)
	assert.Equal(t, "00", gvi.FixedFileInfo.FileSubType)

	assert.Equal(t, "ACME", gvi.StringFileInfo.CompanyName)
	assert.Equal(t, "1.2.3.4", gvi.StringFileInfo.FileVersion)
	assert.Equal(t, "Anvil", gvi.StringFileInfo.ProductName)
	assert.Equal(t, "5.6.7.8", gvi.StringFileInfo.ProductVersion)

	assert.Equal(t, goversioninfo.LngUSEnglish, gvi.VarFileInfo.Translation.LangID)
	assert.Equal(t, goversioninfo.CsUnicode, gvi.VarFileInfo.Translation.CharsetID)
}

func TestGoVersionInfo_NoStringTable(t *testing.T) {
	vi, err := versioninfo.New(
		versioninfo.WithFileVersion(versioninfo.Version{Major: 1}),
	)
	require.NoError(t, err)

	gvi, err := vi.GoVersionInfo()
	require.NoError(t, err)
	assert.Equal(t, goversioninfo.StringFileInfo{}, gvi.StringFileInfo)
}

func TestGoVersionInfo_MultipleTables(t *testing.T) {
	vi, err := versioninfo.New(
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode,
			map[string]string{"ProductName": "one"}),
		versioninfo.WithStringTable(versioninfo.LangGerman, versioninfo.CharsetUnicode,
			map[string]string{"ProductName": "zwei"}),
	)
	require.NoError(t, err)

	_, err = vi.GoVersionInfo()
	assert.Error(t, err)
}

func TestGoVersionInfo_CustomField(t *testing.T) {
	vi, err := versioninfo.New(
		versioninfo.WithStringTable(versioninfo.LangUSEnglish, versioninfo.CharsetUnicode,
			map[string]string{"CustomField": "x"}),
	)
	require.NoError(t, err)

	_, err = vi.GoVersionInfo()
	assert.ErrorIs(t, err, versioninfo.ErrUnrecognizedField)
}
