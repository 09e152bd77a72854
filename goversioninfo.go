package versioninfo

import (
	"fmt"

	"github.com/josephspurrier/goversioninfo"
)

// GoVersionInfo maps the graph onto the structure goversioninfo loads
// from versioninfo.json, so the result can be fed straight into its
// Build/Walk/WriteSyso pipeline without further adaptation.
//
// That structure holds exactly one string table and one translation pair,
// so graphs with more than one table are not representable and return an
// error, as do custom string fields.
func (vi *VersionInfo) GoVersionInfo() (*goversioninfo.VersionInfo, error) {
	if len(vi.StringFileInfo) > 1 {
		return nil, fmt.Errorf("goversioninfo supports a single string table, got %d", len(vi.StringFileInfo))
	}

	ffi := vi.FixedFileInfo
	out := &goversioninfo.VersionInfo{
		FixedFileInfo: goversioninfo.FixedFileInfo{
			FileVersion: goversioninfo.FileVersion{
				Major: ffi.FileVersion.Major,
				Minor: ffi.FileVersion.Minor,
				Patch: ffi.FileVersion.Patch,
				Build: ffi.FileVersion.Build,
			},
			ProductVersion: goversioninfo.FileVersion{
				Major: ffi.ProductVersion.Major,
				Minor: ffi.ProductVersion.Minor,
				Patch: ffi.ProductVersion.Patch,
				Build: ffi.ProductVersion.Build,
			},
			// goversioninfo keeps these as hex strings, the same way
			// versioninfo.json spells them.
			FileFlagsMask: fmt.Sprintf("%02x", uint32(ffi.FileFlagsMask)),
			FileFlags:     fmt.Sprintf("%02x", uint32(ffi.FileFlags)),
			FileOS:        fmt.Sprintf("%06x", uint32(ffi.FileOS)),
			FileType:      fmt.Sprintf("%02x", uint32(ffi.FileType)),
			FileSubType:   fmt.Sprintf("%02x", uint32(ffi.FileSubtype)),
		},
	}

	if len(vi.StringFileInfo) == 1 {
		table := &vi.StringFileInfo[0]
		for _, e := range table.Strings {
			switch e.Name {
			case "Comments":
				out.StringFileInfo.Comments = e.Value
			case "CompanyName":
				out.StringFileInfo.CompanyName = e.Value
			case "FileDescription":
				out.StringFileInfo.FileDescription = e.Value
			case "FileVersion":
				out.StringFileInfo.FileVersion = e.Value
			case "InternalName":
				out.StringFileInfo.InternalName = e.Value
			case "LegalCopyright":
				out.StringFileInfo.LegalCopyright = e.Value
			case "LegalTrademarks":
				out.StringFileInfo.LegalTrademarks = e.Value
			case "OriginalFilename":
				out.StringFileInfo.OriginalFilename = e.Value
			case "PrivateBuild":
				out.StringFileInfo.PrivateBuild = e.Value
			case "ProductName":
				out.StringFileInfo.ProductName = e.Value
			case "ProductVersion":
				out.StringFileInfo.ProductVersion = e.Value
			case "SpecialBuild":
				out.StringFileInfo.SpecialBuild = e.Value
			default:
				return nil, fmt.Errorf("%w: %q has no goversioninfo equivalent", ErrUnrecognizedField, e.Name)
			}
		}
		out.VarFileInfo.Translation = goversioninfo.Translation{
			LangID:    goversioninfo.LangID(table.LangID),
			CharsetID: goversioninfo.CharsetID(table.CharsetID),
		}
	}

	return out, nil
}
