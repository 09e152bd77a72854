package versioninfo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/blang/semver"
)

// Windows-style four-part versions ("1.2.3.4") are not valid semver, so
// they get matched first.
var rxFourPart = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\.(\d+)(?:[-+].*)?$`)

// VersionFromString parses a version string into a Version. It accepts
// semver with or without a leading "v" ("1.2.3", "v1.2.3-rc.1"), short
// forms ("1.2"), and Windows four-part versions ("1.2.3.4"). Prerelease
// and build suffixes only affect the string fields of a resource, not the
// numeric version, and are ignored here.
func VersionFromString(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")

	if m := rxFourPart.FindStringSubmatch(trimmed); m != nil {
		var v Version
		for i, dst := range []*int{&v.Major, &v.Minor, &v.Patch, &v.Build} {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return Version{}, fmt.Errorf("parse version %q: %w", s, err)
			}
			*dst = n
		}
		if err := v.Validate(); err != nil {
			return Version{}, fmt.Errorf("parse version %q: %w", s, err)
		}
		return v, nil
	}

	sv, err := semver.ParseTolerant(trimmed)
	if err != nil {
		return Version{}, fmt.Errorf("parse version %q: %w", s, err)
	}
	v := Version{
		Major: int(sv.Major),
		Minor: int(sv.Minor),
		Patch: int(sv.Patch),
	}
	if err := v.Validate(); err != nil {
		return Version{}, fmt.Errorf("parse version %q: %w", s, err)
	}
	return v, nil
}
