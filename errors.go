package versioninfo

import "errors"

// Validation failures fall into three buckets. All of them surface at
// construction time; a VersionInfo is either complete and valid or not
// returned at all.
var (
	// ErrVersionRange reports a version component outside [0, 65535].
	ErrVersionRange = errors.New("invalid version component")

	// ErrInvalidFlag reports file flags with bits outside the valid mask.
	ErrInvalidFlag = errors.New("invalid flag value")

	// ErrInvalidEnum reports a value outside a closed enumeration
	// (file OS, file type, file subtype, or a name lookup miss).
	ErrInvalidEnum = errors.New("invalid enumeration value")

	// ErrUnrecognizedField reports a string-table field name outside the
	// recognized set while strict checking is enabled.
	ErrUnrecognizedField = errors.New("unrecognized field name")
)
