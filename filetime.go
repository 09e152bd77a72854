package versioninfo

import "time"

// Filetime is a Windows FILETIME value: the number of 100-nanosecond
// intervals since January 1, 1601 (UTC). The resource format stores it
// split into two 32-bit halves.
type Filetime uint64

// January 1, 1970 as FILETIME.
const filetimeEpoch = 116444736000000000

const hundredNanosPerSecond = 10000000

// FiletimeFromTime converts a time.Time to a Windows FILETIME.
func FiletimeFromTime(t time.Time) Filetime {
	ft := int64(filetimeEpoch)
	ft += t.Unix() * hundredNanosPerSecond
	ft += int64(t.Nanosecond()) / 100
	return Filetime(ft)
}

// Time converts the FILETIME back to a time.Time in UTC.
func (ft Filetime) Time() time.Time {
	d := int64(ft) - filetimeEpoch
	return time.Unix(d/hundredNanosPerSecond, (d%hundredNanosPerSecond)*100).UTC()
}

// High returns the high-order 32 bits.
func (ft Filetime) High() uint32 { return uint32(ft >> 32) }

// Low returns the low-order 32 bits.
func (ft Filetime) Low() uint32 { return uint32(ft) }

// IsZero reports whether the value is the zero FILETIME, which the
// constructor treats as "no file date".
func (ft Filetime) IsZero() bool { return ft == 0 }
