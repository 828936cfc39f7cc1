package converter

import (
	"math"
	"time"
)

// Built-in converter names, registered by Defaults.
const (
	NameBool      = "bool"      // bool <-> int32: 0 and 1 written, any non-zero reads as true
	NameDuration  = "duration"  // time.Duration <-> int64 nanoseconds
	NameTimestamp = "timestamp" // time.Time <-> int64 Unix seconds
	NameSeconds   = "seconds"   // time.Duration <-> float64 seconds
)

var (
	Bool      = MustPair(boolToNative, boolFromNative)
	Duration  = MustPair(durationToNative, durationFromNative)
	Timestamp = MustPair(timestampToNative, timestampFromNative)
	Seconds   = MustPair(secondsToNative, secondsFromNative)
)

func boolToNative(b bool) int32 {
	if b {
		return 1
	}

	return 0
}

func boolFromNative(v int32) bool { return v != 0 }

func durationToNative(d time.Duration) int64 { return int64(d) }

func durationFromNative(n int64) time.Duration { return time.Duration(n) }

func timestampToNative(t time.Time) int64 { return t.Unix() }

func timestampFromNative(s int64) time.Time { return time.Unix(s, 0).UTC() }

func secondsToNative(d time.Duration) float64 { return d.Seconds() }

func secondsFromNative(s float64) (time.Duration, bool) {
	ns := s * float64(time.Second)
	if math.IsNaN(ns) || ns >= math.MaxInt64 || ns < math.MinInt64 {
		return 0, false
	}

	return time.Duration(ns), true
}
