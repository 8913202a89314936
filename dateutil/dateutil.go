// Package dateutil normalizes "today" to the channel's civil day.
// The schedule runs on Japan time; the day boundary must be identical no
// matter which host timezone the process runs in.
package dateutil

import "time"

// JST is the fixed +09:00 offset. No DST, so a fixed zone is exact.
var JST = time.FixedZone("JST", 9*60*60)

// Civil returns the YYYY-MM-DD civil date of t in JST.
func Civil(t time.Time) string {
	return t.In(JST).Format("2006-01-02")
}

// Today returns today's civil date in JST.
func Today() string {
	return Civil(time.Now())
}

// NowISO returns the current instant formatted with the +09:00 offset.
func NowISO() string {
	return time.Now().In(JST).Format(time.RFC3339)
}
