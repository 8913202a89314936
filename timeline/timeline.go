// Package timeline computes the summary video's total duration. The
// renderer cannot change its length mid-render, so the duration must be
// fixed from the merged user count before rendering starts.
package timeline

// Section lengths in seconds.
const (
	IntroSec    = 4
	PerUserSec  = 6
	ListViewSec = 5
	OutroSec    = 4
)

// SummaryDuration returns the summary video length in frames for the given
// merged user count. Strictly increasing in userCount.
func SummaryDuration(userCount, fps int) int {
	return (IntroSec + userCount*PerUserSec + ListViewSec + OutroSec) * fps
}
