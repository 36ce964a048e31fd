// Package progressutil wraps schollz/progressbar/v3 the way the
// teacher's utils/reporter.go does, giving the indexer sweep an optional
// terminal progress indicator.
package progressutil

import (
	"github.com/schollz/progressbar/v3"
)

// Bar is a minimal progress indicator; New returns a no-op Bar when show
// is false so callers don't need to branch at every call site.
type Bar struct {
	bar *progressbar.ProgressBar
}

// New creates a progress bar with the given max count and description.
// If show is false, the returned Bar's methods are no-ops.
func New(max int, description string, show bool) *Bar {
	if !show {
		return &Bar{}
	}
	return &Bar{
		bar: progressbar.NewOptions(max,
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Add advances the bar by n.
func (b *Bar) Add(n int) {
	if b == nil || b.bar == nil {
		return
	}
	_ = b.bar.Add(n)
}

// Finish completes the bar.
func (b *Bar) Finish() {
	if b == nil || b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}
