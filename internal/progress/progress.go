// Package progress wraps the download progress rendering: a determinate
// byte bar when the response declares a content length, an indeterminate
// spinner otherwise.
package progress

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bytes returns a progress bar writing to w. A negative total selects an
// indeterminate spinner that advances as bytes arrive. Pass visible=false to
// suppress rendering entirely, e.g. when w is not a terminal.
func Bytes(total int64, description string, w io.Writer, visible bool) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(visible),
	)
}
