package utils

import "time"

// DisplayLayout is the default layout used by FormatUTC7.
const DisplayLayout = "02/01/2006 15:04:05"

const utc7Suffix = " (UTC+7)"

var utc7 = time.FixedZone("UTC+7", 7*60*60)

// FormatUTC7 renders t in the fixed UTC+7 zone followed by " (UTC+7)".
// An empty layout means DisplayLayout. The result is for display only.
func FormatUTC7(t time.Time, layout string) string {
	if layout == "" {
		layout = DisplayLayout
	}
	return t.In(utc7).Format(layout) + utc7Suffix
}
