package connection

import (
	"fmt"
	"time"
)

// FormatElapsed renders an elapsed time as DDd.HHh:MMm:SSs,
// e.g. 1d2h3m4s -> "01d.02h:03m:04s". Negative values carry a leading
// minus sign.
func FormatElapsed(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	d = d.Round(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second

	return fmt.Sprintf("%s%02dd.%02dh:%02dm:%02ds", sign, days, hours, minutes, seconds)
}
