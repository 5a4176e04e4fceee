// Package resume implements the resume-assembly pipeline: it normalizes raw
// career records, formats date ranges, segments free-text descriptions into
// display bullets, and aggregates everything into a template-ready mapping.
package resume

import "time"

// dateLayout is the single display format for dates across all sections.
const dateLayout = "2006-01"

// FormatDate renders a date as YYYY-MM. A nil date renders as "".
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateLayout)
}

// FormatRange renders a start/end date pair plus an ongoing flag as a single
// display string. The same rules apply to experience, education and project
// ranges; per-section variants are deliberately not allowed.
//
//   - no start date: ""
//   - ongoing: "<start> - Present", ignoring any stale end date
//   - end present: "<start> - <end>"
//   - otherwise: "<start>"
func FormatRange(start, end *time.Time, ongoing bool) string {
	if start == nil {
		return ""
	}
	s := FormatDate(start)
	if ongoing {
		return s + " - Present"
	}
	if end != nil {
		return s + " - " + FormatDate(end)
	}
	return s
}
