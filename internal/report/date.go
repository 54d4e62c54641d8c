package report

import (
	"regexp"
	"strconv"
	"time"
)

// dateLabelPattern finds the report's date label inside raw HTML. The
// DD.<4-digit>.YYYY alternative covers a malformed export variant seen in the
// wild; it is matched first so the longer token is not split in two.
var dateLabelPattern = regexp.MustCompile(`(\d{2}\.\d{4}\.\d{4})|(\d{2}\.\d{2}\.\d{4})|(\d{2}\.\d{2}\.\d{2})`)

// dateFormats are tried in order by ParseDate. The middle group is always
// read as a month number, even in the 4-digit variant.
var dateFormats = []*regexp.Regexp{
	regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`),
	regexp.MustCompile(`(\d{2})\.(\d{4})\.(\d{4})`),
	regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{2})`),
}

// DetectDate scans raw report HTML for a date label. Falls back to the given
// reference time, rendered DD.MM.YYYY, when no label is found.
func DetectDate(htmlDoc string, now time.Time) string {
	if m := dateLabelPattern.FindString(htmlDoc); m != "" {
		return m
	}
	return now.Format("02.01.2006")
}

// ParseDate interprets a date label in one of the tolerated formats.
// Reports false when no known pattern matches.
func ParseDate(label string) (time.Time, bool) {
	for _, re := range dateFormats {
		m := re.FindStringSubmatch(label)
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
