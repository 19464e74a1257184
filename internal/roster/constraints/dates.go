package constraints

import "time"

// decodeDateKey reverses domain's YYYYMMDD date-key encoding back to a
// time.Time at midnight UTC, used only for arithmetic between two keys.
func decodeDateKey(key int64) time.Time {
	year := int(key / 10000)
	month := int((key / 100) % 100)
	day := int(key % 100)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of days from `from` to `to`.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(f).Hours() / 24)
}
