// Package clock resolves "today" for a configured country. The country →
// timezone table is deliberately small; unrecognized countries fall back
// to UTC rather than erroring.
package clock

import "time"

// DateFormat is the wire date format used throughout: YYYY-MM-DD.
const DateFormat = "2006-01-02"

var countryTimezones = map[string]string{
	"Korea": "Asia/Seoul",
	"USA":   "America/New_York",
}

// TimezoneByCountry returns the IANA timezone name for the country,
// or "UTC" when the country is unknown.
func TimezoneByCountry(country string) string {
	if tz, ok := countryTimezones[country]; ok {
		return tz
	}
	return "UTC"
}

// Today returns the current date in the country's timezone as YYYY-MM-DD.
// A timezone that cannot be loaded also falls back to UTC.
func Today(country string) string {
	loc, err := time.LoadLocation(TimezoneByCountry(country))
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(DateFormat)
}

// Timestamp returns the current instant in the country's timezone in
// RFC 3339 form, used for report log stamps.
func Timestamp(country string) string {
	loc, err := time.LoadLocation(TimezoneByCountry(country))
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format(time.RFC3339)
}
