package httpdate

import (
	"time"

	"github.com/pkg/errors"
)

// MustParse is Parse that panics on error.
func MustParse(datestr string) DateTime {
	dt, err := Parse(datestr)
	if err != nil {
		panic(err.Error())
	}
	return dt
}

// ParseOptional is Parse for callers that only care whether the string
// was a date.
func ParseOptional(datestr string) (DateTime, bool) {
	dt, err := Parse(datestr)
	return dt, err == nil
}

// Time converts dt to a UTC time.Time, carrying the folded zone bias in
// Second over into minutes, hours and days. The year is used as is, so a
// two digit year lands in the first century.
func (dt DateTime) Time() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, 0, time.UTC)
}

// ParseTime parses datestr and converts it with DateTime.Time. Use KindOf
// on the returned error to get the failure kind.
func ParseTime(datestr string) (time.Time, error) {
	dt, err := Parse(datestr)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse time %q", datestr)
	}
	return dt.Time(), nil
}
