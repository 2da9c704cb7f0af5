// Package httpdate parses the date formats found in HTTP headers, mail,
// web server logs and ISO8601 feeds without being told which one it is
// looking at.
//
//	Wed, 09 Feb 1994 22:23:32 GMT     RFC822 / RFC1123
//	Tuesday, 08-Feb-94 14:15:29 GMT   RFC850
//	Tuesday, 08-Feb-1994 14:15:29 GMT broken RFC850
//	03/Feb/1994:17:03:55 -0700        common log format
//	1994-02-03 14:15:29 -0100         ISO8601
//	19940203T141529Z                  ISO8601 basic
//
// The parser is forgiving: it does not check the weekday, accepts hour 24
// and second 61, and ignores a trailing zone it does not know.
package httpdate

import (
	"fmt"
)

// DateTime holds the calendar fields scanned from a date string.
//
// Second has the timezone bias folded into it and is NOT renormalized:
// "1994-02-03 14:15:29 -0100" yields Second 3629. Use Time to get a
// normalized time.Time.
//
// A two digit year is kept as scanned, "08-Feb-94" has Year 94.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

var months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

type parser struct {
	datestr string
	i       int
	dt      DateTime
}

// Parse scans datestr into a DateTime. A date without a time is midnight,
// a time without a zone carries no bias. Errors are always *ParseError.
func Parse(datestr string) (DateTime, error) {
	p := &parser{datestr: datestr}
	if err := p.parse(); err != nil {
		return DateTime{}, err
	}
	return p.dt, nil
}

func (p *parser) parse() error {
	if err := p.skipWeekday(); err != nil {
		return err
	}
	if err := p.parseDate(); err != nil {
		return err
	}
	if !CheckDate(p.dt.Year, p.dt.Month, p.dt.Day) {
		return p.fail(ErrCalendar, "date", "%04d-%02d-%02d is not a valid date",
			p.dt.Year, p.dt.Month, p.dt.Day)
	}

	switch p.peek() {
	case ' ', 'T', ':':
		p.i++
	}
	if p.eof() {
		return nil
	}

	if err := p.parseTime(); err != nil {
		return err
	}
	return p.parseZone()
}

func (p *parser) eof() bool {
	return p.i >= len(p.datestr)
}

// peek returns the byte at the cursor, 0 at end of input.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.datestr[p.i]
}

func (p *parser) fail(kind ErrorKind, field, format string, args ...interface{}) error {
	return &ParseError{
		Kind:   kind,
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Pos:    p.i,
		Input:  p.datestr,
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isDelimiter(c byte) bool { return c == ' ' || c == '-' || c == '/' }

// digitIn consumes one digit in lo..hi and returns its value.
func (p *parser) digitIn(field string, lo, hi byte) (int, error) {
	c := p.peek()
	switch {
	case p.eof():
		return 0, p.fail(ErrStructural, field, "unexpected end of input")
	case !isDigit(c):
		return 0, p.fail(ErrLexical, field, "expected digit, found %q", c)
	case c < lo || c > hi:
		return 0, p.fail(ErrRange, field, "digit %q not in %c-%c", c, lo, hi)
	}
	p.i++
	return int(c - '0'), nil
}

// twoDigits consumes two digits, the first restricted to 0..first.
func (p *parser) twoDigits(field string, first byte) (int, error) {
	hi, err := p.digitIn(field, '0', first)
	if err != nil {
		return 0, err
	}
	lo, err := p.digitIn(field, '0', '9')
	if err != nil {
		return 0, err
	}
	return hi*10 + lo, nil
}

func (p *parser) skipWeekday() error {
	if !isAlpha(p.peek()) {
		return nil
	}
	for isAlpha(p.peek()) {
		p.i++
	}
	if p.peek() == ',' {
		p.i++
	}
	if p.peek() != ' ' {
		return p.fail(ErrStructural, "weekday", "expected space after weekday")
	}
	p.i++
	return nil
}

func (p *parser) parseDate() error {
	v, err := p.twoDigits("date", '9')
	if err != nil {
		return err
	}
	if p.eof() {
		return p.fail(ErrStructural, "date", "too short")
	}
	if isDigit(p.peek()) {
		return p.parseYearFirst(v)
	}
	return p.parseDayFirst(v)
}

// parseYearFirst handles 1994-02-03, 1994/02/03, 1994 02 03 and 19940203.
// century holds the two digits already consumed.
func (p *parser) parseYearFirst(century int) error {
	yy, err := p.twoDigits("year", '9')
	if err != nil {
		return err
	}
	if err := p.setYear(century*100 + yy); err != nil {
		return err
	}

	if isDelimiter(p.peek()) {
		p.i++
	}
	month, err := p.twoDigits("month", '9')
	if err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return p.fail(ErrRange, "month", "month %d out of range", month)
	}
	p.dt.Month = month

	if isDelimiter(p.peek()) {
		p.i++
	}
	day, err := p.twoDigits("day", '9')
	if err != nil {
		return err
	}
	return p.setDay(day)
}

// parseDayFirst handles 09 Feb 1994, 08-Feb-94 and 03/Feb/1994.
func (p *parser) parseDayFirst(day int) error {
	if err := p.setDay(day); err != nil {
		return err
	}
	if err := p.delimiter("day"); err != nil {
		return err
	}
	if err := p.monthName(); err != nil {
		return err
	}
	if err := p.delimiter("month"); err != nil {
		return err
	}

	yy, err := p.twoDigits("year", '9')
	if err != nil {
		return err
	}
	if !isDigit(p.peek()) {
		// no century inference, 94 stays 94
		p.dt.Year = yy
		return nil
	}
	rest, err := p.twoDigits("year", '9')
	if err != nil {
		return err
	}
	return p.setYear(yy*100 + rest)
}

func (p *parser) setYear(year int) error {
	if year < 1900 {
		return p.fail(ErrRange, "year", "year %d before 1900", year)
	}
	p.dt.Year = year
	return nil
}

func (p *parser) setDay(day int) error {
	if day < 1 || day > 31 {
		return p.fail(ErrRange, "day", "day %d out of range", day)
	}
	p.dt.Day = day
	return nil
}

func (p *parser) delimiter(field string) error {
	if p.eof() {
		return p.fail(ErrStructural, field, "unexpected end of input")
	}
	if !isDelimiter(p.peek()) {
		return p.fail(ErrStructural, field, "expected delimiter, found %q", p.peek())
	}
	p.i++
	return nil
}

func (p *parser) monthName() error {
	if p.eof() {
		return p.fail(ErrStructural, "month", "unexpected end of input")
	}
	if len(p.datestr)-p.i >= 3 {
		name := p.datestr[p.i : p.i+3]
		for mi, m := range months {
			if m == name {
				p.dt.Month = mi + 1
				p.i += 3
				return nil
			}
		}
	}
	return p.fail(ErrUnknownToken, "month", "unknown month name")
}

func (p *parser) parseTime() error {
	h, err := p.twoDigits("hour", '2')
	if err != nil {
		return err
	}
	if h > 24 {
		return p.fail(ErrRange, "hour", "hour %d out of range", h)
	}
	p.dt.Hour = h

	if p.peek() == ':' {
		p.i++
	}
	if c := p.peek(); c >= '0' && c <= '5' {
		m, err := p.twoDigits("minute", '5')
		if err != nil {
			return err
		}
		p.dt.Minute = m
	}

	if p.peek() == ':' {
		p.i++
	}
	if c := p.peek(); c >= '0' && c <= '6' {
		s, err := p.twoDigits("second", '6')
		if err != nil {
			return err
		}
		if s > 61 {
			return p.fail(ErrRange, "second", "second %d out of range", s)
		}
		p.dt.Second = s
	}

	// fractional seconds are dropped
	if c := p.peek(); c == '.' || c == ',' {
		p.i++
		for isDigit(p.peek()) {
			p.i++
		}
	}
	for p.peek() == ' ' {
		p.i++
	}
	return nil
}

func (p *parser) parseZone() error {
	if p.eof() {
		return nil
	}
	sign := p.peek()
	if sign != '+' && sign != '-' {
		if bias, ok := zoneBias[p.datestr[p.i:]]; ok {
			p.dt.Second += bias
		}
		return nil
	}
	p.i++

	h, err := p.twoDigits("zone", '2')
	if err != nil {
		return err
	}
	if h > 24 {
		return p.fail(ErrRange, "zone", "offset hour %d out of range", h)
	}
	if p.peek() == ':' {
		p.i++
	}
	m, err := p.twoDigits("zone", '5')
	if err != nil {
		return err
	}

	// '+' subtracts and '-' adds; existing callers depend on it.
	bias := h*hour + m*60
	if sign == '+' {
		p.dt.Second -= bias
	} else {
		p.dt.Second += bias
	}
	return nil
}
