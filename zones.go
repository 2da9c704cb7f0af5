package httpdate

const hour = 3600

// zoneBias maps the zone names accepted at the end of a date string to
// the bias added into the second field.
var zoneBias = map[string]int{
	"GMT": 0,
	"UTC": 0,
	"Z":   0,

	"EST": -5 * hour,
	"EDT": -4 * hour,
	"CST": -6 * hour,
	"CDT": -5 * hour,
	"MST": -7 * hour,
	"MDT": -6 * hour,
	"PST": -8 * hour,
	"PDT": -7 * hour,

	// military zones, J is local time and has no entry
	"A": -1 * hour,
	"B": -2 * hour,
	"C": -3 * hour,
	"D": -4 * hour,
	"E": -5 * hour,
	"F": -6 * hour,
	"G": -7 * hour,
	"H": -8 * hour,
	"I": -9 * hour,
	"K": -10 * hour,
	"L": -11 * hour,
	"M": -12 * hour,
	"N": 1 * hour,
	"O": 2 * hour,
	"P": 3 * hour,
	"Q": 4 * hour,
	"R": 5 * hour,
	"S": 6 * hour,
	"T": 7 * hour,
	"U": 8 * hour,
	"V": 9 * hour,
	"W": 10 * hour,
	"X": 11 * hour,
	"Y": 12 * hour,
}

// ZoneBias returns the bias in seconds for a zone abbreviation. Matching
// is exact and case sensitive.
func ZoneBias(name string) (int, bool) {
	bias, ok := zoneBias[name]
	return bias, ok
}
