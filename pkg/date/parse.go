package date

import (
	"regexp"
	"strconv"
	"strings"
)

// String parsing tries a fixed ladder of strategies, first success wins:
// strict ISO-8601, the host's own parser if the Env carries one, the
// RFC-style form the formatter emits, and finally a permuted-separator
// fallback for bare numeric dates.

// noTZ marks "no timezone in the input"; the host zone applies.
const noTZ = 1<<31 - 1

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// monthByName resolves a month name by its first three characters,
// returning a one-based month or -1.
func monthByName(s string) int {
	for i, m := range monthNames {
		if strings.HasPrefix(s, m) {
			return i + 1
		}
	}
	return -1
}

var isoRe = regexp.MustCompile(
	`^\s*([+-]?\d+)-(\d{1,2})-(\d{1,2})T(\d{1,2}):(\d{1,2}):(\d{1,2})\.(\d{1,3})Z\s*$`)

// rfcRe matches the toString/toUTCString shape: weekday, month name, day,
// year, then optionally a time and a zone token with an optional offset.
var rfcRe = regexp.MustCompile(
	`^\s*[A-Za-z]{3}\s+([A-Za-z]{3})\s+(\d{1,2})\s+(-?\d+)` +
		`(?:\s+(\d{1,2}):(\d{1,2}):(\d{1,2})(?:\s+([A-Za-z]{3})([+-]?\d{1,4})?)?)?\s*$`)

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseISO(s string) (TimeParts, int, bool) {
	m := isoRe.FindStringSubmatch(s)
	if m == nil {
		return TimeParts{}, 0, false
	}
	tp := TimeParts{
		Year:  atoi(m[1]),
		Month: atoi(m[2]), // one-based until the driver shifts it
		Day:   atoi(m[3]),
		Hour:  atoi(m[4]),
		Min:   atoi(m[5]),
		Sec:   atoi(m[6]),
		Msec:  atoi(m[7]),
	}
	return tp, 0, true
}

func parseRFC(s string) (TimeParts, int, bool) {
	m := rfcRe.FindStringSubmatch(s)
	if m == nil {
		return TimeParts{}, 0, false
	}
	month := monthByName(m[1])
	if month < 0 {
		return TimeParts{}, 0, false
	}
	tp := TimeParts{
		Year:  atoi(m[3]),
		Month: month,
		Day:   atoi(m[2]),
	}
	tz := noTZ
	if m[4] != "" {
		tp.Hour, tp.Min, tp.Sec = atoi(m[4]), atoi(m[5]), atoi(m[6])
		switch {
		case m[8] != "":
			tz = atoi(m[8])
		case m[7] == "GMT":
			tz = 0
		}
	}
	return tp, tz, true
}

// scanInt reads an optionally signed decimal integer off the front of s.
func scanInt(s string) (int, string, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, s, false
	}
	return n, s[i:], true
}

// scanDate3 reads three sep-separated integers.
func scanDate3(s string, sep byte) (a, b, c int, rest string, ok bool) {
	if a, s, ok = scanInt(s); !ok {
		return
	}
	if len(s) == 0 || s[0] != sep {
		return 0, 0, 0, s, false
	}
	if b, s, ok = scanInt(s[1:]); !ok {
		return
	}
	if len(s) == 0 || s[0] != sep {
		return 0, 0, 0, s, false
	}
	if c, s, ok = scanInt(s[1:]); !ok {
		return
	}
	return a, b, c, s, true
}

// parseFallback accepts three separator/field-order permutations for the
// date, then best-effort time, seconds and zone. Like the engine it is
// imitating, it is lenient about unparseable trailing text.
func parseFallback(s string) (TimeParts, int, bool) {
	var tp TimeParts
	tz := noTZ

	var rest string
	var ok bool
	if tp.Month, tp.Day, tp.Year, rest, ok = scanDate3(s, '/'); !ok {
		if tp.Day, tp.Month, tp.Year, rest, ok = scanDate3(s, '.'); !ok {
			if tp.Year, tp.Month, tp.Day, rest, ok = scanDate3(s, '-'); !ok {
				return TimeParts{}, 0, false
			}
		}
	}

	// Time of day: "HH:MM", optionally ":SS".
	if h, r, ok := scanInt(rest); ok && len(r) > 0 && r[0] == ':' {
		m, r2, ok := scanInt(r[1:])
		if !ok {
			return TimeParts{}, 0, false
		}
		tp.Hour, tp.Min = h, m
		rest = r2
		if len(rest) > 0 && rest[0] == ':' {
			if sec, r3, ok := scanInt(rest[1:]); ok {
				tp.Sec = sec
				rest = r3
			}
		}
	}

	// Trailing zone: a three-letter token with an optional offset.
	rest = strings.TrimSpace(rest)
	if len(rest) >= 3 {
		token := rest[:3]
		if n, _, ok := scanInt(rest[3:]); ok {
			tz = n
		} else if token == "GMT" {
			tz = 0
		}
	}

	return tp, tz, true
}

// parseParts runs the strategy ladder. The month in the result is
// one-based; Parse shifts it.
func (e *Env) parseParts(s string) (TimeParts, int, bool) {
	if tp, tz, ok := parseISO(s); ok {
		return tp, tz, true
	}
	if e.ParseHook != nil {
		if tp, ok := e.ParseHook(s); ok {
			return tp, noTZ, true
		}
	}
	if tp, tz, ok := parseRFC(s); ok {
		return tp, tz, true
	}
	return parseFallback(s)
}

// Parse converts a date string to an instant, or to the invalid instant if
// no strategy accepts it. Inputs without a timezone are taken in the host
// zone's standard time.
func (e *Env) Parse(s string) float64 {
	if len(s) > 100 {
		// Too long for any valid date string.
		return Invalid()
	}

	tp, tz, ok := e.parseParts(s)
	if !ok {
		return Invalid()
	}

	tp.Month--
	valid := tp.Day >= 1 && tp.Day <= 31 &&
		tp.Month >= 0 && tp.Month <= 11 &&
		tp.Hour >= 0 && tp.Hour <= 23 &&
		tp.Min >= 0 && tp.Min <= 59 &&
		tp.Sec >= 0 && tp.Sec <= 59

	// A zone offset beyond 12 is an hhmm pair.
	if tz != noTZ && tz > 12 {
		tz /= 100
	}
	if tz != noTZ && (tz > 12 || tz < -12) {
		valid = false
	}
	if !valid {
		return Invalid()
	}

	t := TimeFromParts(tp)
	if tz == noTZ {
		t += float64(e.TimezoneOffset()) * msPerMinute
	} else {
		t -= float64(tz) * msPerHour
	}
	return t
}
