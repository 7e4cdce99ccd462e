package date

import (
	"math"
	"strconv"
	"strings"
)

// Value-coercion glue behind the Date object. Host values reach this
// package as opaque `any`s; PrimitiveValuer is the only structure the
// coercion ladder needs from the host object model.

// PrimitiveValuer is implemented by host objects that can reveal the
// primitive value a Date argument coerces through.
type PrimitiveValuer interface {
	PrimitiveValue() any
}

// ToInstant coerces a host value to an instant: numbers truncate toward
// zero with infinities invalid, booleans become 0 or 1, strings must be a
// whole base-10 integer, and objects recurse on their primitive value.
// Everything else is invalid.
func ToInstant(v any) float64 {
	switch x := v.(type) {
	case float64:
		if math.IsInf(x, 0) {
			return Invalid()
		}
		return math.Trunc(x)
	case float32:
		return ToInstant(float64(x))
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		n, err := strconv.ParseInt(strings.TrimLeft(x, " \t"), 10, 64)
		if err != nil {
			return Invalid()
		}
		return float64(n)
	case PrimitiveValuer:
		return ToInstant(x.PrimitiveValue())
	default:
		return Invalid()
	}
}

// Field positions of the parts array used by the constructor, Date.UTC and
// the partial setters.
const (
	fieldYear = iota
	fieldMonth
	fieldDate
	fieldHours
	fieldMinutes
	fieldSeconds
	fieldMsec
	numFields
)

// partsFields maps a parts array over a TimeParts in field order.
func partsFields(tp *TimeParts) [numFields]*int {
	return [numFields]*int{
		&tp.Year, &tp.Month, &tp.Day, &tp.Hour, &tp.Min, &tp.Sec, &tp.Msec,
	}
}

// changePartOfTime rebuilds an instant from current, overriding the fields
// of parts that are valid. A nil breakdown starts from zeroed fields.
func changePartOfTime(current float64, parts [numFields]float64,
	breakdown func(float64) TimeParts, rebuild func(TimeParts) float64) float64 {

	var tp TimeParts
	if breakdown != nil {
		tp = breakdown(current)
	}
	for i, p := range partsFields(&tp) {
		if IsValid(parts[i]) {
			*p = int(parts[i])
		}
	}
	return rebuild(tp)
}

// invalidParts returns a parts array with every field unset.
func invalidParts() [numFields]float64 {
	var a [numFields]float64
	for i := range a {
		a[i] = Invalid()
	}
	return a
}

// buildParts coerces args into a parts array starting at startPos. The
// second result is false as soon as one argument refuses to coerce.
func buildParts(startPos int, args []any) ([numFields]float64, bool) {
	a := invalidParts()
	for i := 0; i < len(args) && i+startPos < numFields; i++ {
		v := ToInstant(args[i])
		if !IsValid(v) {
			return a, false
		}
		a[i+startPos] = v
	}
	return a, true
}

// Date is the engine's Date object: an Env binding plus one instant.
type Date struct {
	env  *Env
	time float64
}

// New constructs a Date the way the ECMAScript constructor does: no
// arguments is "now"; a single string argument parses; any other single
// argument coerces; two or more arguments are local-time
// (year, month, day, hours, minutes, seconds, ms) with 2-digit years
// lifted to 1900+y and the day defaulting to 1.
func New(env *Env, args ...any) *Date {
	d := &Date{env: env}
	switch {
	case len(args) == 0:
		d.time = env.Now()
	case len(args) == 1:
		if s, isStr := args[0].(string); isStr {
			d.time = env.Parse(s)
		} else {
			d.time = ToInstant(args[0])
		}
	default:
		d.time = partsToInstant(env, args, true)
	}
	return d
}

// partsToInstant builds an instant from constructor-style part arguments.
// The parts are read as local time when local is set, UTC otherwise.
func partsToInstant(env *Env, args []any, local bool) float64 {
	a, ok := buildParts(fieldYear, args)
	if !ok {
		return Invalid()
	}
	// Unsupplied trailing fields count from zero, except the day of
	// month, which counts from one.
	if !IsValid(a[fieldDate]) {
		a[fieldDate] = 1
	}
	for i := range a {
		if !IsValid(a[i]) {
			a[i] = 0
		}
	}
	if a[fieldYear] >= 0 && a[fieldYear] <= 99 {
		a[fieldYear] += 1900
	}
	t := changePartOfTime(0, a, nil, TimeFromParts)
	if local {
		t = env.UTC(t)
	}
	return t
}

// CallString is the constructor invoked as a plain function: it ignores
// any arguments and returns the current local time as a string.
func CallString(env *Env) string {
	s, _ := env.String(env.Now())
	return s
}

// Now returns the current instant. The static Date.now.
func Now(env *Env) float64 {
	return env.Now()
}

// Parse parses s. The static Date.parse.
func Parse(env *Env, s string) float64 {
	return env.Parse(s)
}

// UTC builds an instant from part arguments read as UTC. The static
// Date.UTC.
func UTC(env *Env, args ...any) float64 {
	if len(args) == 0 {
		return Invalid()
	}
	return partsToInstant(env, args, false)
}

// Time returns the instant. GetTime and valueOf.
func (d *Date) Time() float64 {
	return d.time
}

// SetTime replaces the instant with the coercion of v and returns it.
func (d *Date) SetTime(v any) float64 {
	d.time = ToInstant(v)
	return d.time
}

// TimezoneOffset returns the host zone's standard offset in minutes west.
func (d *Date) TimezoneOffset() int {
	return d.env.TimezoneOffset()
}

// part extracts one broken-down field, NaN for the invalid instant.
func (d *Date) part(local bool, sel func(TimeParts) int) float64 {
	if !IsValid(d.time) {
		return Invalid()
	}
	tp := Gmtime(d.time)
	if local {
		tp = d.env.Localtime(d.time)
	}
	return float64(sel(tp))
}

// Getters, in local and UTC flavors.

func (d *Date) FullYear() float64    { return d.part(true, func(tp TimeParts) int { return tp.Year }) }
func (d *Date) UTCFullYear() float64 { return d.part(false, func(tp TimeParts) int { return tp.Year }) }
func (d *Date) Month() float64       { return d.part(true, func(tp TimeParts) int { return tp.Month }) }
func (d *Date) UTCMonth() float64    { return d.part(false, func(tp TimeParts) int { return tp.Month }) }
func (d *Date) Day() float64         { return d.part(true, func(tp TimeParts) int { return tp.Day }) }
func (d *Date) UTCDay() float64      { return d.part(false, func(tp TimeParts) int { return tp.Day }) }
func (d *Date) Hours() float64       { return d.part(true, func(tp TimeParts) int { return tp.Hour }) }
func (d *Date) UTCHours() float64    { return d.part(false, func(tp TimeParts) int { return tp.Hour }) }
func (d *Date) Minutes() float64     { return d.part(true, func(tp TimeParts) int { return tp.Min }) }
func (d *Date) UTCMinutes() float64  { return d.part(false, func(tp TimeParts) int { return tp.Min }) }
func (d *Date) Seconds() float64     { return d.part(true, func(tp TimeParts) int { return tp.Sec }) }
func (d *Date) UTCSeconds() float64  { return d.part(false, func(tp TimeParts) int { return tp.Sec }) }
func (d *Date) Milliseconds() float64 {
	return d.part(true, func(tp TimeParts) int { return tp.Msec })
}
func (d *Date) UTCMilliseconds() float64 {
	return d.part(false, func(tp TimeParts) int { return tp.Msec })
}
func (d *Date) Weekday() float64    { return d.part(true, func(tp TimeParts) int { return tp.Weekday }) }
func (d *Date) UTCWeekday() float64 { return d.part(false, func(tp TimeParts) int { return tp.Weekday }) }

// setParts implements the partial setters: coerce the arguments into the
// fields from startPos on, patch them over the current breakdown, rebuild.
// Any coercion failure, or a currently invalid instant, leaves the Date
// invalid.
func (d *Date) setParts(startPos int, local bool, args []any) float64 {
	if len(args) == 0 || !IsValid(d.time) {
		d.time = Invalid()
		return d.time
	}
	a, ok := buildParts(startPos, args)
	if !ok {
		d.time = Invalid()
		return d.time
	}

	breakdown := Gmtime
	rebuild := TimeFromParts
	if local {
		breakdown = d.env.Localtime
		rebuild = func(tp TimeParts) float64 { return d.env.UTC(TimeFromParts(tp)) }
	}
	d.time = changePartOfTime(d.time, a, breakdown, rebuild)
	return d.time
}

// Setters, in local and UTC flavors. Each accepts the standard trailing
// arguments (setHours takes minutes, seconds and milliseconds, and so on).

func (d *Date) SetMilliseconds(args ...any) float64 {
	return d.setParts(fieldMsec, true, args)
}
func (d *Date) SetUTCMilliseconds(args ...any) float64 {
	return d.setParts(fieldMsec, false, args)
}
func (d *Date) SetSeconds(args ...any) float64    { return d.setParts(fieldSeconds, true, args) }
func (d *Date) SetUTCSeconds(args ...any) float64 { return d.setParts(fieldSeconds, false, args) }
func (d *Date) SetMinutes(args ...any) float64    { return d.setParts(fieldMinutes, true, args) }
func (d *Date) SetUTCMinutes(args ...any) float64 { return d.setParts(fieldMinutes, false, args) }
func (d *Date) SetHours(args ...any) float64      { return d.setParts(fieldHours, true, args) }
func (d *Date) SetUTCHours(args ...any) float64   { return d.setParts(fieldHours, false, args) }
func (d *Date) SetDate(args ...any) float64       { return d.setParts(fieldDate, true, args) }
func (d *Date) SetUTCDate(args ...any) float64    { return d.setParts(fieldDate, false, args) }
func (d *Date) SetMonth(args ...any) float64      { return d.setParts(fieldMonth, true, args) }
func (d *Date) SetUTCMonth(args ...any) float64   { return d.setParts(fieldMonth, false, args) }
func (d *Date) SetFullYear(args ...any) float64   { return d.setParts(fieldYear, true, args) }
func (d *Date) SetUTCFullYear(args ...any) float64 {
	return d.setParts(fieldYear, false, args)
}

// String conversions. Each demands a valid instant and reports
// ErrInvalidDate otherwise, the engine's TypeError.

func (d *Date) ISOString() (string, error)  { return ISOString(d.time) }
func (d *Date) JSON() (string, error)       { return ISOString(d.time) }
func (d *Date) String() (string, error)     { return d.env.String(d.time) }
func (d *Date) UTCString() (string, error)  { return d.env.UTCString(d.time) }
func (d *Date) DateString() (string, error) { return d.env.DateString(d.time) }
func (d *Date) TimeString() (string, error) { return d.env.TimeString(d.time) }
func (d *Date) LocaleString() (string, error) {
	return d.env.LocaleString(d.time)
}
func (d *Date) LocaleDateString() (string, error) {
	return d.env.LocaleDateString(d.time)
}
func (d *Date) LocaleTimeString() (string, error) {
	return d.env.LocaleTimeString(d.time)
}
