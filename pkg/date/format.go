package date

import (
	"errors"
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// ErrInvalidDate is returned by string conversions of the invalid instant.
var ErrInvalidDate = errors.New("date: invalid date")

// ISOString formats t as YYYY-MM-DDTHH:MM:SS.sssZ. Years outside [0, 9999]
// widen to a signed six-digit field.
func ISOString(t float64) (string, error) {
	if !IsValid(t) {
		return "", ErrInvalidDate
	}
	tp := Gmtime(t)
	if tp.Year > 9999 || tp.Year < 0 {
		sign, y := byte('+'), tp.Year
		if y < 0 {
			sign, y = '-', -y
		}
		return fmt.Sprintf("%c%06d-%02d-%02dT%02d:%02d:%02d.%03dZ",
			sign, y, tp.Month+1, tp.Day, tp.Hour, tp.Min, tp.Sec, tp.Msec), nil
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
		tp.Year, tp.Month+1, tp.Day, tp.Hour, tp.Min, tp.Sec, tp.Msec), nil
}

// formatDateParts renders "Www Mmm DD YYYY" with the same wide-year
// handling as ISOString.
func formatDateParts(tp TimeParts) string {
	if tp.Year > 9999 || tp.Year < 0 {
		sign, y := byte('+'), tp.Year
		if y < 0 {
			sign, y = '-', -y
		}
		return fmt.Sprintf("%s %s %02d %c%06d",
			weekdayNames[tp.Weekday], monthNames[tp.Month], tp.Day, sign, y)
	}
	return fmt.Sprintf("%s %s %02d %04d",
		weekdayNames[tp.Weekday], monthNames[tp.Month], tp.Day, tp.Year)
}

// formatTimeParts renders "HH:MM:SS GMT", with the zone suffix when
// requested and the offset is nonzero.
func (e *Env) formatTimeParts(tp TimeParts, addTZ bool) string {
	s := fmt.Sprintf("%02d:%02d:%02d GMT", tp.Hour, tp.Min, tp.Sec)
	if addTZ {
		if west := e.TimezoneOffset(); west != 0 {
			sign, w := byte('+'), west
			if west > 0 {
				sign, w = '-', west
			} else {
				w = -west
			}
			s += fmt.Sprintf("%c%02d00 (%s)", sign, w/60, e.Zone.Name())
		}
	}
	return s
}

// String formats t in local time: "Www Mmm DD YYYY HH:MM:SS GMT±HHMM".
func (e *Env) String(t float64) (string, error) {
	if !IsValid(t) {
		return "", ErrInvalidDate
	}
	tp := e.Localtime(t)
	return formatDateParts(tp) + " " + e.formatTimeParts(tp, true), nil
}

// UTCString formats t in UTC, without a zone suffix.
func (e *Env) UTCString(t float64) (string, error) {
	if !IsValid(t) {
		return "", ErrInvalidDate
	}
	tp := Gmtime(t)
	return formatDateParts(tp) + " " + e.formatTimeParts(tp, false), nil
}

// DateString formats the date half of String.
func (e *Env) DateString(t float64) (string, error) {
	if !IsValid(t) {
		return "", ErrInvalidDate
	}
	return formatDateParts(e.Localtime(t)), nil
}

// TimeString formats the time half of String.
func (e *Env) TimeString(t float64) (string, error) {
	if !IsValid(t) {
		return "", ErrInvalidDate
	}
	return e.formatTimeParts(e.Localtime(t), true), nil
}

// localeRender runs one of the Env's strftime templates over the local
// broken-down time. The template engine is locale-independent; locale
// awareness lives in the templates themselves.
func (e *Env) localeRender(template string, t float64) (string, error) {
	if !IsValid(t) {
		return "", ErrInvalidDate
	}
	tp := Gmtime(e.LocalTime(t))
	gt := time.Date(tp.Year, time.Month(tp.Month+1), tp.Day,
		tp.Hour, tp.Min, tp.Sec, tp.Msec*int(time.Millisecond), time.UTC)
	return strftime.Format(template, gt), nil
}

// LocaleString formats t with the Env's full date-time locale template.
func (e *Env) LocaleString(t float64) (string, error) {
	return e.localeRender(e.LocaleFull, t)
}

// LocaleDateString formats t with the Env's date locale template.
func (e *Env) LocaleDateString(t float64) (string, error) {
	return e.localeRender(e.LocaleDate, t)
}

// LocaleTimeString formats t with the Env's time locale template.
func (e *Env) LocaleTimeString(t float64) (string, error) {
	return e.localeRender(e.LocaleTime, t)
}
