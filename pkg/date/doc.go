// Package date implements ECMAScript date and time arithmetic for the Perch
// engine: the mapping between the scalar millisecond timeline and broken-down
// calendar components, string parsing and formatting, and the value-coercion
// glue behind the Date object.
//
// # Timeline
//
// An instant is a float64 count of milliseconds from the Unix epoch, the
// ECMA-262 time value. NaN is the invalid instant; it propagates through
// every arithmetic operation, and string conversions of an invalid instant
// fail with ErrInvalidDate. ECMA-262 bounds time values at ±8.64e15 ms
// (±100,000,000 days around the epoch); this package does not clip
// instants to that range.
//
// # Host services
//
// Everything environment-dependent is carried by Env: the wall clock, the
// timezone (standard offset, DST probe, name), an optional host date parser,
// and the locale format templates. NewEnv wires the Go runtime's clock and
// local zone; tests substitute FixedZone and a fake clock. Locale-sensitive
// formatting renders strftime templates directly instead of mutating the
// process locale, so concurrent formatting needs no serialization.
package date
