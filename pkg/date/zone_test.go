package date

import "testing"

// testEnv returns an Env pinned to a fixed clock and zone so tests are
// independent of the machine they run on.
func testEnv(offsetMinutesWest int, name string) *Env {
	e := NewEnv()
	e.NowFn = func() float64 { return 1424869974000 } // 2015-02-25T13:12:54Z
	e.Zone = FixedZone(offsetMinutesWest, name)
	return e
}

func TestLocalTimeFixedZone(t *testing.T) {
	e := testEnv(300, "EST") // UTC-5

	if got := e.LocalTZA(); got != -300*msPerMinute {
		t.Errorf("LocalTZA = %v, want %v", got, -300*msPerMinute)
	}
	if got := e.LocalTime(0); got != -5*msPerHour {
		t.Errorf("LocalTime(0) = %v, want %v", got, -5.0*msPerHour)
	}
	if got := e.UTC(-5 * msPerHour); got != 0 {
		t.Errorf("UTC(LocalTime(0)) = %v, want 0", got)
	}
}

func TestUTCInverse(t *testing.T) {
	e := testEnv(-330, "IST") // UTC+5:30
	instants := []float64{0, 1424869974000, -86400000123}
	for _, ti := range instants {
		if got := e.UTC(e.LocalTime(ti)); got != ti {
			t.Errorf("UTC(LocalTime(%v)) = %v", ti, got)
		}
	}
}

type dstZone struct {
	west int
}

func (z dstZone) OffsetMinutes() int   { return z.west }
func (z dstZone) InDST(t float64) bool { return t >= 0 } // DST from the epoch on
func (z dstZone) Name() string         { return "TST" }

func TestDaylightSaving(t *testing.T) {
	e := testEnv(0, "")
	e.Zone = dstZone{west: 300}

	if got := e.DaylightSavingTA(-1); got != 0 {
		t.Errorf("DST before epoch = %v, want 0", got)
	}
	if got := e.DaylightSavingTA(1); got != msPerHour {
		t.Errorf("DST after epoch = %v, want one hour", got)
	}
	// LocalTime applies both the standard offset and the DST hour.
	if got := e.LocalTime(msPerDay); got != msPerDay-5*msPerHour+msPerHour {
		t.Errorf("LocalTime(day 1) = %v", got)
	}
	// Away from the transition, UTC inverts LocalTime even with DST.
	ti := float64(30 * msPerDay)
	if got := e.UTC(e.LocalTime(ti)); got != ti {
		t.Errorf("UTC(LocalTime(%v)) = %v with DST", ti, got)
	}
}

func TestLocaltimeParts(t *testing.T) {
	e := testEnv(300, "EST")
	tp := e.Localtime(0) // 1969-12-31 19:00 local
	if tp.Year != 1969 || tp.Month != 11 || tp.Day != 31 || tp.Hour != 19 {
		t.Errorf("Localtime(0) = %+v, want 1969-12-31 19:00", tp)
	}
}

func TestTimezoneOffset(t *testing.T) {
	if got := testEnv(300, "EST").TimezoneOffset(); got != 300 {
		t.Errorf("TimezoneOffset = %d, want 300", got)
	}
}

func TestSystemZoneSane(t *testing.T) {
	z := SystemZone()
	if off := z.OffsetMinutes(); off < -14*60 || off > 14*60 {
		t.Errorf("OffsetMinutes = %d, outside +/-14h", off)
	}
	if z.InDST(Invalid()) {
		t.Error("InDST(NaN) = true")
	}
}
