package date

import "testing"

func TestISOString(t *testing.T) {
	tests := []struct {
		t    float64
		want string
	}{
		{0, "1970-01-01T00:00:00.000Z"},
		{MakeDate(MakeDay(2015, 2, 5), MakeTime(10, 20, 30, 400)), "2015-03-05T10:20:30.400Z"},
		{TimeFromYear(10000), "+010000-01-01T00:00:00.000Z"},
		{TimeFromYear(-1), "-000001-01-01T00:00:00.000Z"},
		{TimeFromYear(275000), "+275000-01-01T00:00:00.000Z"},
	}
	for _, tt := range tests {
		got, err := ISOString(tt.t)
		if err != nil {
			t.Fatalf("ISOString(%v): %v", tt.t, err)
		}
		if got != tt.want {
			t.Errorf("ISOString(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestISOStringInvalid(t *testing.T) {
	if _, err := ISOString(Invalid()); err != ErrInvalidDate {
		t.Errorf("ISOString(invalid) err = %v, want ErrInvalidDate", err)
	}
}

func TestUTCString(t *testing.T) {
	e := testEnv(300, "EST")
	got, err := e.UTCString(0)
	if err != nil {
		t.Fatalf("UTCString: %v", err)
	}
	if got != "Thu Jan 01 1970 00:00:00 GMT" {
		t.Errorf("UTCString(0) = %q", got)
	}
}

func TestStringLocal(t *testing.T) {
	e := testEnv(300, "EST")
	got, err := e.String(0)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	// 19:00 the previous evening, five hours west of Greenwich.
	if got != "Wed Dec 31 1969 19:00:00 GMT-0500 (EST)" {
		t.Errorf("String(0) = %q", got)
	}
}

func TestStringZeroOffsetOmitsZone(t *testing.T) {
	e := testEnv(0, "UTC")
	got, err := e.String(0)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	if got != "Thu Jan 01 1970 00:00:00 GMT" {
		t.Errorf("String(0) = %q", got)
	}
}

func TestDateAndTimeStrings(t *testing.T) {
	e := testEnv(-330, "IST") // UTC+5:30
	ti := MakeDate(MakeDay(2015, 2, 5), MakeTime(10, 20, 30, 0))

	ds, err := e.DateString(ti)
	if err != nil {
		t.Fatalf("DateString: %v", err)
	}
	if ds != "Thu Mar 05 2015" {
		t.Errorf("DateString = %q", ds)
	}

	ts, err := e.TimeString(ti)
	if err != nil {
		t.Fatalf("TimeString: %v", err)
	}
	if ts != "15:50:30 GMT+0500 (IST)" {
		t.Errorf("TimeString = %q", ts)
	}
}

func TestLocaleStrings(t *testing.T) {
	e := testEnv(0, "UTC")
	ti := MakeDate(MakeDay(2015, 2, 5), MakeTime(10, 20, 30, 0))

	got, err := e.LocaleTimeString(ti)
	if err != nil {
		t.Fatalf("LocaleTimeString: %v", err)
	}
	if got != "10:20:30" {
		t.Errorf("LocaleTimeString = %q", got)
	}

	got, err = e.LocaleDateString(ti)
	if err != nil {
		t.Fatalf("LocaleDateString: %v", err)
	}
	if got != "03/05/15" {
		t.Errorf("LocaleDateString = %q", got)
	}

	// Template substitution: an embedder's locale decides the layout.
	e.LocaleDate = "%d.%m.%Y"
	got, err = e.LocaleDateString(ti)
	if err != nil {
		t.Fatalf("LocaleDateString: %v", err)
	}
	if got != "05.03.2015" {
		t.Errorf("LocaleDateString (custom) = %q", got)
	}
}

func TestFormattersRejectInvalid(t *testing.T) {
	e := testEnv(0, "UTC")
	if _, err := e.String(Invalid()); err != ErrInvalidDate {
		t.Errorf("String(invalid) err = %v", err)
	}
	if _, err := e.LocaleString(Invalid()); err != ErrInvalidDate {
		t.Errorf("LocaleString(invalid) err = %v", err)
	}
}
