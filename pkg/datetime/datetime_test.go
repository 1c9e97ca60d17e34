package datetime

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestDatetime_String(t *testing.T) {
	dt := MustDatetime(2000, 1, 2, 3, 4, 5, 6, 7, 8, UTC)
	if got, want := dt.String(), "2000-01-02 3:04:05.006.007.008"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	seps := Separators{Date: '/', Between: 'T', Time: '.', Subsecond: ','}
	if got, want := dt.Format(seps), "2000/01/02T3.04.05,006,007,008"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if got, want := dt.Format(Separators{Between: '_'}), "2000-01-02_3:04:05.006.007.008"; got != want {
		t.Errorf("Format() with partial separators = %q, want %q", got, want)
	}
}

func TestNewDatetime_Errors(t *testing.T) {
	if _, err := NewDatetime(2023, 2, 29, 0, 0, 0, 0, 0, 0, UTC); !IsInvalidDate(err) {
		t.Errorf("NewDatetime(2023-02-29) error = %v, want InvalidDate", err)
	}
	if _, err := NewDatetime(2023, 2, 28, 24, 0, 0, 0, 0, 0, UTC); !IsInvalidTime(err) {
		t.Errorf("NewDatetime(24:00) error = %v, want InvalidTime", err)
	}
}

func TestDatetime_Carry(t *testing.T) {
	tests := []struct {
		name string
		in   Datetime
		o    Offset
		want Datetime
	}{
		{
			"hours cross day",
			MustDatetime(2022, 1, 1, 23, 0, 0, 0, 0, 0, UTC), Hours(2),
			MustDatetime(2022, 1, 2, 1, 0, 0, 0, 0, 0, UTC),
		},
		{
			"hours cross year backwards",
			MustDatetime(2023, 1, 1, 1, 0, 0, 0, 0, 0, UTC), Hours(-2),
			MustDatetime(2022, 12, 31, 23, 0, 0, 0, 0, 0, UTC),
		},
		{
			"nanosecond into leap day",
			MustDatetime(2024, 2, 28, 23, 59, 59, 999, 999, 999, UTC), Nanoseconds(1),
			MustDatetime(2024, 2, 29, 0, 0, 0, 0, 0, 0, UTC),
		},
		{
			"minutes over many days",
			MustDatetime(2022, 1, 1, 12, 0, 0, 0, 0, 0, UTC), Minutes(60 * 24 * 59),
			MustDatetime(2022, 3, 1, 12, 0, 0, 0, 0, 0, UTC),
		},
		{
			"days bypass time",
			MustDatetime(2022, 12, 31, 18, 30, 0, 0, 0, 0, EST), Days(1),
			MustDatetime(2023, 1, 1, 18, 30, 0, 0, 0, 0, EST),
		},
		{
			"seconds back over leap day",
			MustDatetime(2024, 3, 1, 0, 0, 10, 0, 0, 0, UTC), Seconds(-20),
			MustDatetime(2024, 2, 29, 23, 59, 50, 0, 0, 0, UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Add(tt.o); got != tt.want {
				t.Errorf("Add() = %v, want %v", got, tt.want)
			}
			if got := tt.want.Sub(tt.o); got != tt.in {
				t.Errorf("Sub() = %v, want %v", got, tt.in)
			}
		})
	}
}

func randomDatetime(r *rand.Rand) Datetime {
	zones := []Timezone{UTC, PST, CST, EST, FixedZone(9)}
	month := time.Month(r.Intn(12) + 1)
	year := r.Intn(4000) + 1
	return MustDatetime(year, month, r.Intn(DaysInMonth(year, month))+1,
		r.Intn(24), r.Intn(60), r.Intn(60), r.Intn(1000), r.Intn(1000), r.Intn(1000),
		zones[r.Intn(len(zones))])
}

func randomOffset(r *rand.Rand) Offset {
	n := r.Int63n(1<<40) - 1<<39
	return OffsetOf(Unit(r.Intn(int(Day)+1)), n)
}

func TestDatetime_NormalizationClosure(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		d := randomDatetime(r)
		u := randomOffset(r)
		if u.Unit() == Day {
			u = Days(u.Count() % 500000)
		}
		if got := d.Add(u).Sub(u); got != d {
			t.Fatalf("(%v + %d%v) - %d%v = %v", d, u.Count(), u.Unit(), u.Count(), u.Unit(), got)
		}
		if got := d.Sub(u).Add(u); got != d {
			t.Fatalf("(%v - %d%v) + %d%v = %v", d, u.Count(), u.Unit(), u.Count(), u.Unit(), got)
		}
	}
}

func TestDatetime_LargeOffsets(t *testing.T) {
	d := MustDatetime(2000, 1, 1, 0, 0, 0, 0, 0, 0, UTC)
	got := d.Add(Nanoseconds(1 << 62))
	back := got.Sub(Nanoseconds(1 << 62))
	if back != d {
		t.Errorf("round trip through 2^62 ns = %v, want %v", back, d)
	}
	if got.Year() != 2146 {
		t.Errorf("2000 + 2^62 ns lands in %d, want 2146", got.Year())
	}
}

func TestDatetime_ExtremeCounts(t *testing.T) {
	d := MustDatetime(2000, 3, 1, 13, 14, 15, 16, 17, 18, CST)
	for u := Nanosecond; u < Day; u++ {
		for _, n := range []int64{math.MinInt64, math.MaxInt64} {
			o := OffsetOf(u, n)
			if back := d.Add(o).Sub(o); back != d {
				t.Errorf("Add(%d%v).Sub = %v, want %v", n, u, back, d)
			}
			if back := d.Sub(o).Add(o); back != d {
				t.Errorf("Sub(%d%v).Add = %v, want %v", n, u, back, d)
			}
			if back := d.Time().Sub(o).Add(o); back != d.Time() {
				t.Errorf("Time.Sub(%d%v).Add = %v, want %v", n, u, back, d.Time())
			}
		}
	}
}

func TestDatetime_OrderingTotality(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	values := make([]Datetime, 60)
	for i := range values {
		values[i] = randomDatetime(r)
	}
	values = append(values,
		MustDatetime(2022, 1, 1, 12, 0, 0, 0, 0, 0, UTC),
		MustDatetime(2022, 1, 1, 7, 0, 0, 0, 0, 0, EST),
		MustDatetime(2021, 12, 31, 23, 0, 0, 0, 0, 0, PST),
	)

	for _, a := range values {
		for _, b := range values {
			lt, eq, gt := a.Before(b), a.Equal(b), a.After(b)
			n := 0
			for _, v := range []bool{lt, eq, gt} {
				if v {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("%v vs %v: before=%v equal=%v after=%v", a, b, lt, eq, gt)
			}
			if a.Compare(b) != -b.Compare(a) {
				t.Fatalf("Compare not antisymmetric for %v, %v", a, b)
			}
			for _, c := range values {
				if a.Before(b) && b.Before(c) && !a.Before(c) {
					t.Fatalf("ordering not transitive: %v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func TestDatetime_CompareAcrossZones(t *testing.T) {
	utc := MustDatetime(2022, 1, 1, 2, 0, 0, 0, 0, 0, UTC)
	pst := MustDatetime(2021, 12, 31, 18, 0, 0, 0, 0, 0, PST)
	if !utc.Equal(pst) {
		t.Errorf("%v UTC should equal %v PST", utc, pst)
	}
	if utc == pst {
		t.Error("== should distinguish zones")
	}
	if got := pst.In(UTC); got != utc {
		t.Errorf("In(UTC) = %v, want %v", got, utc)
	}
}

func TestDatetime_SubDatetime(t *testing.T) {
	a := MustDatetime(2022, 3, 1, 1, 0, 0, 0, 0, 0, UTC)
	b := MustDatetime(2022, 2, 27, 19, 30, 0, 0, 0, 0, EST)
	want := NewTimeDelta(Days(1), Minutes(30))
	if got := a.SubDatetime(b); got != want {
		t.Errorf("SubDatetime() = %v, want %v", got, want)
	}
	if got := Between(b, a); got != want.Neg() {
		t.Errorf("Between() = %v, want %v", got, want.Neg())
	}
	if got := b.AddDelta(want); !got.Equal(a) {
		t.Errorf("AddDelta() = %v, want %v", got, a)
	}
	if got := a.SubDelta(want); !got.Equal(b) {
		t.Errorf("SubDelta() = %v, want %v", got, b)
	}
}

func TestDatetime_AddTime(t *testing.T) {
	dt := MustDatetime(2022, 12, 31, 20, 0, 0, 0, 0, 0, UTC)
	if got, want := dt.AddTime(MustTime(5, 0, 0, 0, 0, 0, UTC)), MustDatetime(2023, 1, 1, 1, 0, 0, 0, 0, 0, UTC); got != want {
		t.Errorf("AddTime() = %v, want %v", got, want)
	}
	if got, want := dt.SubTime(MustTime(21, 0, 0, 0, 0, 0, UTC)), MustDatetime(2022, 12, 30, 23, 0, 0, 0, 0, 0, UTC); got != want {
		t.Errorf("SubTime() = %v, want %v", got, want)
	}
}

func TestDatetime_NextPrev(t *testing.T) {
	dt := MustDatetime(2022, 12, 31, 8, 0, 0, 0, 0, 0, UTC)
	if got, want := dt.Next(), MustDatetime(2023, 1, 1, 8, 0, 0, 0, 0, 0, UTC); got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
	if got := dt.Next().Prev(); got != dt {
		t.Errorf("Next().Prev() = %v, want %v", got, dt)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	zones := []Timezone{UTC, PST, CST, EST, FixedZone(13)}
	stamps := []int64{0, 1, -1, 86399999, 86400000, 1640995200000, -62135596800000, 253402300799999}
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		stamps = append(stamps, r.Int63n(1<<45)-1<<44)
	}

	for _, z := range zones {
		for _, ts := range stamps {
			if got := FromMs(ts, z, z).ToMs(z); got != ts {
				t.Fatalf("ToMs(FromMs(%d, %v, %v)) = %d", ts, z, z, got)
			}
		}
	}
}

func TestFromMs(t *testing.T) {
	tests := []struct {
		name string
		ts   int64
		to   Timezone
		from Timezone
		want Datetime
	}{
		{"unix epoch", 0, UTC, UTC, MustDatetime(1970, 1, 1, 0, 0, 0, 0, 0, 0, UTC)},
		{"before epoch", -1, UTC, UTC, MustDatetime(1969, 12, 31, 23, 59, 59, 999, 0, 0, UTC)},
		{"2022 in EST", 1640995200000, EST, UTC, MustDatetime(2021, 12, 31, 19, 0, 0, 0, 0, 0, EST)},
		{"wall clock in PST", 0, UTC, PST, MustDatetime(1970, 1, 1, 8, 0, 0, 0, 0, 0, UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMs(tt.ts, tt.to, tt.from); got != tt.want {
				t.Errorf("FromMs() = %v %v, want %v %v", got, got.Timezone(), tt.want, tt.want.Timezone())
			}
		})
	}
}

func TestDatetime_UnixMilliMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 500; i++ {
		dt := randomDatetime(r)
		if got, want := dt.UnixMilli(), dt.StdTime().UnixMilli(); got != want {
			t.Fatalf("%v %v UnixMilli() = %d, want %d", dt, dt.Timezone(), got, want)
		}
		if back := FromStdTime(dt.StdTime(), dt.Timezone()); back != dt {
			t.Fatalf("FromStdTime(StdTime()) = %v, want %v", back, dt)
		}
	}
}

func TestFromDate(t *testing.T) {
	d := MustDate(2022, 6, 1)
	dt := FromDate(d)
	if dt.Date() != d || !dt.Time().IsMidnight() {
		t.Errorf("FromDate() = %v, want midnight of %v", dt, d)
	}
	if got := Combine(d, MustTime(1, 2, 3, 0, 0, 0, CST)); got.Time() != MustTime(1, 2, 3, 0, 0, 0, CST) {
		t.Errorf("Combine().Time() = %v", got.Time())
	}
}

func TestShift(t *testing.T) {
	offsets := []Offset{Hours(2), Minutes(30), Days(-1)}

	dt := MustDatetime(2022, 12, 31, 23, 0, 0, 0, 0, 0, UTC)
	if got, want := Shift(dt, offsets...), MustDatetime(2022, 12, 31, 1, 30, 0, 0, 0, 0, UTC); got != want {
		t.Errorf("Shift(Datetime) = %v, want %v", got, want)
	}
	if got := Unshift(Shift(dt, offsets...), offsets...); got != dt {
		t.Errorf("Unshift(Shift(Datetime)) = %v, want %v", got, dt)
	}

	tm := MustTime(23, 0, 0, 0, 0, 0, UTC)
	if got, want := Shift(tm, offsets...), MustTime(1, 30, 0, 0, 0, 0, UTC); got != want {
		t.Errorf("Shift(Time) = %v, want %v", got, want)
	}
	if got := Unshift(Shift(tm, offsets...), offsets...); got != tm {
		t.Errorf("Unshift(Shift(Time)) = %v, want %v", got, tm)
	}
	if got := Shift(dt); got != dt {
		t.Errorf("Shift() without offsets = %v", got)
	}
}
