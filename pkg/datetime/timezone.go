package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// Timezone is a fixed offset from UTC in whole hours, counted as UTC's hour
// minus the zone's hour: zones west of Greenwich are positive, so EST is 5.
// The zero value is UTC.
type Timezone struct {
	offset int
}

// Registry zones.
var (
	UTC = Timezone{offset: 0}
	PST = Timezone{offset: 8}
	CST = Timezone{offset: 6}
	EST = Timezone{offset: 5}
)

// NamedZone pairs a registry name with its zone.
type NamedZone struct {
	Name string
	Zone Timezone
}

// registry is matched by exact name. Long names are what Windows hosts report
// for %Z, abbreviations are what Go reports from the zoneinfo database.
var registry = []NamedZone{
	{"UTC", UTC},
	{"Coordinated Universal Time", UTC},
	{"GMT", UTC},
	{"PST", PST},
	{"Pacific Standard Time", PST},
	{"CST", CST},
	{"Central Standard Time", CST},
	{"Central Daylight Time", CST},
	{"EST", EST},
	{"Eastern Standard Time", EST},
}

// FixedZone returns the zone whose UTCOffset is hours, i.e. hours behind UTC.
// FixedZone(z.UTCOffset()) == z.
func FixedZone(hours int) Timezone {
	return Timezone{offset: hours}
}

// UTCOffset returns UTC's hour minus z's hour.
func (z Timezone) UTCOffset() int {
	return z.offset
}

// OffsetDiff returns z's offset minus other's offset.
//
//	EST.OffsetDiff(CST) == -1
//	CST.OffsetDiff(EST) ==  1
func (z Timezone) OffsetDiff(other Timezone) int {
	return z.offset - other.offset
}

// Equal reports whether both zones have the same offset.
func (z Timezone) Equal(other Timezone) bool {
	return z.offset == other.offset
}

// Name returns the registry abbreviation for z, or the conventional UTC+h
// (east) / UTC-h (west) label.
func (z Timezone) Name() string {
	switch z {
	case UTC:
		return "UTC"
	case PST:
		return "PST"
	case CST:
		return "CST"
	case EST:
		return "EST"
	}
	if z.offset < 0 {
		return fmt.Sprintf("UTC+%d", -z.offset)
	}
	return fmt.Sprintf("UTC-%d", z.offset)
}

func (z Timezone) String() string {
	return z.Name()
}

// Location returns a fixed *time.Location with z's offset.
func (z Timezone) Location() *time.Location {
	if z == UTC {
		return time.UTC
	}
	return time.FixedZone(z.Name(), -z.offset*secondsPerHour)
}

// Lookup resolves a registry name. Unknown names fail with CodeInvalidTimezone.
func Lookup(name string) (Timezone, error) {
	for _, nz := range registry {
		if nz.Name == name {
			return nz.Zone, nil
		}
	}
	return Timezone{}, mdwerror.Newf("'%s' is not a valid timezone name", name).
		WithCode(mdwerror.CodeInvalidTimezone).
		WithOperation("datetime.Lookup").
		WithDetail("name", name)
}

// ParseTimezone accepts a registry name, a plain hour count in UTCOffset's
// convention ("5" is EST, "-9" is nine hours east) or the UTC+h / UTC-h label
// produced by Name, where UTC+3 is three hours east.
func ParseTimezone(s string) (Timezone, error) {
	s = strings.TrimSpace(s)
	if tz, err := Lookup(s); err == nil {
		return tz, nil
	}

	if label, ok := strings.CutPrefix(s, "UTC"); ok {
		if len(label) > 1 && (label[0] == '+' || label[0] == '-') {
			if east, err := strconv.Atoi(label); err == nil {
				return FixedZone(-east), nil
			}
		}
	} else if hours, err := strconv.Atoi(s); err == nil {
		return FixedZone(hours), nil
	}

	return Timezone{}, mdwerror.Newf("'%s' is neither a timezone name nor an hour offset", s).
		WithCode(mdwerror.CodeInvalidTimezone).
		WithOperation("datetime.ParseTimezone").
		WithDetail("input", s)
}

// Zones returns the registry in declaration order.
func Zones() []NamedZone {
	out := make([]NamedZone, len(registry))
	copy(out, registry)
	return out
}

var (
	localOnce sync.Once
	localZone Timezone
	localErr  error
)

// LocalTimezone resolves the host zone once per process by looking up the
// abbreviation the host reports for the current instant. Hosts on a
// daylight-saving abbreviation (PDT, EDT, ...) or any unlisted zone fail with
// CodeInvalidTimezone; the result, success or failure, is cached.
func LocalTimezone() (Timezone, error) {
	localOnce.Do(func() {
		name, _ := time.Now().Zone()
		localZone, localErr = Lookup(name)
	})
	return localZone, localErr
}

var defaultOffset atomic.Int64

// DefaultTimezone returns the zone used when none is supplied. It starts as UTC.
func DefaultTimezone() Timezone {
	return Timezone{offset: int(defaultOffset.Load())}
}

// SetDefaultTimezone replaces the process default zone.
func SetDefaultTimezone(tz Timezone) {
	defaultOffset.Store(int64(tz.offset))
}
