package datetime

import (
	"database/sql/driver"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// MarshalText renders the zone name.
func (z Timezone) MarshalText() ([]byte, error) {
	return []byte(z.Name()), nil
}

// UnmarshalText accepts anything ParseTimezone does.
func (z *Timezone) UnmarshalText(text []byte) error {
	tz, err := ParseTimezone(string(text))
	if err != nil {
		return err
	}
	*z = tz
	return nil
}

// MarshalYAML renders the zone name.
func (z Timezone) MarshalYAML() (interface{}, error) {
	return z.Name(), nil
}

// UnmarshalYAML accepts a scalar name or a bare integer hour offset.
func (z *Timezone) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return mdwerror.Newf("timezone must be a scalar, line %d", node.Line).
			WithCode(mdwerror.CodeInvalidTimezone).
			WithOperation("datetime.Timezone.UnmarshalYAML")
	}
	return z.UnmarshalText([]byte(node.Value))
}

// MarshalText renders YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses YYYY-MM-DD.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// splitZone separates a trailing zone name ("... EST", "... UTC+3") from
// the rest of s. Without one, the default zone is returned.
func splitZone(s string) (string, Timezone, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexByte(s, ' ')
	if i < 0 || i == len(s)-1 || !unicode.IsLetter(rune(s[i+1])) {
		return s, DefaultTimezone(), nil
	}
	tz, err := ParseTimezone(s[i+1:])
	if err != nil {
		return "", Timezone{}, err
	}
	return strings.TrimSpace(s[:i]), tz, nil
}

// MarshalText renders H:MM:SS.mmm.uuu.nnn followed by the zone name.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String() + " " + t.tz.Name()), nil
}

// UnmarshalText parses the MarshalText form. A missing zone means the
// default zone.
func (t *Time) UnmarshalText(text []byte) error {
	rest, tz, err := splitZone(string(text))
	if err != nil {
		return err
	}
	v, err := ParseTime(rest, tz)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText renders the String form followed by the zone name, e.g.
// "2000-01-02 3:04:05.006.007.008 UTC". JSON uses the same text.
func (dt Datetime) MarshalText() ([]byte, error) {
	return []byte(dt.String() + " " + dt.time.tz.Name()), nil
}

// UnmarshalText parses the MarshalText form. A missing zone means the
// default zone.
func (dt *Datetime) UnmarshalText(text []byte) error {
	rest, tz, err := splitZone(string(text))
	if err != nil {
		return err
	}
	v, err := ParseDatetime(rest, tz, nil)
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

// Value stores dt as Unix milliseconds. Sub-millisecond fields and the zone
// are not kept.
func (dt Datetime) Value() (driver.Value, error) {
	return dt.UnixMilli(), nil
}

// Scan reads Unix milliseconds (as UTC), MarshalText output or a time.Time.
// NULL leaves dt unchanged.
func (dt *Datetime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case int64:
		*dt = FromUnixMilli(v, UTC)
		return nil
	case time.Time:
		*dt = FromStdTime(v, UTC)
		return nil
	case string:
		return dt.UnmarshalText([]byte(v))
	case []byte:
		return dt.UnmarshalText(v)
	}
	return mdwerror.Newf("cannot scan %T into datetime.Datetime", src).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("datetime.Datetime.Scan")
}
