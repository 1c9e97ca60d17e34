package datetime

import (
	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

// IsInvalidDate reports whether err, or an error it wraps, has CodeInvalidDate.
func IsInvalidDate(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidDate)
}

// IsInvalidTime reports whether err, or an error it wraps, has CodeInvalidTime.
func IsInvalidTime(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidTime)
}

// IsParseError reports whether err, or an error it wraps, has CodeParseError.
func IsParseError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeParseError)
}

// IsInvalidTimezone reports whether err, or an error it wraps, has CodeInvalidTimezone.
func IsInvalidTimezone(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidTimezone)
}
