// Package format holds small string and number formatting helpers.
//
// None of the helpers validate their input. Malformed input, such as a phone
// number with fewer than eleven digits, yields unspecified output rather
// than an error.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	phonePattern  = regexp.MustCompile(`(\d{3})\d{4}(\d{4})`)
	nonNumPattern = regexp.MustCompile(`[^\d.]`)
	twoDecimals   = regexp.MustCompile(`^(\d+)\.(\d\d).*$`)
)

// FormatPhone masks the middle four digits of the first eleven digit run in
// phone with asterisks, e.g. 13812345678 becomes 138****5678.
// Strings without such a run are returned unchanged.
func FormatPhone(phone string) string {
	loc := phonePattern.FindStringSubmatchIndex(phone)
	if loc == nil {
		return phone
	}

	var b strings.Builder
	b.Grow(len(phone))
	b.WriteString(phone[:loc[0]])
	b.WriteString(phone[loc[2]:loc[3]])
	b.WriteString("****")
	b.WriteString(phone[loc[4]:loc[5]])
	b.WriteString(phone[loc[1]:])

	return b.String()
}

// FormatToNum sanitizes v into a numeric string with at most two decimal
// places. Every character other than digits and dots is removed, a single
// leading dot is dropped, only the first dot is kept and any decimals past
// the second are truncated (not rounded).
//
// Floats are rendered without exponents before sanitizing.
func FormatToNum(v any) string {
	value := numString(v)

	value = nonNumPattern.ReplaceAllString(value, "")
	value = strings.TrimPrefix(value, ".")

	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		value = value[:idx+1] + strings.ReplaceAll(value[idx+1:], ".", "")
	}

	return twoDecimals.ReplaceAllString(value, "${1}.${2}")
}

func numString(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case fmt.Stringer:
		return n.String()
	default:
		return fmt.Sprint(v)
	}
}

// SecondToHour converts seconds to hours.
func SecondToHour(second float64) float64 {
	return second / 60 / 60
}

// SecondToMinute converts seconds to minutes.
func SecondToMinute(second float64) float64 {
	return second / 60
}

// SecondsToHms renders seconds as HH:MM:SS. Hours are not capped, so
// 360000 seconds renders as 100:00:00.
func SecondsToHms(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	return PadZero(h) + ":" + PadZero(m) + ":" + PadZero(s)
}

// PadZero prefixes numbers below 10 with a zero.
func PadZero(num int) string {
	if num < 10 {
		return "0" + strconv.Itoa(num)
	}

	return strconv.Itoa(num)
}
