package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned when a duration cannot be parsed.
var ErrInvalidDuration = errors.New("invalid duration")

var dayDuration = regexp.MustCompile(`^(\d+d)?(\d+h)?(\d+m)?(\d+s)?$`)

// Duration is a time.Duration that reads and writes JSON as a string.
// Besides the time.ParseDuration syntax it accepts day segments ("1d12h")
// and bare JSON numbers, which are taken as nanoseconds.
type Duration time.Duration

// ParseDuration parses s using time.ParseDuration, falling back to the
// "1d2h3m4s" day syntax.
func ParseDuration(s string) (Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return Duration(d), nil
	}

	matches := dayDuration.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	var (
		duration time.Duration
		hasMatch bool
	)

	for _, match := range matches[1:] {
		if match == "" {
			continue
		}

		hasMatch = true

		unit := match[len(match)-1]
		num, err := strconv.Atoi(match[:len(match)-1])
		if err != nil {
			return 0, fmt.Errorf("%w: segment %q", ErrInvalidDuration, match)
		}

		switch unit {
		case 'd':
			duration += time.Duration(num) * 24 * time.Hour
		case 'h':
			duration += time.Duration(num) * time.Hour
		case 'm':
			duration += time.Duration(num) * time.Minute
		case 's':
			duration += time.Duration(num) * time.Second
		}
	}

	if !hasMatch {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	return Duration(duration), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Hms renders d, truncated to whole seconds, with SecondsToHms.
func (d Duration) Hms() string {
	return SecondsToHms(int(time.Duration(d) / time.Second))
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := ParseDuration(value)
		if err != nil {
			return err
		}

		*d = parsed
		return nil
	default:
		return ErrInvalidDuration
	}
}
