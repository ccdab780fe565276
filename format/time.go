package format

import (
	"strconv"
	"strings"
	"time"
)

// DefaultLayout is used by FormatTime when no layout is given.
const DefaultLayout = "yyyy-MM-dd hh:mm:ss"

const (
	msPerMinute = int64(time.Minute / time.Millisecond)
	msPerHour   = int64(time.Hour / time.Millisecond)
	msPerDay    = 24 * msPerHour
)

// FormatPassTime describes how long ago start was, relative to now.
func FormatPassTime(start time.Time) string {
	return FormatPassTimeAt(start, time.Now())
}

// FormatPassTimeAt describes how long before now start was, using the
// largest non-zero bucket out of years, months (30 days), days, hours and
// minutes. Anything under a minute is "刚刚". Each bucket truncates toward
// zero, so a start time in the future produces negative counts.
func FormatPassTimeAt(start, now time.Time) string {
	elapsed := now.UnixMilli() - start.UnixMilli()

	day := elapsed / msPerDay
	hour := elapsed / msPerHour
	minute := elapsed / msPerMinute
	month := day / 30
	year := month / 12

	switch {
	case year != 0:
		return strconv.FormatInt(year, 10) + "年前"
	case month != 0:
		return strconv.FormatInt(month, 10) + "个月前"
	case day != 0:
		return strconv.FormatInt(day, 10) + "天前"
	case hour != 0:
		return strconv.FormatInt(hour, 10) + "小时前"
	case minute != 0:
		return strconv.FormatInt(minute, 10) + "分钟前"
	default:
		return "刚刚"
	}
}

type timeToken struct {
	letter byte
	value  func(t time.Time) int
}

// tokens are substituted in this order.
var timeTokens = []timeToken{
	{'y', func(t time.Time) int { return t.Year() }},
	{'M', func(t time.Time) int { return int(t.Month()) }},
	{'d', func(t time.Time) int { return t.Day() }},
	{'h', func(t time.Time) int { return t.Hour() }},
	{'m', func(t time.Time) int { return t.Minute() }},
	{'s', func(t time.Time) int { return t.Second() }},
}

// FormatTime renders t using a layout made of y+, M+, d+, h+, m+ and s+
// tokens (year, month, day, 24-hour clock hour, minute, second). Only the
// first run of each letter is substituted. A single-letter run prints the
// bare number; longer runs are zero padded to the run length but never
// truncated, so "yy" still prints four year digits. An empty layout means
// DefaultLayout. t is rendered in its own location.
func FormatTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}

	for _, tok := range timeTokens {
		start := strings.IndexByte(layout, tok.letter)
		if start < 0 {
			continue
		}

		end := start + 1
		for end < len(layout) && layout[end] == tok.letter {
			end++
		}

		value := strconv.Itoa(tok.value(t))
		if width := end - start; width > 1 {
			value = padStart(value, width)
		}

		layout = layout[:start] + value + layout[end:]
	}

	return layout
}

// FormatTimestamp renders a Unix millisecond timestamp in the local time
// zone with FormatTime.
func FormatTimestamp(ms int64, layout string) string {
	return FormatTime(time.UnixMilli(ms), layout)
}

func padStart(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat("0", width-len(s)) + s
}
