package format

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	ts := time.Date(2023, time.March, 7, 0, 4, 9, 0, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"default layout", "", "2023-03-07 00:04:09"},
		{"explicit default", DefaultLayout, "2023-03-07 00:04:09"},
		{"single letters are unpadded", "yyyy/M/d h:m:s", "2023/3/7 0:4:9"},
		{"short year is not truncated", "yy.MM", "2023.03"},
		{"wide padding", "ddd", "007"},
		{"only first run substituted", "d d", "7 d"},
		{"no tokens", "--:--", "--:--"},
		{"reversed order", "ss:mm", "09:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(ts, tt.layout); got != tt.want {
				t.Errorf("FormatTime(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	const ms = 1700152449834

	want := FormatTime(time.UnixMilli(ms), DefaultLayout)
	if got := FormatTimestamp(ms, ""); got != want {
		t.Errorf("FormatTimestamp() = %q, want %q", got, want)
	}
}

func TestFormatPassTimeAt(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  string
	}{
		{"years", now.Add(-400 * 24 * time.Hour), "1年前"},
		{"months", now.Add(-61 * 24 * time.Hour), "2个月前"},
		{"days", now.Add(-3 * 24 * time.Hour), "3天前"},
		{"hours", now.Add(-5 * time.Hour), "5小时前"},
		{"minutes", now.Add(-10 * time.Minute), "10分钟前"},
		{"just now", now.Add(-30 * time.Second), "刚刚"},
		{"same instant", now, "刚刚"},
		{"future start", now.Add(2 * time.Hour), "-2小时前"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPassTimeAt(tt.start, now); got != tt.want {
				t.Errorf("FormatPassTimeAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPassTime(t *testing.T) {
	if got := FormatPassTime(time.Now()); got != "刚刚" {
		t.Errorf("FormatPassTime(now) = %q, want 刚刚", got)
	}
}
