package locale

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestWeekdayIndex(t *testing.T) {
	// 2024-01-01 was a Monday.
	monday := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.Local)
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		if got := WeekdayIndex(day); got != offset {
			t.Errorf("WeekdayIndex(%s) = %d, want %d", day.Weekday(), got, offset)
		}
	}
}

func TestFormatEnglish(t *testing.T) {
	now := time.Date(2024, time.March, 9, 7, 5, 3, 0, time.Local)
	english := Default()

	if got := english.FormatTime(now); got != "07:05:03" {
		t.Errorf("FormatTime = %q, want %q", got, "07:05:03")
	}
	if got := english.FormatDate(now); got != "2024-03-09 Saturday" {
		t.Errorf("FormatDate = %q, want %q", got, "2024-03-09 Saturday")
	}
}

func TestFormatChinese(t *testing.T) {
	now := time.Date(2024, time.March, 10, 23, 59, 59, 0, time.Local)
	chinese := Match("zh_CN.UTF-8")

	if got := chinese.FormatTime(now); got != "23:59:59" {
		t.Errorf("FormatTime = %q", got)
	}
	if got := chinese.FormatDate(now); got != "2024年03月10日 周日" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		want      language.Tag
	}{
		{"empty", nil, language.English},
		{"posix c", []string{"C"}, language.English},
		{"english", []string{"en_US.UTF-8"}, language.English},
		{"bcp47 chinese", []string{"zh-Hans"}, language.SimplifiedChinese},
		{"posix chinese", []string{"zh_CN.UTF-8"}, language.SimplifiedChinese},
		{"first usable wins", []string{"", "zh-CN", "en"}, language.SimplifiedChinese},
		{"garbage", []string{"!!"}, language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.requested...).Tag; got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.requested, got, tt.want)
			}
		})
	}
}

func TestUsable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"zh_CN.UTF-8", true},
		{"en", true},
		{"C", false},
		{"C.UTF-8", false},
		{"POSIX", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Usable(tt.name); got != tt.want {
			t.Errorf("Usable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
