// Package locale renders clock strings for the supported display languages.
package locale

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale holds the strings and layouts for one display language.
type Locale struct {
	Tag        language.Tag
	Title      string
	Status     string
	DateLayout string
	// Weekdays is indexed Monday=0 … Sunday=6.
	Weekdays [7]string
}

const timeLayout = "15:04:05"

var (
	english = Locale{
		Tag:        language.English,
		Title:      "Smart Clock - double-click to toggle full screen",
		Status:     "Running...",
		DateLayout: "2006-01-02",
		Weekdays:   [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	}
	simplifiedChinese = Locale{
		Tag:        language.SimplifiedChinese,
		Title:      "Smart clock(双击全屏，再次双击取消全屏)",
		Status:     "运行中ing...",
		DateLayout: "2006年01月02日",
		Weekdays:   [7]string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"},
	}

	supported = []Locale{english, simplifiedChinese}
	matcher   = language.NewMatcher([]language.Tag{english.Tag, simplifiedChinese.Tag})
)

// Default returns the English locale.
func Default() Locale {
	return english
}

// Match picks the best supported locale for the requested names.
// Names may be BCP 47 tags ("zh-Hans") or POSIX locale names ("zh_CN.UTF-8").
// Empty and unparsable names are skipped; English is the fallback.
func Match(requested ...string) Locale {
	tags := make([]language.Tag, 0, len(requested))
	for _, name := range requested {
		tag, ok := parse(name)
		if ok {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return english
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return english
	}
	return supported[index]
}

// Usable reports whether name is a language tag or POSIX locale name that
// Match can consider. "C", "POSIX" and empty names are not.
func Usable(name string) bool {
	_, ok := parse(name)
	return ok
}

// FormatTime renders HH:MM:SS on a 24-hour clock.
func (locale Locale) FormatTime(now time.Time) string {
	return now.Format(timeLayout)
}

// FormatDate renders the date followed by the weekday name.
func (locale Locale) FormatDate(now time.Time) string {
	return now.Format(locale.DateLayout) + " " + locale.Weekdays[WeekdayIndex(now)]
}

// WeekdayIndex maps a time to Monday=0 … Sunday=6.
func WeekdayIndex(now time.Time) int {
	return (int(now.Weekday()) + 6) % 7
}

func parse(name string) (language.Tag, bool) {
	name = strings.TrimSpace(name)
	if index := strings.IndexAny(name, ".@"); index >= 0 {
		name = name[:index]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
