package domain

import (
	"regexp"
	"strings"
)

// FieldKind identifies a validated part of a crontab line.
type FieldKind string

const (
	FieldMinute     FieldKind = "minute"
	FieldHour       FieldKind = "hour"
	FieldDayOfMonth FieldKind = "dayOfMonth"
	FieldMonth      FieldKind = "month"
	FieldDayOfWeek  FieldKind = "dayOfWeek"
	FieldSpecial    FieldKind = "special"
	FieldCommand    FieldKind = "command"
	FieldVariable   FieldKind = "variable"
)

func (k FieldKind) String() string { return string(k) }

// Accepted values per schedule field. Names are matched case-insensitively.
const (
	minuteValue     = `[0-5]?[0-9]`
	hourValue       = `[01]?[0-9]|2[0-3]`
	dayOfMonthValue = `0?[1-9]|[12][0-9]|3[01]`
	monthValue      = `0?[1-9]|1[0-2]|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`
	dayOfWeekValue  = `[0-7]|sun|mon|tue|wed|thu|fri|sat`
)

var fieldRegex = map[FieldKind]*regexp.Regexp{
	FieldMinute:     listRegex(minuteValue),
	FieldHour:       listRegex(hourValue),
	FieldDayOfMonth: listRegex(dayOfMonthValue),
	FieldMonth:      listRegex(monthValue),
	FieldDayOfWeek:  listRegex(dayOfWeekValue),
}

// listRegex builds the grammar shared by every schedule field:
// `*`, `v`, `a-b`, each with an optional `/step`, joined by commas.
func listRegex(value string) *regexp.Regexp {
	v := `(?:` + value + `)`
	item := `(?:\*|` + v + `(?:-` + v + `)?)(?:/[0-9]+)?`
	return regexp.MustCompile(`(?i)^` + item + `(?:,` + item + `)*$`)
}

// SpecialTokens lists the shortcuts that replace the five schedule fields.
var SpecialTokens = []string{
	"@reboot",
	"@yearly",
	"@annually",
	"@monthly",
	"@weekly",
	"@daily",
	"@midnight",
	"@hourly",
}

// IsSpecialToken reports whether s is one of SpecialTokens. The match is exact.
func IsSpecialToken(s string) bool {
	for _, t := range SpecialTokens {
		if s == t {
			return true
		}
	}
	return false
}

// ValidateField reports whether value matches the grammar of kind.
func ValidateField(kind FieldKind, value string) bool {
	switch kind {
	case FieldCommand:
		return strings.TrimSpace(value) != ""
	case FieldSpecial:
		return IsSpecialToken(value)
	case FieldVariable:
		return value != "" && !strings.ContainsAny(value, " $")
	}

	re, ok := fieldRegex[kind]
	if !ok {
		return false
	}
	return re.MatchString(value)
}

// ScheduleFields is the ordered list of schedule field kinds.
var ScheduleFields = []FieldKind{
	FieldMinute,
	FieldHour,
	FieldDayOfMonth,
	FieldMonth,
	FieldDayOfWeek,
}
