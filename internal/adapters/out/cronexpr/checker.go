// Package cronexpr implements the schedule checker with robfig/cron.
package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const rebootToken = "@reboot"

// Checker implements out.ScheduleChecker.
type Checker struct {
	parser cron.Parser
}

// NewChecker creates a checker for five field expressions and descriptors.
func NewChecker() *Checker {
	return &Checker{
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

// Check parses the expression and returns what robfig/cron rejects.
func (c *Checker) Check(expression string) error {
	_, _, err := c.parse(expression)
	return err
}

// Next returns the first activation after the given time.
func (c *Checker) Next(expression string, after time.Time) (time.Time, bool, error) {
	schedule, ok, err := c.parse(expression)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	next := schedule.Next(after)
	if next.IsZero() {
		return time.Time{}, false, nil
	}
	return next, true, nil
}

func (c *Checker) parse(expression string) (cron.Schedule, bool, error) {
	expression = strings.TrimSpace(expression)
	if expression == rebootToken {
		return nil, false, nil
	}
	schedule, err := c.parser.Parse(normalizeDayOfWeek(expression))
	if err != nil {
		return nil, false, fmt.Errorf("parse cron: %w", err)
	}
	return schedule, true, nil
}

var dayNumbers = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

// normalizeDayOfWeek maps Sunday written as 7 to 0, which is the only
// spelling robfig/cron accepts.
func normalizeDayOfWeek(expression string) string {
	fields := strings.Fields(expression)
	if len(fields) != 5 {
		return expression
	}
	var items []string
	for _, item := range strings.Split(fields[4], ",") {
		items = append(items, normalizeDayItem(item)...)
	}
	fields[4] = strings.Join(items, ",")
	return strings.Join(fields, " ")
}

// normalizeDayItem rewrites one list item. A range ending on 7 is cut to
// end on 6, and 0 is added when the range or its step reaches 7.
func normalizeDayItem(item string) []string {
	value, stepText, hasStep := strings.Cut(item, "/")
	if value == "7" {
		return []string{"0"}
	}
	start, end, isRange := strings.Cut(value, "-")
	if !isRange || end != "7" {
		return []string{item}
	}
	first, ok := dayNumber(start)
	if !ok || first > 7 {
		return []string{item}
	}
	step := 1
	if hasStep {
		n, err := strconv.Atoi(stepText)
		if err != nil || n <= 0 {
			return []string{item}
		}
		step = n
	}
	if first == 7 {
		return []string{"0"}
	}

	rewritten := start + "-6"
	if hasStep {
		rewritten += "/" + stepText
	}
	items := []string{rewritten}
	if first != 0 && (7-first)%step == 0 {
		items = append(items, "0")
	}
	return items
}

func dayNumber(s string) (int, bool) {
	if n, ok := dayNumbers[strings.ToLower(s)]; ok {
		return n, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
