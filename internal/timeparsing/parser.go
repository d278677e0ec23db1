// Package timeparsing turns a --date expression into a calendar day.
//
// Two layers are tried in order:
//  1. Absolute date (2006-01-02)
//  2. Natural language (yesterday, last friday, 3 days ago)
package timeparsing

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/starford/writedown/internal/apperr"
)

const dateLayout = "2006-01-02"

var parser = newParser()

func newParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseDate resolves expr relative to now. The result keeps now's location.
func ParseDate(expr string, now time.Time) (time.Time, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, fmt.Errorf("timeparsing: %w: empty date", apperr.ErrUsage)
	}

	if t, err := time.ParseInLocation(dateLayout, expr, now.Location()); err == nil {
		return t, nil
	}

	r, err := parser.Parse(expr, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeparsing: %w: %q: %v", apperr.ErrUsage, expr, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("timeparsing: %w: unrecognised date %q", apperr.ErrUsage, expr)
	}
	return r.Time, nil
}

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
