// Package reason renders the short "why today" sentence attached to a
// suggestion.
package reason

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

var placeholder = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Render replaces every {{name}} in template with the variable derived from
// isoDate. Only "date" and "years" are defined; anything else renders empty.
func Render(template, isoDate string, now time.Time) string {
	vars := Vars(isoDate, now)
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		name := strings.TrimSpace(m[2 : len(m)-2])
		return vars[name]
	})
}

// Vars computes the template variables for isoDate. The month name is always
// English. Years is the plain difference of calendar years and ignores
// month and day.
func Vars(isoDate string, now time.Time) map[string]string {
	vars := make(map[string]string, 2)
	if len(isoDate) < len(layoutISO) {
		return vars
	}
	d, err := time.Parse(layoutISO, isoDate[:len(layoutISO)])
	if err != nil {
		return vars
	}
	vars["date"] = fmt.Sprintf("%d of %s", d.Day(), d.Month())
	vars["years"] = strconv.Itoa(now.Year() - d.Year())
	return vars
}
