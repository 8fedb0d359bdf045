// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearRangeRe       = regexp.MustCompile(`\b([12]\d{3})-([12]\d{3})\b`)
	spacedYearRangeRe = regexp.MustCompile(`\b([12]\d{3}) - ([12]\d{3})\b`)
	yearRe            = regexp.MustCompile(`\b[12]\d{3}\b`)
)

// UpdateYear brings the copyright years in line up to date with current.
//
// The first matching rule applies:
//
//  1. "YYYY-YYYY": the second year becomes current.
//  2. "YYYY - YYYY": the same, keeping the spaces.
//  3. A single year older than current: it becomes "YYYY-current".
//
// Otherwise line is returned unchanged.
func UpdateYear(line string, current int) string {
	cur := strconv.Itoa(current)
	for _, re := range []*regexp.Regexp{yearRangeRe, spacedYearRangeRe} {
		if m := re.FindStringSubmatchIndex(line); m != nil {
			// m[4]:m[5] is the second year.
			return line[:m[4]] + cur + line[m[5]:]
		}
	}

	years := yearRe.FindAllStringIndex(line, -1)
	if len(years) != 1 {
		return line
	}
	start, end := years[0][0], years[0][1]
	year, err := strconv.Atoi(line[start:end])
	if err != nil || year >= current {
		return line
	}
	return line[:end] + "-" + cur + line[end:]
}

// UpdateYears applies [UpdateYear] to every line of text.
func UpdateYears(text string, current int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = UpdateYear(line, current)
	}
	return strings.Join(lines, "\n")
}
