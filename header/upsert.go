// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistentSentinels is returned when a file contains only one of the
// two sentinel lines, or the end sentinel precedes the start sentinel.
var ErrInconsistentSentinels = errors.New("license start and end are inconsistent")

// Strategy selects how a header block is applied to a file.
type Strategy int

const (
	// Bounded surrounds the block with sentinel lines and replaces whatever
	// lies between them on subsequent runs. Content outside the sentinels is
	// never touched.
	Bounded Strategy = iota
	// Stripped removes every leading line that is blank or starts with the
	// comment marker, then prepends the block and an empty line.
	//
	// Any comment at the top of a file is treated as an old header, so a
	// leading shebang or pragma is removed too unless KeepShebang is set.
	Stripped
)

func (s Strategy) String() string {
	switch s {
	case Bounded:
		return "bounded"
	case Stripped:
		return "stripped"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// upsertBounded returns content with block placed between the sentinel lines
// for marker, inserting the sentinels at the top when there are none.
func upsertBounded(content, block, marker string) (string, error) {
	start, end := StartSentinel(marker), EndSentinel(marker)
	lines := strings.SplitAfter(content, "\n")
	si, ei := indexLine(lines, start), indexLine(lines, end)

	switch {
	case si < 0 && ei < 0:
		return start + "\n" + block + end + "\n" + content, nil
	case si < 0:
		return "", fmt.Errorf("%w: found end line at line %d but no start line %q", ErrInconsistentSentinels, ei+1, start)
	case ei < 0:
		return "", fmt.Errorf("%w: found start line at line %d but no end line %q", ErrInconsistentSentinels, si+1, end)
	case ei < si:
		return "", fmt.Errorf("%w: end line %d precedes start line %d", ErrInconsistentSentinels, ei+1, si+1)
	}

	var sb strings.Builder
	sb.Grow(len(content) + len(block))
	for _, line := range lines[:si+1] {
		sb.WriteString(line)
	}
	sb.WriteString(block)
	for _, line := range lines[ei:] {
		sb.WriteString(line)
	}
	return sb.String(), nil
}

// indexLine returns the index of the first line equal to want, ignoring the
// line terminator, or -1.
func indexLine(lines []string, want string) int {
	for i, line := range lines {
		if !strings.HasSuffix(line, "\n") {
			// Sentinels always end with a newline.
			continue
		}
		if strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r") == want {
			return i
		}
	}
	return -1
}

// upsertStripped returns content with its leading comment and blank lines
// replaced by block and an empty line.
func upsertStripped(content, block, marker string, keepShebang bool) string {
	lines := strings.SplitAfter(content, "\n")

	var shebang string
	if keepShebang && strings.HasPrefix(lines[0], "#!") {
		shebang, lines = lines[0], lines[1:]
		if !strings.HasSuffix(shebang, "\n") {
			shebang += "\n"
		}
	}

	i := 0
	for i < len(lines) && isBlankOrComment(lines[i], marker) {
		i++
	}
	return shebang + block + "\n" + strings.Join(lines[i:], "")
}

func isBlankOrComment(line, marker string) bool {
	return strings.TrimSpace(line) == "" || strings.HasPrefix(line, marker)
}
