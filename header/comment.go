// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import "strings"

// DefaultMarker is the comment marker used when no other is configured.
const DefaultMarker = "#"

// bannerWidth is the width of a sentinel line without its marker and the
// following space. With "#" sentinel lines are 80 columns wide.
const bannerWidth = 78

// Comment prefixes every line of text with marker and a space. Empty lines
// become a bare marker. The result always ends with a newline.
func Comment(text, marker string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = marker
		} else {
			lines[i] = marker + " " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// StartSentinel returns the line, without newline, that opens a header block.
func StartSentinel(marker string) string { return marker + " " + banner("LICENSE") }

// EndSentinel returns the line, without newline, that closes a header block.
func EndSentinel(marker string) string { return marker + " " + banner("END LICENSE") }

// banner centers text, padded with a space on each side, in a run of "=".
// An odd remainder goes to the right.
func banner(text string) string {
	s := " " + text + " "
	pad := max(bannerWidth-len(s), 0)
	left := pad / 2
	return strings.Repeat("=", left) + s + strings.Repeat("=", pad-left)
}
