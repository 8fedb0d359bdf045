// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
License-header inserts or refreshes a license header at the top of files.

It is meant to run as a pre-commit hook:

	license-header [flags] FILES...

The header is read from a template (LICENSE by default) that may contain the
following placeholders:

  - {{current-year}}: the current year.
  - {{start-year}}: the value of -start-year.
  - {{author-name}}: the value of -author-name, all words joined with spaces.
  - {{author-email}}: the value of -author-email.

Using a placeholder without providing its value is an error. With -git,
missing values are taken from the Git repository: the year of the oldest
commit, user.name and user.email.

Every line of the header is commented with "#" and the block is surrounded by
these lines:

	# ================================== LICENSE ===================================
	# ================================ END LICENSE =================================

If a file already has both lines, only the text between them is replaced.
If it has neither, the block is added at the top. A file with only one of
them is reported as an error. Running the hook again with the same inputs
does not change anything.

Processing stops at the first error. Files handled before it keep their new
header.

Defaults may be set in the license-header.yaml file of the .devtools.txtar
archive in the current directory:

	-- license-header.yaml --
	template: LICENSE.tmpl
	start_year: 2020
	author_name: [Jane, Doe]
	author_email: jane@example.com
	markers:
	  .go: "//"

The markers setting selects other comment markers by file extension.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/hooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
