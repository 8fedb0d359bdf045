// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
License-file puts the text of a license file at the top of files.

It is meant to run as a pre-commit hook:

	license-file [flags] FILES...

The license is read as is from a file (LICENSE by default) and every line is
commented with "#". Before that, copyright years are brought up to date
unless -update-year false is given: "2019-2021" and "2019 - 2021" end with
the current year, and a lone year older than the current one, like "2019",
becomes "2019-<current year>".

All leading lines of a file that are blank or start with "#" are treated as
an old license and replaced by the new one, followed by an empty line. Note
that this also removes a shebang line or any other comment at the top of the
file; pass -keep-shebang to keep a "#!" first line in place.

Processing stops at the first error. Files handled before it keep their new
header.

Defaults may be set in the license-header.yaml file of the .devtools.txtar
archive in the current directory (keys license_file, update_year and
markers).
*/
package main

import (
	_ "embed"

	"go.astrophena.name/hooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
