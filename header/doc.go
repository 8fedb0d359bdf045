// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header manages a license header block at the top of text files.
//
// A header is built from a template with {{placeholder}} tokens (see
// [ParseTemplate]), commented line by line (see [Comment]) and applied to
// files by a [Manager] using one of two strategies:
//
//   - [Bounded] wraps the block in sentinel lines and, on later runs,
//     replaces only what lies between them.
//   - [Stripped] removes every leading blank or comment line and prepends the
//     block followed by an empty line.
//
// Both strategies are idempotent: applying the same header twice leaves the
// file as it was after the first application.
package header
