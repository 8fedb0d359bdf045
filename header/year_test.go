// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestUpdateYear(t *testing.T) {
	t.Parallel()

	const current = 2024

	cases := map[string]struct {
		in, want string
	}{
		"single old year": {
			in:   "Copyright (c) 2019 Name",
			want: "Copyright (c) 2019-2024 Name",
		},
		"range": {
			in:   "Copyright (c) 2019-2021 Name",
			want: "Copyright (c) 2019-2024 Name",
		},
		"spaced range": {
			in:   "Copyright (c) 2019 - 2021 Name",
			want: "Copyright (c) 2019 - 2024 Name",
		},
		"current year": {
			in:   "Copyright (c) 2024 Name",
			want: "Copyright (c) 2024 Name",
		},
		"future year": {
			in:   "Copyright (c) 2030 Name",
			want: "Copyright (c) 2030 Name",
		},
		"range up to date": {
			in:   "Copyright (c) 2019-2024 Name",
			want: "Copyright (c) 2019-2024 Name",
		},
		"year at end of line": {
			in:   "© 1999",
			want: "© 1999-2024",
		},
		"no year": {
			in:   "Permission is hereby granted, free of charge,",
			want: "Permission is hereby granted, free of charge,",
		},
		"two unrelated years": {
			in:   "Copyright 2010 Foo, 2015 Bar",
			want: "Copyright 2010 Foo, 2015 Bar",
		},
		"only first range is updated": {
			in:   "2001-2002, 2010-2011",
			want: "2001-2024, 2010-2011",
		},
		"not a year": {
			in:   "Version 12345 and 3000",
			want: "Version 12345 and 3000",
		},
		"empty": {
			in:   "",
			want: "",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, UpdateYear(tc.in, current), tc.want)
		})
	}
}

func TestUpdateYears(t *testing.T) {
	t.Parallel()

	in := "MIT License\n\nCopyright (c) 2019 Jane Doe\nCopyright (c) 2020-2021 John Doe\n"
	want := "MIT License\n\nCopyright (c) 2019-2024 Jane Doe\nCopyright (c) 2020-2024 John Doe\n"
	assert.Equal(t, UpdateYears(in, 2024), want)
	// Updating again changes nothing.
	assert.Equal(t, UpdateYears(want, 2024), want)
}
