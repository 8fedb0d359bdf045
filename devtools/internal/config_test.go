// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package internal

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/hooks/testutil"
)

func TestLoadConfig(t *testing.T) {
	yes := true

	cases := map[string]struct {
		archive *txtar.Archive // nil means no file
		want    *Config
		wantErr bool
	}{
		"missing archive": {
			want: &Config{},
		},
		"no hook settings": {
			archive: &txtar.Archive{Files: []txtar.File{
				{Name: "pre-commit.json", Data: []byte(`[{"run": ["go", "test", "./..."]}]`)},
			}},
			want: &Config{},
		},
		"full": {
			archive: &txtar.Archive{Files: []txtar.File{
				{Name: "license-header.yaml", Data: []byte(`template: LICENSE.tmpl
license_file: LICENSE.txt
start_year: 2020
author_name: [Jane, Doe]
author_email: jane@example.com
update_year: true
markers:
  .go: "//"
  .sql: "--"
`)},
			}},
			want: &Config{
				Template:    "LICENSE.tmpl",
				LicenseFile: "LICENSE.txt",
				StartYear:   2020,
				AuthorName:  []string{"Jane", "Doe"},
				AuthorEmail: "jane@example.com",
				UpdateYear:  &yes,
				Markers:     map[string]string{".go": "//", ".sql": "--"},
			},
		},
		"invalid yaml": {
			archive: &txtar.Archive{Files: []txtar.File{
				{Name: "license-header.yaml", Data: []byte("start_year: [not, a, year]\n")},
			}},
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFile)
			if tc.archive != nil {
				if err := os.WriteFile(path, txtar.Format(tc.archive), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			got, err := LoadConfig(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig(): %v", err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestStartYearString(t *testing.T) {
	testutil.AssertEqual(t, (&Config{}).StartYearString(), "")
	testutil.AssertEqual(t, (&Config{StartYear: 2019}).StartYearString(), "2019")
}
