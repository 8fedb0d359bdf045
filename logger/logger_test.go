// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/hooks/testutil"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func TestTerminalHandler(t *testing.T) {
	cases := map[string]struct {
		level    slog.Level
		wantLogs bool
	}{
		"info level": {level: slog.LevelInfo, wantLogs: true},
		"warn level": {level: slog.LevelWarn, wantLogs: false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			lv := new(slog.LevelVar)
			lv.Set(tc.level)
			l := New(lv)
			l.Attach(l.NewTerminalHandler(&buf, false))
			ctx := Put(context.Background(), l)

			Info(ctx, "added license header", slog.String("file", "main.py"))

			got := buf.String()
			if !tc.wantLogs {
				testutil.AssertEqual(t, got, "")
				return
			}
			for _, want := range []string{"INF", "added license header", "file=main.py"} {
				if !strings.Contains(got, want) {
					t.Errorf("log output %q must contain %q", got, want)
				}
			}
			if strings.Contains(got, "\x1b[") {
				t.Errorf("log output %q must not be colored", got)
			}
			testutil.AssertEqual(t, strings.Count(got, "\n"), 1)
		})
	}
}

func TestGetDefault(t *testing.T) {
	l := Get(context.Background())
	if l != defaultLogger {
		t.Fatal("Get must return the default logger for an empty context")
	}
	// Must not panic or print anything.
	Warn(context.Background(), "discarded")
}
