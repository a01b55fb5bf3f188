// shellsplit_test.go - SplitCommandLine tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitCommandLine(t *testing.T) {
	got, err := SplitCommandLine(`--name "hello world" -v`)
	if err != nil {
		t.Fatalf("SplitCommandLine: %v", err)
	}
	want := []string{"--name", "hello world", "-v"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestSplitCommandLine_UnbalancedQuotesError(t *testing.T) {
	if _, err := SplitCommandLine(`--name "unterminated`); err == nil {
		t.Fatal("expected an error for unterminated quoting")
	}
}
