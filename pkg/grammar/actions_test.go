// actions_test.go - semantic action unit tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package grammar

import (
	"testing"

	"github.com/relay-tools/cfgarg/pkg/tokinfo"
)

func TestAddName(t *testing.T) {
	var ti tokinfo.Info
	addName(&ti, "--foo", 0, 2, 2, 5)
	if ti.ArgName != "foo" {
		t.Fatalf("ArgName = %q, want %q", ti.ArgName, "foo")
	}
}

func TestArgListAddName(t *testing.T) {
	var ti tokinfo.Info
	argListAddName(&ti, "-abc", 0, 1, 1, 4)
	if ti.ArgName != "abc" || !ti.IsArgList {
		t.Fatalf("got ArgName=%q IsArgList=%v, want ArgName=%q IsArgList=true", ti.ArgName, ti.IsArgList, "abc")
	}
}

func TestAddExtAndMergeExt(t *testing.T) {
	var ti tokinfo.Info
	ti.ArgName = "foo"
	addExt(&ti, "--foo-bar", 5, 6, 6, 9)
	if ti.ArgExt != "-bar" {
		t.Fatalf("ArgExt = %q, want %q", ti.ArgExt, "-bar")
	}
	mergeExt(&ti, "--foo-bar", 0, 0, 0, 0)
	if ti.ArgName != "foo-bar" {
		t.Fatalf("ArgName = %q, want %q", ti.ArgName, "foo-bar")
	}
}

func TestAssign(t *testing.T) {
	var ti tokinfo.Info
	assign(&ti, "--foo=bar", 5, 6, 6, 9)
	if ti.ArgVal != "bar" {
		t.Fatalf("ArgVal = %q, want %q", ti.ArgVal, "bar")
	}
}

func TestFreeVal(t *testing.T) {
	var ti tokinfo.Info
	freeVal(&ti, "positional", 0, 0, 0, 0)
	if !ti.IsFreeVal {
		t.Fatal("expected IsFreeVal to be set")
	}
}
