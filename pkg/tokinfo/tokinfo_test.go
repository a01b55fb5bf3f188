// tokinfo_test.go - Info and Recognizer contract tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package tokinfo

import "testing"

func TestInfo_Reset(t *testing.T) {
	ti := Info{ArgName: "foo", ArgExt: "-bar", ArgVal: "1", IsArgList: true, IsFreeVal: true}
	ti.Reset()
	if ti != (Info{}) {
		t.Fatalf("Reset() left %+v, want the zero value", ti)
	}
}

// fakeRecognizer is the minimal implementation of [Recognizer] used to
// confirm the interface is satisfied by any type with the right method
// shape, independent of pkg/cyk and pkg/directmatch.
type fakeRecognizer struct{}

func (fakeRecognizer) Recognize(token string) (Info, error) {
	return Info{IsFreeVal: true}, nil
}

func TestRecognizer_InterfaceSatisfiedByMinimalImplementation(t *testing.T) {
	var r Recognizer = fakeRecognizer{}
	ti, err := r.Recognize("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ti.IsFreeVal {
		t.Fatal("expected IsFreeVal to be set")
	}
}
