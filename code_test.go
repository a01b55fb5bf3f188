// code_test.go - Code/Error behavior tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

import (
	"errors"
	"testing"

	"github.com/relay-tools/cfgarg/pkg/registry"
)

func TestCode_String(t *testing.T) {
	if got, want := Success.String(), "Success"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := Code(9999).String(); got != "Code(9999)" {
		t.Fatalf("String() of unknown code = %q", got)
	}
}

func TestError_UnwrapAndAs(t *testing.T) {
	inner := registry.ErrEmptyLongForm{}
	err := &Error{Code: EmptyStringParameter, Err: inner}

	var target registry.ErrEmptyLongForm
	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to find the wrapped registry error")
	}
}

func TestError_ErrorStringWithoutWrappedErr(t *testing.T) {
	err := &Error{Code: OptionRequiresValue}
	if got, want := err.Error(), "cfgarg: OptionRequiresValue"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
