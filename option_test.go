// option_test.go - functional option and Mode tests.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg

import (
	"testing"

	"github.com/relay-tools/cfgarg/pkg/directmatch"
)

func TestMode_String(t *testing.T) {
	if got, want := Strict.String(), "Strict"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got, want := Lenient.String(), "Lenient"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestWithMode(t *testing.T) {
	p := NewParser(WithMode(Lenient))
	if p.mode != Lenient {
		t.Fatalf("mode = %v, want Lenient", p.mode)
	}
}

func TestWithRecognizer(t *testing.T) {
	engine := directmatch.NewEngine()
	p := NewParser(WithRecognizer(engine))
	if p.recognizer != engine {
		t.Fatal("expected the supplied recognizer to be installed")
	}
}

func TestWithLogger_NilSelectsNoop(t *testing.T) {
	p := NewParser(WithLogger(nil))
	if _, ok := p.logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger, got %T", p.logger)
	}
}
