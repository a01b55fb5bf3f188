// derive.go - post-order derivation extraction and semantic-action dispatch.
// SPDX-License-Identifier: GPL-3.0-or-later

package cyk

import (
	"github.com/relay-tools/cfgarg/pkg/grammar"
	"github.com/relay-tools/cfgarg/pkg/tokinfo"
)

// Step is one fired production, in the post order the derivation tree
// must be walked for its semantic action (if any) to see consistent
// spans: children before parents, left child before right child.
type Step struct {
	Rule grammar.NonTerminal
	bp   backPointer
}

// visit is a stack frame: the non-terminal an entry was reached under,
// and the backPointer describing how it was derived.
type visit struct {
	rule grammar.NonTerminal
	bp   backPointer
}

// stack is a small slice-backed LIFO for the push-twice,
// pop-and-descend-or-emit walk [ExtractDerivation] performs; a FIFO
// front/back deque has no use for the "is this the second visit" peek
// this walk depends on.
type stack[T any] struct {
	values []T
}

func (s *stack[T]) empty() bool {
	return len(s.values) == 0
}

func (s *stack[T]) push(v T) {
	s.values = append(s.values, v)
}

func (s *stack[T]) pop() T {
	last := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return last
}

func (s *stack[T]) peek() (T, bool) {
	if s.empty() {
		var zero T
		return zero, false
	}
	return s.values[len(s.values)-1], true
}

// ExtractDerivation walks the back-pointer tree rooted at the variant-th
// proof that [grammar.Start] spans the whole chart, and returns the
// sequence of productions that fired, in post order.
//
// variant selects among possibly several ways [grammar.Start] derives
// the token; recognizers that only need one consistent [tokinfo.Info]
// should pass 0.
func (c *Chart) ExtractDerivation(variant int) []Step {
	roots := c.back[c.n-1][0][grammar.Start]
	if variant < 0 || variant >= len(roots) {
		return nil
	}

	currentRule := grammar.Start
	entry := roots[variant]

	var frames stack[visit]
	var serialized []Step

	for {
		for !entry.isLeaf() {
			frames.push(visit{currentRule, entry})
			frames.push(visit{currentRule, entry})

			l := entry.LHS
			children := c.back[l.Row][l.Col][l.Identifier]
			if len(children) == 0 {
				break
			}
			currentRule = l.Identifier
			entry = children[0]
		}

		if frames.empty() {
			return serialized
		}

		top := frames.pop()
		currentRule, entry = top.rule, top.bp

		if next, ok := frames.peek(); ok && next.bp == entry {
			r := entry.RHS
			children := c.back[r.Row][r.Col][r.Identifier]
			if len(children) > 0 {
				currentRule = r.Identifier
				entry = children[0]
			}
		} else {
			serialized = append(serialized, Step{Rule: currentRule, bp: entry})
			entry = backPointer{}
		}
	}
}

// Dispatch runs the semantic action of every step, in order, against
// token, accumulating results into ti.
func Dispatch(g *grammar.Grammar, token string, steps []Step, ti *tokinfo.Info) {
	for _, step := range steps {
		variants := g.Variants(step.Rule)
		if step.bp.Variant < 0 || step.bp.Variant >= len(variants) {
			continue
		}
		action := variants[step.bp.Variant].Action
		if action == nil {
			continue
		}
		action(ti, token, step.bp.LHS.Begin, step.bp.LHS.End, step.bp.RHS.Begin, step.bp.RHS.End)
	}
}
