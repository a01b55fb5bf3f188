// actions.go - semantic actions attached to grammar variants.
// SPDX-License-Identifier: GPL-3.0-or-later

package grammar

import "github.com/relay-tools/cfgarg/pkg/tokinfo"

// Action mutates ti in response to a variant firing during derivation
// extraction. token is the whole token under recognition; beginA/endA and
// beginB/endB are the absolute byte offsets, within token, spanned by the
// variant's left and right children respectively. Every variant is
// binary, so both spans are always present.
type Action func(ti *tokinfo.Info, token string, beginA, endA, beginB, endB int)

// addName appends the right child's span to ArgName. Used by productions
// that grow a long-form identifier one alnum run at a time.
func addName(ti *tokinfo.Info, token string, _, _, beginB, endB int) {
	ti.ArgName += token[beginB:endB]
}

// argListAddName records the right child's span as a bundled short-flag
// list (e.g. "abc" in "-abc").
func argListAddName(ti *tokinfo.Info, token string, _, _, beginB, endB int) {
	ti.ArgName = token[beginB:endB]
	ti.IsArgList = true
}

// addExt accumulates one hyphen-or-underscore extension piece (the
// separator plus the alnum run that follows it) into ArgExt.
func addExt(ti *tokinfo.Info, token string, beginA, endA, beginB, endB int) {
	ti.ArgExt += token[beginA:endA] + token[beginB:endB]
}

// mergeExt folds the accumulated ArgExt into ArgName once a long
// identifier's extensions have all been recognized.
func mergeExt(ti *tokinfo.Info, _ string, _, _, _, _ int) {
	ti.ArgName += ti.ArgExt
}

// assign records the right-hand side of an inline `name=value` split.
func assign(ti *tokinfo.Info, token string, _, _, beginB, endB int) {
	ti.ArgVal = token[beginB:endB]
}

// freeVal marks the token as a free/positional value.
func freeVal(ti *tokinfo.Info, _ string, _, _, _, _ int) {
	ti.IsFreeVal = true
}
