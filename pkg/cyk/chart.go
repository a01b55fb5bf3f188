// chart.go - the CYK parse chart for a single token.
// SPDX-License-Identifier: GPL-3.0-or-later

package cyk

import "github.com/relay-tools/cfgarg/pkg/grammar"

// ruleInfo locates one side of a variant inside the chart: which
// non-terminal derived it, the chart cell it sits in (Row, Col), and the
// absolute byte span within the token it covers.
type ruleInfo struct {
	Identifier  grammar.NonTerminal
	Row, Col    int
	Begin, End  int
}

// backPointer records one way a chart cell was derived: which variant of
// the cell's non-terminal fired, the split column, and where its two
// children live.
type backPointer struct {
	Variant    int
	SplitPoint int
	LHS, RHS   ruleInfo
}

func (bp backPointer) isLeaf() bool {
	return bp.LHS.Row == 0 && bp.RHS.End == 0
}

// Chart is the CYK recognition table for one token: chart[row][col][nt]
// is true when non-terminal nt derives the substring of length row+1
// starting at col, and back[row][col][nt] lists every variant that
// proves it.
//
// Rows run from 0 (single bytes) to len(token)-1 (the whole token). A
// Chart is single-use: build one per token with [NewChart] and call
// [Chart.Fill] once.
type Chart struct {
	g      *grammar.Grammar
	tm     *grammar.TerminalMapping
	n      int
	cells  [][][]bool
	back   [][][][]backPointer
}

// NewChart allocates a chart sized for a token of length n, using g for
// productions and tm to classify row-0 terminals.
func NewChart(g *grammar.Grammar, tm *grammar.TerminalMapping, n int) *Chart {
	c := &Chart{g: g, tm: tm, n: n}
	size := g.Size()

	c.cells = make([][][]bool, n)
	c.back = make([][][][]backPointer, n)
	for row := 0; row < n; row++ {
		c.cells[row] = make([][]bool, n)
		c.back[row] = make([][][]backPointer, n)
		for col := 0; col < n; col++ {
			c.cells[row][col] = make([]bool, size)
			c.back[row][col] = make([][]backPointer, size)
		}
	}
	return c
}

// Fill seeds row 0 from the terminal mapping and then runs the CYK chart
// fill for token, which must have length n (the value passed to
// [NewChart]). It returns [ErrTerminalNotValid] if some byte of token
// belongs to no terminal class, or [ErrStartSymbolNotDerived] if the
// chart fills without error but [grammar.Start] never spans the whole
// token.
func (c *Chart) Fill(token string) error {
	if err := c.seed(token); err != nil {
		return err
	}
	c.fill()
	if !c.cells[c.n-1][0][grammar.Start] {
		return ErrStartSymbolNotDerived{Token: token}
	}
	return nil
}

func (c *Chart) seed(token string) error {
	for i := 0; i < c.n; i++ {
		classes := c.tm.ClassesOf(token[i])
		if len(classes) == 0 {
			return ErrTerminalNotValid{Token: token, Offset: i}
		}
		for _, nt := range classes {
			c.back[0][i][nt] = append(c.back[0][i][nt], backPointer{
				Variant:    0,
				SplitPoint: i,
				LHS:        ruleInfo{Identifier: nt, Row: 0, Col: i, Begin: i, End: i + 1},
			})
			c.cells[0][i][nt] = true
		}
	}
	return nil
}

func (c *Chart) fill() {
	for row := 1; row < c.n; row++ {
		for col := 0; col < c.n-row; col++ {
			for split := 0; split < row; split++ {
				for nt := 0; nt < c.g.Size(); nt++ {
					variants := c.g.Variants(grammar.NonTerminal(nt))
					for vi, v := range variants {
						leftRow, leftCol := split, col
						rightRow, rightCol := row-split-1, col+split+1
						if !c.cells[leftRow][leftCol][v.B] || !c.cells[rightRow][rightCol][v.C] {
							continue
						}
						c.back[row][col][nt] = append(c.back[row][col][nt], backPointer{
							Variant:    vi,
							SplitPoint: split,
							LHS: ruleInfo{
								Identifier: v.B, Row: leftRow, Col: leftCol,
								Begin: col, End: col + split + 1,
							},
							RHS: ruleInfo{
								Identifier: v.C, Row: rightRow, Col: rightCol,
								Begin: col + split + 1, End: col + row + 1,
							},
						})
						c.cells[row][col][nt] = true
					}
				}
			}
		}
	}
}
