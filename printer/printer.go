// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package printer

import (
	"strings"

	"github.com/crosslang/printengine/identity"
	"github.com/crosslang/printengine/ir"
	"github.com/crosslang/printengine/writer"
)

// Printer holds all state for one Print call: the writer it emits through,
// the cursor walking the normalized IR, the active newline-group depth, and
// the bookkeeping (resolved infos/conditions, pending save points) the
// backtracking scheme in SPEC_FULL.md §4.2 needs. A Printer is used once and
// discarded; Print constructs a fresh one per call.
type Printer struct {
	w    *writer.Writer
	opts Options

	cursor ir.Cursor

	newLineGroupDepth       int
	possibleNewLineSavePoint *savePoint

	// lookAheadSavePoints holds, for each Info or Condition identity not yet
	// resolved, the save point to restore to once it is — rewinding the
	// printer to re-enter the Condition whose resolver asked about it.
	lookAheadSavePoints map[identity.ID]*savePoint
	resolvedConditions  map[identity.ID]bool
	resolvedInfos       map[identity.ID]ir.WriterInfo
}

// Print walks root and returns the formatted text it prints. The only
// errors it returns are EngineError values describing a malformed IR tree or
// a misbehaving resolver (SPEC_FULL.md §7); a well-formed document never
// fails.
func Print(root *ir.Container, opts Options) (result string, err error) {
	p := newPrinter(root, opts)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if fp, ok := r.(*fatalPanic); ok {
			err = fp.err
			result = ""
			return
		}
		err = p.wrapPanic(r)
		result = ""
	}()

	p.run()
	return p.w.String(), nil
}

// PrintItems normalizes items and prints the result; a convenience for
// callers (tests, the demo host) that build IR as a flat slice rather than
// through Builder.
func PrintItems(items []ir.PrintItem, opts Options) (string, error) {
	return Print(ir.Normalize(items), opts)
}

func newPrinter(root *ir.Container, opts Options) *Printer {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 80
	}
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 2
	}

	w := writer.New(writer.Options{
		IndentWidth: opts.IndentWidth,
		UseTabs:     opts.UseTabs,
		NewLineKind: opts.NewLineKind,
		IsTesting:   opts.IsTesting,
	})

	p := &Printer{
		w:                   w,
		opts:                opts,
		cursor:              ir.NewCursor(root),
		lookAheadSavePoints: make(map[identity.ID]*savePoint),
		resolvedConditions:  make(map[identity.ID]bool),
		resolvedInfos:       make(map[identity.ID]ir.WriterInfo),
	}
	w.OnNewLine(func() { p.possibleNewLineSavePoint = nil })
	return p
}

// run is the main dispatch loop: visit the node the cursor sits at, let the
// handler for its kind decide how the cursor should move next, repeat until
// the root container is exhausted. Each handler is responsible for leaving
// the cursor correctly positioned for the next iteration — normally by
// calling Advance, but a handler that restores to an earlier save point
// leaves the cursor wherever that save point points instead.
func (p *Printer) run() {
	for {
		node, ok := p.cursor.Peek()
		if !ok {
			p.checkFinalBalance()
			return
		}
		switch node.Kind {
		case ir.NodeSignal:
			p.handleSignalNode(node.Signal)
		case ir.NodeString:
			p.handleString(node.Text)
		case ir.NodeRawString:
			p.handleRawString(node.Text)
		case ir.NodeInfo:
			p.handleInfo(node.Info)
		case ir.NodeCondition:
			p.handleCondition(node.Condition)
		default:
			p.fatalf("unrecognized node kind %d", node.Kind)
		}
	}
}

// checkFinalBalance enforces indent discipline (SPEC_FULL.md §8 property 3)
// across the whole document: a StartIndent, StartNewLineGroup or
// StartIgnoringIndent with no matching Finish by the time the IR is
// exhausted is a malformed tree, the mirror image of the underflow panics
// package writer already raises for a stray Finish.
func (p *Printer) checkFinalBalance() {
	if p.w.IndentationLevel() != 0 {
		p.fatalf("unbalanced StartIndent: %d level(s) never closed", p.w.IndentationLevel())
	}
	if p.newLineGroupDepth != 0 {
		p.fatalf("unbalanced StartNewLineGroup: %d group(s) never closed", p.newLineGroupDepth)
	}
	if p.w.IgnoreIndentDepth() != 0 {
		p.fatalf("unbalanced StartIgnoringIndent: %d level(s) never closed", p.w.IgnoreIndentDepth())
	}
}

// handleSignalNode dispatches the two signals that participate in save-point
// bookkeeping (SpaceOrNewLine, PossibleNewLine) to their own logic, and every
// other signal to applySignal followed by an ordinary Advance.
func (p *Printer) handleSignalNode(sig ir.Signal) {
	switch sig {
	case ir.SpaceOrNewLine:
		p.handleSpaceOrNewLine()
	case ir.PossibleNewLine:
		p.cursor.Advance()
		p.markPossibleNewLine()
	default:
		p.applySignal(sig)
		p.cursor.Advance()
	}
}

func (p *Printer) applySignal(sig ir.Signal) {
	switch sig {
	case ir.NewLine:
		p.w.NewLine()
	case ir.ExpectNewLine:
		p.w.MarkExpectNewLine()
	case ir.StartIndent:
		p.w.StartIndent()
	case ir.FinishIndent:
		p.w.FinishIndent()
	case ir.StartIgnoringIndent:
		p.w.StartIgnoringIndent()
	case ir.FinishIgnoringIndent:
		p.w.FinishIgnoringIndent()
	case ir.SingleIndent:
		p.w.SingleIndent()
	case ir.Tab:
		p.w.Tab()
	case ir.StartNewLineGroup:
		p.newLineGroupDepth++
	case ir.FinishNewLineGroup:
		if p.newLineGroupDepth == 0 {
			p.fatalf("FinishNewLineGroup with no matching StartNewLineGroup")
		}
		p.newLineGroupDepth--
	default:
		p.fatalf("unrecognized signal %s", sig)
	}
}

// handleSpaceOrNewLine implements the SpaceOrNewLine row of SPEC_FULL.md
// §4.2's signal table: break now (in place, or by restoring to an earlier
// candidate) if a space would overflow maxWidth; otherwise mark this
// position as a new candidate and emit the space.
func (p *Printer) handleSpaceOrNewLine() {
	info := p.w.Info()
	if info.ColumnNumber+1 > p.opts.MaxWidth {
		if p.forceBreak() {
			return // restored to an earlier save point; cursor already positioned
		}
		p.cursor.Advance()
		return
	}

	p.cursor.Advance()
	p.markPossibleNewLine()
	p.w.Space()
}

// forceBreak breaks the line, restoring to the outstanding possible-newline
// save point when it belongs to a newline group shallower than the one
// currently open — that candidate is the higher-priority break. With no save
// point, or one at the same or a deeper group depth, it breaks in place.
// It reports whether it restored, so the caller knows whether the cursor
// still needs to advance past the signal that triggered the break.
func (p *Printer) forceBreak() bool {
	sp := p.possibleNewLineSavePoint
	if sp == nil || sp.newLineGroupDepth >= p.newLineGroupDepth {
		p.w.NewLine()
		return false
	}
	p.restore(sp)
	p.w.NewLine()
	return true
}

// markPossibleNewLine installs a possible-newline save point at the
// cursor's current position, unless the outstanding one already belongs to a
// shallower newline group: a shallower group breaks before a deeper one, so
// its candidate must not be displaced by one nested further in.
func (p *Printer) markPossibleNewLine() {
	if p.possibleNewLineSavePoint != nil && p.possibleNewLineSavePoint.newLineGroupDepth < p.newLineGroupDepth {
		return
	}
	sp := p.captureSavePoint()
	p.possibleNewLineSavePoint = &sp
}

// handleString implements the String row: if the pending text would
// overflow and a possible-newline save point exists, restore to it and break
// there instead of writing in place. A String carries no newline of its own,
// so unlike SpaceOrNewLine it has no "break in place" fallback — with no
// save point to restore to, it simply writes, which is how SPEC_FULL.md's
// non-goal that the engine does not guarantee output always fits is
// realized.
func (p *Printer) handleString(text string) {
	info := p.w.Info()
	if p.possibleNewLineSavePoint != nil && info.ColumnNumber+len(text)+1 > p.opts.MaxWidth {
		p.restore(p.possibleNewLineSavePoint)
		p.w.NewLine()
		return
	}
	p.w.Write(text)
	p.cursor.Advance()
}

// handleRawString mirrors handleString, measuring only r's first line
// against maxWidth since a RawString's embedded newlines are never
// rewrapped.
func (p *Printer) handleRawString(text string) {
	info := p.w.Info()
	if p.possibleNewLineSavePoint != nil && info.ColumnNumber+len(firstLine(text))+1 > p.opts.MaxWidth {
		p.restore(p.possibleNewLineSavePoint)
		p.w.NewLine()
		return
	}
	p.w.WriteRaw(text)
	p.cursor.Advance()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// handleInfo records info's resolved position and, if some earlier
// Condition's resolver was waiting on it, restores to re-evaluate that
// condition now that it knows the answer.
func (p *Printer) handleInfo(info *ir.Info) {
	p.resolvedInfos[info.ID] = p.w.Info()

	if sp, ok := p.lookAheadSavePoints[info.ID]; ok {
		delete(p.lookAheadSavePoints, info.ID)
		p.restore(sp)
		return
	}
	p.cursor.Advance()
}

// handleCondition evaluates cond and enters the resulting branch. An
// Unknown result is treated as false (SPEC_FULL.md §4.2): the printer
// proceeds speculatively down the false branch, and if evaluating cond
// queried an unresolved Info or Condition, a look-ahead save point captured
// here lets that later resolution rewind and re-run cond with better
// information. Once cond resolves to a definite value, any condition
// waiting on *cond*'s own identity is given the same treatment.
func (p *Printer) handleCondition(cond *ir.Condition) {
	p.cursor.Advance()

	target := p.captureSavePoint()
	target.cursor.Rewind() // a restore to target must land back on cond, not past it

	ctx := &resolveContext{p: p, target: &target}
	result := p.evalCondition(cond, ctx)

	if result == ir.Unknown {
		p.cursor.Descend(ir.Materialize(cond, false), "false")
		return
	}

	resolvedBool := result == ir.True
	p.resolvedConditions[cond.ID] = resolvedBool

	if sp, ok := p.lookAheadSavePoints[cond.ID]; ok {
		delete(p.lookAheadSavePoints, cond.ID)
		p.restore(sp)
		return
	}

	branch := "false"
	if resolvedBool {
		branch = "true"
	}
	p.cursor.Descend(ir.Materialize(cond, resolvedBool), branch)
}

// evalCondition runs cond's resolver and folds a misbehaving resolver's
// panic into an EngineError that names the condition (and, if the resolver
// got that far, the last Info it queried) rather than letting an opaque
// panic value escape to Print's top-level recover.
func (p *Printer) evalCondition(cond *ir.Condition, ctx *resolveContext) (result ir.Trilean) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(*fatalPanic); ok {
			panic(r)
		}
		if ctx.lastInfo != "" {
			p.fatalf("condition %q resolver panicked while evaluating info %q: %v", cond.Name(), ctx.lastInfo, r)
		}
		p.fatalf("condition %q resolver panicked: %v", cond.Name(), r)
	}()
	return cond.Eval(ctx)
}

func (p *Printer) captureSavePoint() savePoint {
	return savePoint{
		writerState:       p.w.GetState(),
		cursor:            p.cursor.Clone(),
		newLineGroupDepth: p.newLineGroupDepth,
		possibleNewLine:   p.possibleNewLineSavePoint,
	}
}

func (p *Printer) restore(sp *savePoint) {
	p.w.SetState(sp.writerState)
	p.cursor = sp.cursor.Clone()
	p.newLineGroupDepth = sp.newLineGroupDepth
	p.possibleNewLineSavePoint = sp.possibleNewLine
}

func (p *Printer) registerLookAhead(id identity.ID, target *savePoint) {
	p.lookAheadSavePoints[id] = target
}
