// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package printer

import (
	"fmt"

	"github.com/crosslang/printengine/diag"
	"github.com/pkg/errors"
)

// EngineError is returned by Print when the IR violates one of the
// invariants SPEC_FULL.md §3/§4 places on a well-formed document: an
// unbalanced indent signal, a misbehaving resolver, an isTesting string
// containing a forbidden character. These are bugs in the IR producer, not
// recoverable input errors, which is why the engine surfaces exactly one of
// them and stops rather than trying to continue.
type EngineError struct {
	Diags diag.Diags
}

func (e *EngineError) Error() string {
	return e.Diags.String()
}

// fatalPanic is the sentinel panic value the top-level Print recovers,
// distinguishing an engine-raised fatal from a genuine programmer panic
// elsewhere that should keep propagating.
type fatalPanic struct {
	err error
}

// fatalf records a single fatal diagnostic at the printer's current cursor
// location and panics with it. It never returns; callers should not wrap it
// in another panic.
func (p *Printer) fatalf(format string, args ...interface{}) {
	loc := p.cursor.Location()
	d := diag.New()
	d.AddFatal(loc, fmt.Sprintf(format, args...))
	panic(&fatalPanic{err: errors.WithStack(&EngineError{Diags: d})})
}

// wrapPanic folds an unexpected panic value (one not raised by fatalf, e.g.
// an indent-underflow panic from package writer) into the same EngineError
// shape, so Print never lets a raw panic escape to its caller.
func (p *Printer) wrapPanic(r interface{}) error {
	loc := p.cursor.Location()
	d := diag.New()
	d.AddFatal(loc, fmt.Sprintf("%v", r))
	return errors.WithStack(&EngineError{Diags: d})
}
