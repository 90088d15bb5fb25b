// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package printer

import "github.com/crosslang/printengine/ir"

// resolveContext implements ir.Context for the duration of one Condition
// evaluation. target is the save point to install against any Info or
// Condition identity this evaluation finds unresolved, so that resolving it
// later rewinds back to re-evaluate this same condition. lastInfo records
// the debug name of the most recently queried Info, purely so that
// evalCondition can name it if this evaluation's resolver then panics.
type resolveContext struct {
	p        *Printer
	target   *savePoint
	lastInfo string
}

func (c *resolveContext) WriterInfo() ir.WriterInfo {
	return c.p.w.Info()
}

func (c *resolveContext) ResolvedInfo(info *ir.Info) (ir.WriterInfo, bool) {
	if info == nil {
		return ir.WriterInfo{}, false
	}
	c.lastInfo = info.Name()
	wi, ok := c.p.resolvedInfos[info.ID]
	if !ok {
		c.p.registerLookAhead(info.ID, c.target)
	}
	return wi, ok
}

func (c *resolveContext) ResolvedCondition(cond *ir.Condition) (bool, bool) {
	if cond == nil {
		return false, false
	}
	v, ok := c.p.resolvedConditions[cond.ID]
	if !ok {
		c.p.registerLookAhead(cond.ID, c.target)
	}
	return v, ok
}
