// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package tinyjson

import (
	"strconv"

	"github.com/crosslang/printengine/condition"
	"github.com/crosslang/printengine/identity"
	"github.com/crosslang/printengine/ir"
)

// Lower builds the normalized IR for v. It is this demo's stand-in for a
// real plugin's AST walk (SPEC_FULL.md §6.1).
func Lower(v Value) *ir.Container {
	return ir.Normalize(Items(v))
}

// Items builds the flat, un-normalized print item sequence for v. This is
// what a real plugin's ParseFile hands back to the host (SPEC_FULL.md §6);
// Lower exists alongside it for callers (tests, anything that only wants a
// Container) that would otherwise normalize it right back.
func Items(v Value) []ir.PrintItem {
	alloc := identity.NewAllocator()
	b := ir.NewBuilder(alloc)
	lowerValue(b, v)
	return b.Items()
}

func lowerValue(b *ir.Builder, v Value) {
	switch v := v.(type) {
	case Null:
		b.Text("null")
	case Bool:
		b.Text(strconv.FormatBool(bool(v)))
	case Number:
		b.Text(string(v))
	case String:
		b.Text(strconv.Quote(string(v)))
	case *Array:
		lowerArray(b, v)
	case *Object:
		lowerObject(b, v)
	default:
		b.Text("null")
	}
}

// lowerArray emits "[...]" using the classic forward-referencing "hug"
// layout: whether the opening bracket is followed by a newline depends on
// whether the closing bracket ends up on a later line than the opening one
// — a question the condition resolver cannot answer until the elements
// between them have actually been printed. array-close is pre-allocated so
// the condition, which sits before the elements, can name an Info that is
// only appended to the stream after them; the engine resolves this with a
// look-ahead save point the first time it is asked about (SPEC_FULL.md
// §4.2, §8 S3/S4). The separators between elements follow the same
// condition, so a multi-line array puts each element on its own line.
func lowerArray(b *ir.Builder, arr *Array) {
	if len(arr.Elements) == 0 {
		b.Text("[]")
		return
	}

	b.Text("[")
	start := b.Info("array-open")
	end := ir.NewInfo(b.Allocator(), "array-close")

	multiline := b.Condition("array-multiline", condition.IsMultipleLines(start, end, false),
		func(tb *ir.Builder) { tb.NewLine() },
		func(fb *ir.Builder) {},
	)

	b.NewLineGroup(func(gb *ir.Builder) {
		gb.Indent(func(ib *ir.Builder) {
			for i, el := range arr.Elements {
				if i > 0 {
					ib.Text(",")
					ib.AliasCondition("array-separator-break", multiline,
						func(tb *ir.Builder) { tb.NewLine() },
						func(fb *ir.Builder) { fb.SpaceOrNewLine() },
					)
				}
				lowerValue(ib, el)
			}
		})
	})

	b.Append(end)
	b.AliasCondition("array-close-break", multiline,
		func(tb *ir.Builder) { tb.NewLine() },
		func(fb *ir.Builder) {},
	)
	b.Text("]")
}

// lowerObject mirrors lowerArray for "{...}": the break after the opening
// brace and the break at every separator follow one IsMultipleLines
// condition, resolved by look-ahead against object-close. The closing
// brace's placement is decided with IsHanging instead: by the time the
// printer reaches that condition (after every entry), the entries have
// already either deepened the line-start indent or not, so the answer is
// already known — no look-ahead needed, a different, equally real way a
// resolver gets used.
func lowerObject(b *ir.Builder, obj *Object) {
	if len(obj.Entries) == 0 {
		b.Text("{}")
		return
	}

	b.Text("{")
	start := b.Info("object-open")
	end := ir.NewInfo(b.Allocator(), "object-close")

	multiline := b.Condition("object-multiline", condition.IsMultipleLines(start, end, false),
		func(tb *ir.Builder) { tb.NewLine() },
		func(fb *ir.Builder) {},
	)

	b.NewLineGroup(func(gb *ir.Builder) {
		gb.Indent(func(ib *ir.Builder) {
			for i, entry := range obj.Entries {
				if i > 0 {
					ib.Text(",")
					ib.AliasCondition("object-separator-break", multiline,
						func(tb *ir.Builder) { tb.NewLine() },
						func(fb *ir.Builder) { fb.SpaceOrNewLine() },
					)
				}
				ib.Text(strconv.Quote(entry.Key))
				ib.Text(":")
				ib.Space()
				lowerValue(ib, entry.Value)
			}
		})
	})

	b.Append(end)
	b.Condition("object-close-break", condition.IsHanging(start, nil),
		func(tb *ir.Builder) { tb.NewLine() },
		func(fb *ir.Builder) {},
	)
	b.Text("}")
}
