package span

import (
	"fmt"

	"github.com/vicmd/vicmd/internal/engine/buffer"
)

// Type classifies how two raw positions expand into the actual affected
// text span.
type Type uint8

const (
	// Untyped marks a bare position pair with no range semantics.
	// Transform passes untyped pairs through unchanged.
	Untyped Type = iota

	// Exclusive spans [begin, end); the character at end is not included.
	Exclusive

	// Inclusive spans [begin, end]; the character at end is included.
	Inclusive

	// Line spans whole lines.
	Line

	// Block spans a rectangle between two corner offsets.
	Block
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case Untyped:
		return "untyped"
	case Exclusive:
		return "exclusive"
	case Inclusive:
		return "inclusive"
	case Line:
		return "line"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Span is a pair of buffer positions plus the range type governing how
// they map onto the affected text. A span is produced by a motion,
// consumed once by an operator, and discarded.
type Span struct {
	Begin buffer.Offset
	End   buffer.Offset
	Kind  Type
}

// New creates a span.
func New(begin, end buffer.Offset, kind Type) Span {
	return Span{Begin: begin, End: end, Kind: kind}
}

// ordered returns the span with Begin <= End.
func (s Span) ordered() Span {
	if s.Begin > s.End {
		s.Begin, s.End = s.End, s.Begin
	}
	return s
}

// Expand converts a span to its expanded form, where End sits one past
// the last affected character.
//
// Exclusive spans may be promoted: when both ends sit on start-of-line
// boundaries the span becomes line-wise over the lines up to (not
// including) End's line; when only End does, the span becomes inclusive
// of the character before End. Inclusive expansion normalizes order
// first, then moves End past its character. Line expansion rounds Begin
// down to its line start and End up to the start of the following line.
// Block expansion moves the trailing corner past its character.
func Expand(b *buffer.Buffer, s Span) Span {
	switch s.Kind {
	case Exclusive:
		if s.Begin == s.End {
			return s
		}
		if b.IsLineStart(s.End) && b.IsLineStart(s.Begin) {
			return Span{Begin: s.Begin, End: s.End, Kind: Line}
		}
		if b.IsLineStart(s.End) {
			return Span{Begin: s.Begin, End: s.End - 1, Kind: Inclusive}
		}
		return s

	case Inclusive:
		s = s.ordered()
		return Span{Begin: s.Begin, End: s.End + 1, Kind: Inclusive}

	case Line:
		begin := b.LineStart(b.LineOf(s.Begin))
		end := b.NextLineStart(b.LineOf(s.End))
		return Span{Begin: begin, End: end, Kind: Line}

	case Block:
		return Span{Begin: s.Begin, End: s.End + 1, Kind: Block}

	default:
		return s
	}
}

// Contract is the partial inverse of Expand. It is exact for Inclusive
// and Block spans; Exclusive and Line spans are already in contracted
// form and pass through unchanged.
func Contract(b *buffer.Buffer, s Span) Span {
	switch s.Kind {
	case Inclusive:
		s = s.ordered()
		return Span{Begin: s.Begin, End: s.End - 1, Kind: Inclusive}
	case Block:
		return Span{Begin: s.Begin, End: s.End - 1, Kind: Block}
	default:
		return s
	}
}

// Describe returns a human-readable summary of the text a span covers,
// as shown after an operator runs ("3 lines", "1 character").
func Describe(b *buffer.Buffer, s Span) string {
	switch s.Kind {
	case Inclusive:
		s = s.ordered()
		return pluralize(s.End-s.Begin+1, "character")

	case Line:
		lines := b.LineOf(s.End) - b.LineOf(s.Begin)
		if lines < 0 {
			lines = -lines
		}
		return pluralize(lines+1, "line")

	case Block:
		rows := b.LineOf(s.End) - b.LineOf(s.Begin)
		if rows < 0 {
			rows = -rows
		}
		cols := b.ColumnOf(s.End) - b.ColumnOf(s.Begin)
		if cols < 0 {
			cols = -cols
		}
		return fmt.Sprintf("%d rows and %d columns", rows+1, cols)

	default:
		n := s.End - s.Begin
		if n < 0 {
			n = -n
		}
		return pluralize(n, "character")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Op selects the operation Transform applies.
type Op uint8

const (
	// OpNone applies no operation; the span passes through unchanged.
	OpNone Op = iota

	// OpExpand applies Expand.
	OpExpand

	// OpContract applies Contract.
	OpContract
)

// Transform dereferences the two locators once and applies op to the
// resulting span. An Untyped span or OpNone passes the positions through
// unchanged. The result always carries plain offsets; live cursor
// references never propagate past this point.
func Transform(b *buffer.Buffer, begin, end buffer.Locator, kind Type, op Op) Span {
	s := Span{Begin: begin.Offset(), End: end.Offset(), Kind: kind}
	if kind == Untyped || op == OpNone {
		return s
	}
	switch op {
	case OpExpand:
		return Expand(b, s)
	case OpContract:
		return Contract(b, s)
	default:
		return s
	}
}

// Resolve reduces a span to the concrete half-open character range an
// operator edits. Exclusive promotions are followed to their final form.
func Resolve(b *buffer.Buffer, s Span) Span {
	switch s.Kind {
	case Exclusive:
		s = s.ordered()
		expanded := Expand(b, s)
		if expanded.Kind == Exclusive {
			return expanded
		}
		// A promoted span already ends exactly at the boundary the
		// promotion chose; only the kind needed adjusting.
		return Span{Begin: s.Begin, End: s.End, Kind: expanded.Kind}
	case Inclusive, Line, Block:
		return Expand(b, s.ordered())
	default:
		return s.ordered()
	}
}
