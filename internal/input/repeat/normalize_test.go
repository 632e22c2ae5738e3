package repeat

import (
	"testing"

	"github.com/vicmd/vicmd/internal/input/key"
)

func lit(s string) Token {
	return NewLiteral(key.EventsFromString(s)...)
}

func sym(name string) Token {
	return NewSymbolic(name, func() error { return nil })
}

func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return false
		}
		switch a[i].Kind {
		case Literal:
			if !equalKeys(a[i].Keys, b[i].Keys) {
				return false
			}
		case Symbolic:
			if a[i].Action != b[i].Action {
				return false
			}
		}
	}
	return true
}

func TestNormalizeMergesLiteralRuns(t *testing.T) {
	tests := []struct {
		name string
		in   []Token
		want []Token
	}{
		{
			"empty",
			nil,
			nil,
		},
		{
			"single literal",
			[]Token{lit("abc")},
			[]Token{lit("abc")},
		},
		{
			"adjacent literals merge",
			[]Token{lit("ab"), lit("c"), lit("def")},
			[]Token{lit("abcdef")},
		},
		{
			"symbolic splits runs",
			[]Token{lit("ab"), sym("x"), lit("cd"), lit("ef")},
			[]Token{lit("ab"), sym("x"), lit("cdef")},
		},
		{
			"symbolic never merges",
			[]Token{sym("x"), sym("y")},
			[]Token{sym("x"), sym("y")},
		},
		{
			"leading and trailing symbolic",
			[]Token{sym("x"), lit("a"), lit("b"), sym("y")},
			[]Token{sym("x"), lit("ab"), sym("y")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if !tokensEqual(got, tt.want) {
				t.Errorf("Normalize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := []Token{lit("abc"), sym("X"), lit("d"), lit("ef"), sym("Y"), lit("g")}

	once := Normalize(in)
	twice := Normalize(once)
	if !tokensEqual(once, twice) {
		t.Errorf("normalize not idempotent: %v vs %v", once, twice)
	}
}

func TestNormalizeResultLength(t *testing.T) {
	// (#Symbolic) + (#maximal literal runs) = 2 + 3.
	in := []Token{
		lit("a"), lit("b"), // run 1
		sym("s1"),
		lit("c"), // run 2
		sym("s2"),
		lit("d"), lit("e"), lit("f"), // run 3
	}

	got := Normalize(in)
	if len(got) != 5 {
		t.Errorf("normalized length = %d, want 5", len(got))
	}
}

func TestNormalizeInterleavedOrder(t *testing.T) {
	// normalize(["abc",[X,Y],"def"]) keeps interleaved order.
	in := []Token{lit("abc"), sym("X"), sym("Y"), lit("def")}
	want := []Token{lit("abc"), sym("X"), sym("Y"), lit("def")}

	if got := Normalize(in); !tokensEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	a := lit("ab")
	in := []Token{a, lit("cd")}

	Normalize(in)
	if len(in[0].Keys) != 2 {
		t.Error("normalize mutated an input token")
	}
}
