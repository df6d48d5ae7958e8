package scratch

import (
	"errors"
	"math"
	"testing"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
		soft    bool
	}{
		{name: "Float", in: 3.5, want: 3.5},
		{name: "Int", in: 7, want: 7},
		{name: "BoolTrue", in: true, want: 1},
		{name: "BoolFalse", in: false, want: 0},
		{name: "NumericString", in: "42", want: 42},
		{name: "PaddedString", in: "  -1.5 ", want: -1.5},
		{name: "Word", in: "hello", wantErr: true, soft: true},
		{name: "Nil", in: nil, wantErr: true},
		{name: "Slice", in: []any{1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toNumber(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("toNumber(%v): expected error", tt.in)
				}
				if tt.soft != errors.Is(err, ErrNotNumeric) {
					t.Errorf("toNumber(%v): soft=%v, err=%v", tt.in, tt.soft, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("toNumber(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("toNumber(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToIntTruncates(t *testing.T) {
	if n, err := toInt(10.9); err != nil || n != 10 {
		t.Errorf("toInt(10.9) = %v, %v", n, err)
	}
	if n, err := toInt(-10.9); err != nil || n != -10 {
		t.Errorf("toInt(-10.9) = %v, %v", n, err)
	}
	if n, err := toInt("12"); err != nil || n != 12 {
		t.Errorf("toInt(\"12\") = %v, %v", n, err)
	}
	// Strings do not round-trip through float: "10.5" is not an int.
	if _, err := toInt("10.5"); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("toInt(\"10.5\"): want ErrNotNumeric, got %v", err)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{name: "Nil", in: nil, want: false},
		{name: "False", in: false, want: false},
		{name: "EmptyString", in: "", want: false},
		{name: "ZeroString", in: "0", want: true},
		{name: "Zero", in: 0.0, want: false},
		{name: "NonZero", in: 2.0, want: true},
		{name: "NaN", in: math.NaN(), want: true},
		{name: "Word", in: []any{}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truthy(tt.in); got != tt.want {
				t.Errorf("truthy(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFlooredModTakesDivisorSign(t *testing.T) {
	if got := flooredMod(-7, 3); got != 2 {
		t.Errorf("flooredMod(-7, 3) = %v, want 2", got)
	}
	if got := flooredMod(7, -3); got != -2 {
		t.Errorf("flooredMod(7, -3) = %v, want -2", got)
	}
	if got := flooredMod(7, 3); got != 1 {
		t.Errorf("flooredMod(7, 3) = %v, want 1", got)
	}
}

func TestArithmeticBlocks(t *testing.T) {
	s := NewState()

	add := NewAddBlock(2, NewMultiplyBlock(3, 4))
	v, err := add.Execute(s)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if v != 14.0 {
		t.Errorf("2 + 3*4 = %v, want 14", v)
	}

	sub := NewSubtractBlock("10", 4)
	v, err = sub.Execute(s)
	if err != nil {
		t.Fatalf("subtract: %v", err)
	}
	if v != 6.0 {
		t.Errorf("\"10\" - 4 = %v, want 6", v)
	}

	if _, err := NewAddBlock("pear", 1).Execute(s); err == nil {
		t.Error("add with non-numeric string: expected error")
	}
}

func TestDivideByZeroIsInf(t *testing.T) {
	s := NewState()
	v, err := NewDivideBlock(5, 0).Execute(s)
	if err != nil {
		t.Fatalf("divide: %v", err)
	}
	if f, ok := v.(float64); !ok || !math.IsInf(f, 1) {
		t.Errorf("5/0 = %v, want +Inf", v)
	}

	// The zero check runs before the numerator converts.
	v, err = NewDivideBlock("pear", 0).Execute(s)
	if err != nil {
		t.Fatalf("divide with bad numerator and zero divisor: %v", err)
	}
	if f, ok := v.(float64); !ok || !math.IsInf(f, 1) {
		t.Errorf("pear/0 = %v, want +Inf", v)
	}
}

func TestModByZeroIsNaN(t *testing.T) {
	s := NewState()
	v, err := NewModBlock(5, 0).Execute(s)
	if err != nil {
		t.Fatalf("mod: %v", err)
	}
	if f, ok := v.(float64); !ok || !math.IsNaN(f) {
		t.Errorf("5 mod 0 = %v, want NaN", v)
	}

	v, err = NewModBlock(-7, 3).Execute(s)
	if err != nil {
		t.Fatalf("mod: %v", err)
	}
	if v != 2.0 {
		t.Errorf("-7 mod 3 = %v, want 2", v)
	}
}

func TestComparisonFallsBackToStrings(t *testing.T) {
	s := NewState()
	tests := []struct {
		name string
		blk  Block
		want bool
	}{
		{name: "NumericGT", blk: NewGreaterThanBlock(10, 9), want: true},
		{name: "NumericStringGT", blk: NewGreaterThanBlock("10", 9), want: true},
		{name: "LexicalGT", blk: NewGreaterThanBlock("banana", "apple"), want: true},
		{name: "MixedLexicalLT", blk: NewLessThanBlock("apple", 2), want: false},
		{name: "NumericLT", blk: NewLessThanBlock(-1, 0), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.blk.Execute(s)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if v != tt.want {
				t.Errorf("got %v, want %v", v, tt.want)
			}
		})
	}
}

func TestEqualsDoesNotParseStrings(t *testing.T) {
	s := NewState()
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "IntFloat", a: 1, b: 1.0, want: true},
		{name: "BoolInt", a: true, b: 1, want: true},
		{name: "StringInt", a: "1", b: 1, want: false},
		{name: "StringString", a: "abc", b: "abc", want: true},
		{name: "Slices", a: []any{1.0}, b: []any{1.0}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewEqualsBlock(tt.a, tt.b).Execute(s)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if v != tt.want {
				t.Errorf("%v == %v: got %v, want %v", tt.a, tt.b, v, tt.want)
			}
		})
	}
}

func TestBooleanOperatorsRequireBlocks(t *testing.T) {
	s := NewState()
	tr := NewEqualsBlock(1, 1)
	fa := NewEqualsBlock(1, 2)

	v, err := NewAndBlock(tr, fa).Execute(s)
	if err != nil {
		t.Fatalf("and: %v", err)
	}
	if v != false {
		t.Errorf("true AND false = %v", v)
	}

	v, err = NewOrBlock(tr, fa).Execute(s)
	if err != nil {
		t.Fatalf("or: %v", err)
	}
	if v != true {
		t.Errorf("true OR false = %v", v)
	}

	v, err = NewNotBlock(fa).Execute(s)
	if err != nil {
		t.Fatalf("not: %v", err)
	}
	if v != true {
		t.Errorf("NOT false = %v", v)
	}

	if _, err := NewAndBlock(true, fa).Execute(s); err == nil {
		t.Error("and with literal operand: expected error")
	}
}

func TestAndExecutesBothOperands(t *testing.T) {
	s := NewState()
	// Both sides run even when the left side already decides the
	// result, so side effects always land.
	left := NewEqualsBlock(1, 2)
	right := NewSetVariableBlock("hit", "yes")
	if _, err := NewAndBlock(left, right).Execute(s); err != nil {
		t.Fatalf("and: %v", err)
	}
	if s["var_hit"] != "yes" {
		t.Errorf("right operand did not execute: state=%v", s)
	}
}

func TestStringBlocks(t *testing.T) {
	s := NewState()

	v, err := NewJoinBlock("scratch", 3).Execute(s)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if v != "scratch3" {
		t.Errorf("join = %q", v)
	}

	v, err = NewLetterOfBlock(2, "héllo").Execute(s)
	if err != nil {
		t.Fatalf("letter_of: %v", err)
	}
	if v != "é" {
		t.Errorf("letter 2 of héllo = %q", v)
	}

	v, err = NewLetterOfBlock(9, "hi").Execute(s)
	if err != nil {
		t.Fatalf("letter_of out of range: %v", err)
	}
	if v != "" {
		t.Errorf("letter 9 of hi = %q, want empty", v)
	}

	v, err = NewLengthOfBlock("héllo").Execute(s)
	if err != nil {
		t.Fatalf("length: %v", err)
	}
	if v != 5 {
		t.Errorf("length of héllo = %v, want 5", v)
	}

	v, err = NewContainsBlock("workshop", "shop").Execute(s)
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if v != true {
		t.Errorf("workshop contains shop = %v", v)
	}
}

func TestRoundHalvesToEven(t *testing.T) {
	s := NewState()
	tests := []struct {
		in   any
		want float64
	}{
		{in: 2.5, want: 2},
		{in: 3.5, want: 4},
		{in: 2.4, want: 2},
		{in: -2.5, want: -2},
	}
	for _, tt := range tests {
		v, err := NewRoundBlock(tt.in).Execute(s)
		if err != nil {
			t.Fatalf("round(%v): %v", tt.in, err)
		}
		if v != tt.want {
			t.Errorf("round(%v) = %v, want %v", tt.in, v, tt.want)
		}
	}
}

func TestMathFunctionBlock(t *testing.T) {
	s := NewState()

	v, err := NewMathFunctionBlock("sin", 90).Execute(s)
	if err != nil {
		t.Fatalf("sin: %v", err)
	}
	if math.Abs(v.(float64)-1) > 1e-12 {
		t.Errorf("sin 90 = %v, want 1", v)
	}

	v, err = NewMathFunctionBlock("ln", 0).Execute(s)
	if err != nil {
		t.Fatalf("ln: %v", err)
	}
	if !math.IsNaN(v.(float64)) {
		t.Errorf("ln 0 = %v, want NaN", v)
	}

	v, err = NewMathFunctionBlock("log", math.E).Execute(s)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if math.Abs(v.(float64)-math.Log10(math.E)) > 1e-12 {
		t.Errorf("log e = %v", v)
	}

	v, err = NewMathFunctionBlock("sqrt", -1).Execute(s)
	if err != nil {
		t.Fatalf("sqrt: %v", err)
	}
	if !math.IsNaN(v.(float64)) {
		t.Errorf("sqrt -1 = %v, want NaN", v)
	}

	v, err = NewMathFunctionBlock("10 ^", 3).Execute(s)
	if err != nil {
		t.Fatalf("10^: %v", err)
	}
	if v != 1000.0 {
		t.Errorf("10^3 = %v", v)
	}

	// Unknown operators pass the number through untouched.
	v, err = NewMathFunctionBlock("mystery", 8).Execute(s)
	if err != nil {
		t.Fatalf("mystery: %v", err)
	}
	if v != 8.0 {
		t.Errorf("mystery(8) = %v, want 8", v)
	}
}

func TestRandomBlock(t *testing.T) {
	defer func(orig func(int, int) int) { randInt = orig }(randInt)
	var gotLo, gotHi int
	randInt = func(lo, hi int) int {
		gotLo, gotHi = lo, hi
		return lo
	}

	s := NewState()
	v, err := NewRandomBlock(3.9, "10").Execute(s)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if v != 3 || gotLo != 3 || gotHi != 10 {
		t.Errorf("random(3.9, \"10\") = %v with range [%d, %d]", v, gotLo, gotHi)
	}

	if _, err := NewRandomBlock(5, 2).Execute(s); err == nil {
		t.Error("random with inverted range: expected error")
	}
}
