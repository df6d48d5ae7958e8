package scratch

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// numericPair converts two operands for ordered comparison. ok is
// false when either side is a non-numeric string, which selects the
// string comparison fallback; other conversion failures are errors.
// The left operand converts first, so its fallback wins before the
// right operand can fail hard.
func numericPair(a, b any) (x, y float64, ok bool, err error) {
	x, errA := toNumber(a)
	if errA != nil {
		if errors.Is(errA, ErrNotNumeric) {
			return 0, 0, false, nil
		}
		return 0, 0, false, errA
	}
	y, errB := toNumber(b)
	if errB != nil {
		if errors.Is(errB, ErrNotNumeric) {
			return 0, 0, false, nil
		}
		return 0, 0, false, errB
	}
	return x, y, true, nil
}

// numeric reports the float value of scalar numerics and booleans.
// Strings are excluded: "1" and 1 are not equal.
func numeric(v any) (float64, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// AddBlock reports the sum of two numbers.
type AddBlock struct {
	BaseBlock
}

func NewAddBlock(num1, num2 any) *AddBlock {
	b := &AddBlock{BaseBlock: newBaseBlock("operator_add", Reporter)}
	b.addInput("NUM1", num1)
	b.addInput("NUM2", num2)
	return b
}

func (b *AddBlock) Execute(s State) (any, error) {
	n1, n2, err := b.numericOperands(s)
	if err != nil {
		return nil, err
	}
	return n1 + n2, nil
}

// SubtractBlock reports the difference of two numbers.
type SubtractBlock struct {
	BaseBlock
}

func NewSubtractBlock(num1, num2 any) *SubtractBlock {
	b := &SubtractBlock{BaseBlock: newBaseBlock("operator_subtract", Reporter)}
	b.addInput("NUM1", num1)
	b.addInput("NUM2", num2)
	return b
}

func (b *SubtractBlock) Execute(s State) (any, error) {
	n1, n2, err := b.numericOperands(s)
	if err != nil {
		return nil, err
	}
	return n1 - n2, nil
}

// MultiplyBlock reports the product of two numbers.
type MultiplyBlock struct {
	BaseBlock
}

func NewMultiplyBlock(num1, num2 any) *MultiplyBlock {
	b := &MultiplyBlock{BaseBlock: newBaseBlock("operator_multiply", Reporter)}
	b.addInput("NUM1", num1)
	b.addInput("NUM2", num2)
	return b
}

func (b *MultiplyBlock) Execute(s State) (any, error) {
	n1, n2, err := b.numericOperands(s)
	if err != nil {
		return nil, err
	}
	return n1 * n2, nil
}

// numericOperands resolves and converts NUM1 and NUM2 in order.
func (b *BaseBlock) numericOperands(s State) (float64, float64, error) {
	v1, err := resolve(b.inputs["NUM1"], s)
	if err != nil {
		return 0, 0, err
	}
	v2, err := resolve(b.inputs["NUM2"], s)
	if err != nil {
		return 0, 0, err
	}
	n1, err := toNumber(v1)
	if err != nil {
		return 0, 0, err
	}
	n2, err := toNumber(v2)
	if err != nil {
		return 0, 0, err
	}
	return n1, n2, nil
}

// DivideBlock reports the quotient of two numbers. Division by zero
// reports +Inf without converting the numerator.
type DivideBlock struct {
	BaseBlock
}

func NewDivideBlock(num1, num2 any) *DivideBlock {
	b := &DivideBlock{BaseBlock: newBaseBlock("operator_divide", Reporter)}
	b.addInput("NUM1", num1)
	b.addInput("NUM2", num2)
	return b
}

func (b *DivideBlock) Execute(s State) (any, error) {
	v1, err := resolve(b.inputs["NUM1"], s)
	if err != nil {
		return nil, err
	}
	v2, err := resolve(b.inputs["NUM2"], s)
	if err != nil {
		return nil, err
	}
	n2, err := toNumber(v2)
	if err != nil {
		return nil, err
	}
	if n2 == 0 {
		return math.Inf(1), nil
	}
	n1, err := toNumber(v1)
	if err != nil {
		return nil, err
	}
	return n1 / n2, nil
}

// RandomBlock reports a uniform integer in [FROM_NUM, TO_NUM].
type RandomBlock struct {
	BaseBlock
}

func NewRandomBlock(fromNum, toNum any) *RandomBlock {
	b := &RandomBlock{BaseBlock: newBaseBlock("operator_random", Reporter)}
	b.addInput("FROM_NUM", fromNum)
	b.addInput("TO_NUM", toNum)
	return b
}

func (b *RandomBlock) Execute(s State) (any, error) {
	v1, err := resolve(b.inputs["FROM_NUM"], s)
	if err != nil {
		return nil, err
	}
	v2, err := resolve(b.inputs["TO_NUM"], s)
	if err != nil {
		return nil, err
	}
	lo, err := toInt(v1)
	if err != nil {
		return nil, err
	}
	hi, err := toInt(v2)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("empty range for random (%d, %d)", lo, hi)
	}
	return randInt(lo, hi), nil
}

// GreaterThanBlock compares numerically when both operands convert,
// otherwise compares string forms.
type GreaterThanBlock struct {
	BaseBlock
}

func NewGreaterThanBlock(operand1, operand2 any) *GreaterThanBlock {
	b := &GreaterThanBlock{BaseBlock: newBaseBlock("operator_gt", Boolean)}
	b.addInput("OPERAND1", operand1)
	b.addInput("OPERAND2", operand2)
	return b
}

func (b *GreaterThanBlock) Execute(s State) (any, error) {
	op1, err := resolve(b.inputs["OPERAND1"], s)
	if err != nil {
		return nil, err
	}
	op2, err := resolve(b.inputs["OPERAND2"], s)
	if err != nil {
		return nil, err
	}
	x, y, ok, err := numericPair(op1, op2)
	if err != nil {
		return nil, err
	}
	if ok {
		return x > y, nil
	}
	return toString(op1) > toString(op2), nil
}

// LessThanBlock compares numerically when both operands convert,
// otherwise compares string forms.
type LessThanBlock struct {
	BaseBlock
}

func NewLessThanBlock(operand1, operand2 any) *LessThanBlock {
	b := &LessThanBlock{BaseBlock: newBaseBlock("operator_lt", Boolean)}
	b.addInput("OPERAND1", operand1)
	b.addInput("OPERAND2", operand2)
	return b
}

func (b *LessThanBlock) Execute(s State) (any, error) {
	op1, err := resolve(b.inputs["OPERAND1"], s)
	if err != nil {
		return nil, err
	}
	op2, err := resolve(b.inputs["OPERAND2"], s)
	if err != nil {
		return nil, err
	}
	x, y, ok, err := numericPair(op1, op2)
	if err != nil {
		return nil, err
	}
	if ok {
		return x < y, nil
	}
	return toString(op1) < toString(op2), nil
}

// EqualsBlock compares raw values: scalar numerics compare by value
// across types, everything else by deep equality. Strings never parse,
// so "1" does not equal 1.
type EqualsBlock struct {
	BaseBlock
}

func NewEqualsBlock(operand1, operand2 any) *EqualsBlock {
	b := &EqualsBlock{BaseBlock: newBaseBlock("operator_equals", Boolean)}
	b.addInput("OPERAND1", operand1)
	b.addInput("OPERAND2", operand2)
	return b
}

func (b *EqualsBlock) Execute(s State) (any, error) {
	op1, err := resolve(b.inputs["OPERAND1"], s)
	if err != nil {
		return nil, err
	}
	op2, err := resolve(b.inputs["OPERAND2"], s)
	if err != nil {
		return nil, err
	}
	if x, ok := numeric(op1); ok {
		if y, ok := numeric(op2); ok {
			return x == y, nil
		}
	}
	return reflect.DeepEqual(op1, op2), nil
}

// AndBlock reports the conjunction of two boolean blocks. Both
// operands always execute.
type AndBlock struct {
	BaseBlock
}

func NewAndBlock(operand1, operand2 any) *AndBlock {
	b := &AndBlock{BaseBlock: newBaseBlock("operator_and", Boolean)}
	b.addInput("OPERAND1", operand1)
	b.addInput("OPERAND2", operand2)
	return b
}

func (b *AndBlock) Execute(s State) (any, error) {
	v1, v2, err := b.booleanOperands(s)
	if err != nil {
		return nil, err
	}
	return truthy(v1) && truthy(v2), nil
}

// OrBlock reports the disjunction of two boolean blocks. Both operands
// always execute.
type OrBlock struct {
	BaseBlock
}

func NewOrBlock(operand1, operand2 any) *OrBlock {
	b := &OrBlock{BaseBlock: newBaseBlock("operator_or", Boolean)}
	b.addInput("OPERAND1", operand1)
	b.addInput("OPERAND2", operand2)
	return b
}

func (b *OrBlock) Execute(s State) (any, error) {
	v1, v2, err := b.booleanOperands(s)
	if err != nil {
		return nil, err
	}
	return truthy(v1) || truthy(v2), nil
}

// booleanOperands executes OPERAND1 and OPERAND2, which must be
// blocks.
func (b *BaseBlock) booleanOperands(s State) (any, any, error) {
	blk1, err := asBlock(b.inputs["OPERAND1"])
	if err != nil {
		return nil, nil, err
	}
	blk2, err := asBlock(b.inputs["OPERAND2"])
	if err != nil {
		return nil, nil, err
	}
	v1, err := blk1.Execute(s)
	if err != nil {
		return nil, nil, err
	}
	v2, err := blk2.Execute(s)
	if err != nil {
		return nil, nil, err
	}
	return v1, v2, nil
}

// NotBlock negates a boolean block.
type NotBlock struct {
	BaseBlock
}

func NewNotBlock(operand any) *NotBlock {
	b := &NotBlock{BaseBlock: newBaseBlock("operator_not", Boolean)}
	b.addInput("OPERAND", operand)
	return b
}

func (b *NotBlock) Execute(s State) (any, error) {
	blk, err := asBlock(b.inputs["OPERAND"])
	if err != nil {
		return nil, err
	}
	v, err := blk.Execute(s)
	if err != nil {
		return nil, err
	}
	return !truthy(v), nil
}

// JoinBlock concatenates the string forms of two values.
type JoinBlock struct {
	BaseBlock
}

func NewJoinBlock(string1, string2 any) *JoinBlock {
	b := &JoinBlock{BaseBlock: newBaseBlock("operator_join", Reporter)}
	b.addInput("STRING1", string1)
	b.addInput("STRING2", string2)
	return b
}

func (b *JoinBlock) Execute(s State) (any, error) {
	v1, err := resolve(b.inputs["STRING1"], s)
	if err != nil {
		return nil, err
	}
	v2, err := resolve(b.inputs["STRING2"], s)
	if err != nil {
		return nil, err
	}
	return toString(v1) + toString(v2), nil
}

// LetterOfBlock reports the 1-based letter of a string, or "" when the
// index is out of range. Letters count runes, not bytes.
type LetterOfBlock struct {
	BaseBlock
}

func NewLetterOfBlock(letterNum, str any) *LetterOfBlock {
	b := &LetterOfBlock{BaseBlock: newBaseBlock("operator_letter_of", Reporter)}
	b.addInput("LETTER_NUM", letterNum)
	b.addInput("STRING", str)
	return b
}

func (b *LetterOfBlock) Execute(s State) (any, error) {
	v1, err := resolve(b.inputs["LETTER_NUM"], s)
	if err != nil {
		return nil, err
	}
	v2, err := resolve(b.inputs["STRING"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(v1)
	if err != nil {
		return nil, err
	}
	runes := []rune(toString(v2))
	if n >= 1 && n <= len(runes) {
		return string(runes[n-1]), nil
	}
	return "", nil
}

// LengthOfBlock reports the rune count of a value's string form.
type LengthOfBlock struct {
	BaseBlock
}

func NewLengthOfBlock(str any) *LengthOfBlock {
	b := &LengthOfBlock{BaseBlock: newBaseBlock("operator_length", Reporter)}
	b.addInput("STRING", str)
	return b
}

func (b *LengthOfBlock) Execute(s State) (any, error) {
	v, err := resolve(b.inputs["STRING"], s)
	if err != nil {
		return nil, err
	}
	return len([]rune(toString(v))), nil
}

// ContainsBlock reports whether STRING1 contains STRING2.
type ContainsBlock struct {
	BaseBlock
}

func NewContainsBlock(string1, string2 any) *ContainsBlock {
	b := &ContainsBlock{BaseBlock: newBaseBlock("operator_contains", Boolean)}
	b.addInput("STRING1", string1)
	b.addInput("STRING2", string2)
	return b
}

func (b *ContainsBlock) Execute(s State) (any, error) {
	v1, err := resolve(b.inputs["STRING1"], s)
	if err != nil {
		return nil, err
	}
	v2, err := resolve(b.inputs["STRING2"], s)
	if err != nil {
		return nil, err
	}
	return strings.Contains(toString(v1), toString(v2)), nil
}

// ModBlock reports the floored modulo of two numbers. A zero divisor
// reports NaN without converting the numerator.
type ModBlock struct {
	BaseBlock
}

func NewModBlock(num1, num2 any) *ModBlock {
	b := &ModBlock{BaseBlock: newBaseBlock("operator_mod", Reporter)}
	b.addInput("NUM1", num1)
	b.addInput("NUM2", num2)
	return b
}

func (b *ModBlock) Execute(s State) (any, error) {
	v1, err := resolve(b.inputs["NUM1"], s)
	if err != nil {
		return nil, err
	}
	v2, err := resolve(b.inputs["NUM2"], s)
	if err != nil {
		return nil, err
	}
	n2, err := toNumber(v2)
	if err != nil {
		return nil, err
	}
	if n2 == 0 {
		return math.NaN(), nil
	}
	n1, err := toNumber(v1)
	if err != nil {
		return nil, err
	}
	return flooredMod(n1, n2), nil
}

// RoundBlock rounds to the nearest integer, halves to even.
type RoundBlock struct {
	BaseBlock
}

func NewRoundBlock(num any) *RoundBlock {
	b := &RoundBlock{BaseBlock: newBaseBlock("operator_round", Reporter)}
	b.addInput("NUM", num)
	return b
}

func (b *RoundBlock) Execute(s State) (any, error) {
	v, err := resolve(b.inputs["NUM"], s)
	if err != nil {
		return nil, err
	}
	n, err := toNumber(v)
	if err != nil {
		return nil, err
	}
	return math.RoundToEven(n), nil
}

// MathFunctionBlock applies the named function to a number. Trig works
// in degrees; ln and log of non-positive numbers report NaN; unknown
// operators pass the number through.
type MathFunctionBlock struct {
	BaseBlock
}

func NewMathFunctionBlock(operator, num any) *MathFunctionBlock {
	b := &MathFunctionBlock{BaseBlock: newBaseBlock("operator_mathop", Reporter)}
	b.addField("OPERATOR", operator)
	b.addInput("NUM", num)
	return b
}

func (b *MathFunctionBlock) Execute(s State) (any, error) {
	v, err := resolve(b.inputs["NUM"], s)
	if err != nil {
		return nil, err
	}
	n, err := toNumber(v)
	if err != nil {
		return nil, err
	}
	switch toString(b.fields["OPERATOR"]) {
	case "abs":
		return math.Abs(n), nil
	case "floor":
		return math.Floor(n), nil
	case "ceiling":
		return math.Ceil(n), nil
	case "sqrt":
		return math.Sqrt(n), nil
	case "sin":
		return math.Sin(radians(n)), nil
	case "cos":
		return math.Cos(radians(n)), nil
	case "tan":
		return math.Tan(radians(n)), nil
	case "asin":
		return degrees(math.Asin(n)), nil
	case "acos":
		return degrees(math.Acos(n)), nil
	case "atan":
		return degrees(math.Atan(n)), nil
	case "ln":
		if n <= 0 {
			return math.NaN(), nil
		}
		return math.Log(n), nil
	case "log":
		if n <= 0 {
			return math.NaN(), nil
		}
		return math.Log10(n), nil
	case "e ^":
		return math.Exp(n), nil
	case "10 ^":
		return math.Pow(10, n), nil
	default:
		return n, nil
	}
}
