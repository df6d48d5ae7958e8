// Package scratch implements a Scratch-like block interpreter. Programs
// are graphs of blocks (hat, stack, boolean, reporter, c-block, cap)
// that execute against a shared State holding sprite position,
// direction, size, and user variables. The package is the execution
// target for generated benchmark programs: constructors accept any
// value or another block for every input, and wiring mistakes surface
// as execution errors rather than construction failures.
package scratch

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// BlockType classifies blocks by their role in a script.
type BlockType string

const (
	Hat      BlockType = "hat"
	Stack    BlockType = "stack"
	Boolean  BlockType = "boolean"
	Reporter BlockType = "reporter"
	CBlock   BlockType = "c_block"
	Cap      BlockType = "cap"
)

// State is the mutable interpreter state shared by every block in a
// running program: x, y, direction, size, plus var_<name>, key_<name>
// and mouse_down entries.
type State map[string]any

// NewState returns the default starting state.
func NewState() State {
	return State{
		"x":         float64(0),
		"y":         float64(0),
		"direction": float64(0),
		"size":      float64(100),
	}
}

func (s State) getFloat(key string, def float64) float64 {
	v, ok := s[key]
	if !ok {
		return def
	}
	f, err := toNumber(v)
	if err != nil {
		return def
	}
	return f
}

// Block is a single Scratch block. Execute runs it against the shared
// state and reports a result: a message string for stack blocks, a
// value for reporters, a bool for predicates.
type Block interface {
	ID() string
	Opcode() string
	Type() BlockType
	Execute(s State) (any, error)
	Next() Block
	ConnectNext(next Block)
	childBlocks() []Block
}

// BaseBlock carries the bookkeeping common to all blocks.
type BaseBlock struct {
	id       string
	opcode   string
	btype    BlockType
	inputs   map[string]any
	fields   map[string]any
	next     Block
	children []Block
}

func newBaseBlock(opcode string, t BlockType) BaseBlock {
	return BaseBlock{
		id:     uuid.NewString(),
		opcode: opcode,
		btype:  t,
		inputs: map[string]any{},
		fields: map[string]any{},
	}
}

func (b *BaseBlock) ID() string      { return b.id }
func (b *BaseBlock) Opcode() string  { return b.opcode }
func (b *BaseBlock) Type() BlockType { return b.btype }
func (b *BaseBlock) Next() Block     { return b.next }

// ConnectNext links this block to the next block in its script.
func (b *BaseBlock) ConnectNext(next Block) { b.next = next }

func (b *BaseBlock) addInput(name string, v any) {
	b.inputs[name] = v
	if blk, ok := v.(Block); ok {
		b.children = append(b.children, blk)
	}
}

func (b *BaseBlock) addField(name string, v any) { b.fields[name] = v }

func (b *BaseBlock) childBlocks() []Block { return b.children }

// substackHolder is implemented by c-blocks that own nested scripts.
type substackHolder interface {
	substacks() [][]Block
}

// ErrNotNumeric marks values that fail numeric parsing but are still
// usable as strings; comparisons and variable changes fall back to
// string handling on it. Nil and non-scalar values are hard errors.
var ErrNotNumeric = errors.New("not numeric")

// resolve evaluates an input: blocks run against the state, plain
// values pass through.
func resolve(v any, s State) (any, error) {
	if b, ok := v.(Block); ok {
		return b.Execute(s)
	}
	return v, nil
}

// asBlock rejects inputs that must be blocks (condition slots are
// always evaluated, never read as literals).
func asBlock(v any) (Block, error) {
	b, ok := v.(Block)
	if !ok {
		return nil, fmt.Errorf("expected a block input, got %T", v)
	}
	return b, nil
}

// toNumber converts a resolved value to float64. Numeric strings
// parse; booleans count as 1/0; unparseable strings return
// ErrNotNumeric; nil and composites are hard errors.
func toNumber(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.New("cannot convert nil to number")
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", x, ErrNotNumeric)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", v)
	}
}

// toInt truncates toward zero. Strings must be integer-valued; "10.5"
// is not an int.
func toInt(v any) (int, error) {
	if s, ok := v.(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
		}
		return int(n), nil
	}
	f, err := toNumber(v)
	if err != nil {
		return 0, err
	}
	return int(math.Trunc(f)), nil
}

func toString(v any) string { return fmt.Sprintf("%v", v) }

// truthy follows loose boolean conversion: nil, zero and the empty
// string are false, everything else (including NaN) is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	default:
		f, err := toNumber(v)
		if err != nil {
			return true
		}
		return f != 0
	}
}

// flooredMod is floored modulo: the result takes the divisor's sign, so
// direction arithmetic stays in [0, 360).
func flooredMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// randInt returns a uniform integer in [lo, hi]. Swappable in tests.
var randInt = func(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}

// describeInput names an input without evaluating it; blocks are shown
// by opcode so the description is stable across runs.
func describeInput(v any) string {
	if b, ok := v.(Block); ok {
		return fmt.Sprintf("Block(%s)", b.Opcode())
	}
	return toString(v)
}
