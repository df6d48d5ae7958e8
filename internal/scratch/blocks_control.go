package scratch

import (
	"errors"
	"fmt"
)

// WaitBlock pauses the script (recorded, not slept).
type WaitBlock struct {
	BaseBlock
}

func NewWaitBlock(secs any) *WaitBlock {
	b := &WaitBlock{BaseBlock: newBaseBlock("control_wait", Stack)}
	b.addInput("SECS", secs)
	return b
}

func (b *WaitBlock) Execute(s State) (any, error) {
	secs, err := resolve(b.inputs["SECS"], s)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Waited %v seconds", secs), nil
}

// RepeatBlock runs its substack and reports the requested repeat count.
// The engine records a single pass; the count appears in the result.
type RepeatBlock struct {
	BaseBlock
	substack []Block
}

func NewRepeatBlock(times any) *RepeatBlock {
	b := &RepeatBlock{BaseBlock: newBaseBlock("control_repeat", CBlock)}
	b.addInput("TIMES", times)
	return b
}

// AddToSubstack appends a block to the loop body.
func (b *RepeatBlock) AddToSubstack(blk Block) {
	b.substack = append(b.substack, blk)
	b.children = append(b.children, blk)
}

func (b *RepeatBlock) substacks() [][]Block { return [][]Block{b.substack} }

func (b *RepeatBlock) Execute(s State) (any, error) {
	times, err := resolve(b.inputs["TIMES"], s)
	if err != nil {
		return nil, err
	}
	results := []any{}
	for _, blk := range b.substack {
		r, err := blk.Execute(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return fmt.Sprintf("Repeated %v times: %v", times, results), nil
}

// ForeverBlock runs its substack and reports one pass of the loop.
type ForeverBlock struct {
	BaseBlock
	substack []Block
}

func NewForeverBlock() *ForeverBlock {
	return &ForeverBlock{BaseBlock: newBaseBlock("control_forever", CBlock)}
}

// AddToSubstack appends a block to the loop body.
func (b *ForeverBlock) AddToSubstack(blk Block) {
	b.substack = append(b.substack, blk)
	b.children = append(b.children, blk)
}

func (b *ForeverBlock) substacks() [][]Block { return [][]Block{b.substack} }

func (b *ForeverBlock) Execute(s State) (any, error) {
	results := []any{}
	for _, blk := range b.substack {
		r, err := blk.Execute(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return fmt.Sprintf("Forever loop: %v", results), nil
}

// IfBlock runs its substack when the condition holds. A false
// condition aborts the script: the branch results are unobtainable.
type IfBlock struct {
	BaseBlock
	substack []Block
}

func NewIfBlock(condition any) *IfBlock {
	b := &IfBlock{BaseBlock: newBaseBlock("control_if", CBlock)}
	b.addInput("CONDITION", condition)
	return b
}

// AddToSubstack appends a block to the if body.
func (b *IfBlock) AddToSubstack(blk Block) {
	b.substack = append(b.substack, blk)
	b.children = append(b.children, blk)
}

func (b *IfBlock) substacks() [][]Block { return [][]Block{b.substack} }

func (b *IfBlock) Execute(s State) (any, error) {
	cond, err := asBlock(b.inputs["CONDITION"])
	if err != nil {
		return nil, err
	}
	v, err := cond.Execute(s)
	if err != nil {
		return nil, err
	}
	if !truthy(v) {
		return nil, errors.New("if condition not met: substack results unavailable")
	}
	results := []any{}
	for _, blk := range b.substack {
		r, err := blk.Execute(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return fmt.Sprintf("If condition met: %v", results), nil
}

// IfElseBlock runs both branches (both mutate state) and reports which
// one the condition selected.
type IfElseBlock struct {
	BaseBlock
	substack  []Block
	substack2 []Block
}

func NewIfElseBlock(condition any) *IfElseBlock {
	b := &IfElseBlock{BaseBlock: newBaseBlock("control_if_else", CBlock)}
	b.addInput("CONDITION", condition)
	return b
}

// AddToSubstack appends a block to the if branch.
func (b *IfElseBlock) AddToSubstack(blk Block) {
	b.substack = append(b.substack, blk)
	b.children = append(b.children, blk)
}

// AddToElseSubstack appends a block to the else branch.
func (b *IfElseBlock) AddToElseSubstack(blk Block) {
	b.substack2 = append(b.substack2, blk)
	b.children = append(b.children, blk)
}

func (b *IfElseBlock) substacks() [][]Block { return [][]Block{b.substack, b.substack2} }

func (b *IfElseBlock) Execute(s State) (any, error) {
	cond, err := asBlock(b.inputs["CONDITION"])
	if err != nil {
		return nil, err
	}
	v, err := cond.Execute(s)
	if err != nil {
		return nil, err
	}
	resultsIf := []any{}
	for _, blk := range b.substack {
		r, err := blk.Execute(s)
		if err != nil {
			return nil, err
		}
		resultsIf = append(resultsIf, r)
	}
	resultsElse := []any{}
	for _, blk := range b.substack2 {
		r, err := blk.Execute(s)
		if err != nil {
			return nil, err
		}
		resultsElse = append(resultsElse, r)
	}
	if truthy(v) {
		return fmt.Sprintf("If condition met: %v (else: %v)", resultsIf, resultsElse), nil
	}
	return fmt.Sprintf("Else condition met: %v (if: %v)", resultsElse, resultsIf), nil
}

// WaitUntilBlock evaluates its condition once and reports it.
type WaitUntilBlock struct {
	BaseBlock
}

func NewWaitUntilBlock(condition any) *WaitUntilBlock {
	b := &WaitUntilBlock{BaseBlock: newBaseBlock("control_wait_until", Stack)}
	b.addInput("CONDITION", condition)
	return b
}

func (b *WaitUntilBlock) Execute(s State) (any, error) {
	cond, err := asBlock(b.inputs["CONDITION"])
	if err != nil {
		return nil, err
	}
	v, err := cond.Execute(s)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Waited until condition: %v", v), nil
}

// RepeatUntilBlock runs one pass of its substack; the condition is
// named in the result but never evaluated.
type RepeatUntilBlock struct {
	BaseBlock
	substack []Block
}

func NewRepeatUntilBlock(condition any) *RepeatUntilBlock {
	b := &RepeatUntilBlock{BaseBlock: newBaseBlock("control_repeat_until", CBlock)}
	b.addInput("CONDITION", condition)
	return b
}

// AddToSubstack appends a block to the loop body.
func (b *RepeatUntilBlock) AddToSubstack(blk Block) {
	b.substack = append(b.substack, blk)
	b.children = append(b.children, blk)
}

func (b *RepeatUntilBlock) substacks() [][]Block { return [][]Block{b.substack} }

func (b *RepeatUntilBlock) Execute(s State) (any, error) {
	results := []any{}
	for _, blk := range b.substack {
		r, err := blk.Execute(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return fmt.Sprintf("Repeat until %s: %v", describeInput(b.inputs["CONDITION"]), results), nil
}

// StopBlock ends a script with the given stop option.
type StopBlock struct {
	BaseBlock
}

func NewStopBlock(stopOption any) *StopBlock {
	b := &StopBlock{BaseBlock: newBaseBlock("control_stop", Cap)}
	b.addField("STOP_OPTION", stopOption)
	return b
}

func (b *StopBlock) Execute(s State) (any, error) {
	return fmt.Sprintf("Stop %v", b.fields["STOP_OPTION"]), nil
}
