package scratch

import (
	"errors"
	"fmt"
)

// SetVariableBlock stores a value under var_<name> in the state.
type SetVariableBlock struct {
	BaseBlock
}

func NewSetVariableBlock(variable, value any) *SetVariableBlock {
	b := &SetVariableBlock{BaseBlock: newBaseBlock("data_setvariableto", Stack)}
	b.addField("VARIABLE", variable)
	b.addInput("VALUE", value)
	return b
}

func (b *SetVariableBlock) Execute(s State) (any, error) {
	name := toString(b.fields["VARIABLE"])
	v, err := resolve(b.inputs["VALUE"], s)
	if err != nil {
		return nil, err
	}
	s["var_"+name] = v
	return fmt.Sprintf("Set %s to %v", name, v), nil
}

// ChangeVariableByBlock adds to a variable when both the current value
// and the delta convert to numbers, otherwise concatenates string
// forms. Unset variables start at 0.
type ChangeVariableByBlock struct {
	BaseBlock
}

func NewChangeVariableByBlock(variable, value any) *ChangeVariableByBlock {
	b := &ChangeVariableByBlock{BaseBlock: newBaseBlock("data_changevariableby", Stack)}
	b.addField("VARIABLE", variable)
	b.addInput("VALUE", value)
	return b
}

func (b *ChangeVariableByBlock) Execute(s State) (any, error) {
	name := toString(b.fields["VARIABLE"])
	v, err := resolve(b.inputs["VALUE"], s)
	if err != nil {
		return nil, err
	}
	current, ok := s["var_"+name]
	if !ok {
		current = 0
	}
	cur, errCur := toNumber(current)
	if errCur == nil {
		delta, errDelta := toNumber(v)
		if errDelta == nil {
			s["var_"+name] = cur + delta
		} else if errors.Is(errDelta, ErrNotNumeric) {
			s["var_"+name] = toString(current) + toString(v)
		} else {
			return nil, errDelta
		}
	} else if errors.Is(errCur, ErrNotNumeric) {
		s["var_"+name] = toString(current) + toString(v)
	} else {
		return nil, errCur
	}
	return fmt.Sprintf("Changed %s by %v", name, v), nil
}

// GetVariableBlock reports a variable's value, defaulting to 0.
type GetVariableBlock struct {
	BaseBlock
}

func NewGetVariableBlock(variable any) *GetVariableBlock {
	b := &GetVariableBlock{BaseBlock: newBaseBlock("data_variable", Reporter)}
	b.addField("VARIABLE", variable)
	return b
}

func (b *GetVariableBlock) Execute(s State) (any, error) {
	if v, ok := s["var_"+toString(b.fields["VARIABLE"])]; ok {
		return v, nil
	}
	return 0, nil
}
