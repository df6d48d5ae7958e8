package scratch

import "fmt"

// KeyPressedBlock reports whether the named key is down in the state.
type KeyPressedBlock struct {
	BaseBlock
}

func NewKeyPressedBlock(keyOption any) *KeyPressedBlock {
	b := &KeyPressedBlock{BaseBlock: newBaseBlock("sensing_keypressed", Boolean)}
	b.addField("KEY_OPTION", keyOption)
	return b
}

func (b *KeyPressedBlock) Execute(s State) (any, error) {
	key := fmt.Sprintf("key_%v", b.fields["KEY_OPTION"])
	if v, ok := s[key]; ok {
		return v, nil
	}
	return false, nil
}

// MouseDownBlock reports the mouse_down flag in the state.
type MouseDownBlock struct {
	BaseBlock
}

func NewMouseDownBlock() *MouseDownBlock {
	return &MouseDownBlock{BaseBlock: newBaseBlock("sensing_mousedown", Boolean)}
}

func (b *MouseDownBlock) Execute(s State) (any, error) {
	if v, ok := s["mouse_down"]; ok {
		return v, nil
	}
	return false, nil
}
