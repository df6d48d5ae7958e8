package scratch

import "fmt"

// WhenFlagClickedBlock starts a script when the green flag is clicked.
type WhenFlagClickedBlock struct {
	BaseBlock
}

func NewWhenFlagClickedBlock() *WhenFlagClickedBlock {
	return &WhenFlagClickedBlock{BaseBlock: newBaseBlock("event_whenflagclicked", Hat)}
}

func (b *WhenFlagClickedBlock) Execute(s State) (any, error) {
	return "Program started", nil
}

// WhenKeyPressedBlock starts a script when the given key is pressed.
type WhenKeyPressedBlock struct {
	BaseBlock
}

func NewWhenKeyPressedBlock(keyOption any) *WhenKeyPressedBlock {
	b := &WhenKeyPressedBlock{BaseBlock: newBaseBlock("event_whenkeypressed", Hat)}
	b.addField("KEY_OPTION", keyOption)
	return b
}

func (b *WhenKeyPressedBlock) Execute(s State) (any, error) {
	return fmt.Sprintf("Key %v pressed", b.fields["KEY_OPTION"]), nil
}
