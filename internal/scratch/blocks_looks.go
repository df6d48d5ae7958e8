package scratch

import "fmt"

// SayBlock shows a speech bubble.
type SayBlock struct {
	BaseBlock
}

func NewSayBlock(message any) *SayBlock {
	b := &SayBlock{BaseBlock: newBaseBlock("looks_say", Stack)}
	b.addInput("MESSAGE", message)
	return b
}

func (b *SayBlock) Execute(s State) (any, error) {
	msg, err := resolve(b.inputs["MESSAGE"], s)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Says: %v", msg), nil
}

// SayForSecsBlock shows a speech bubble for a duration.
type SayForSecsBlock struct {
	BaseBlock
}

func NewSayForSecsBlock(message, secs any) *SayForSecsBlock {
	b := &SayForSecsBlock{BaseBlock: newBaseBlock("looks_sayforsecs", Stack)}
	b.addInput("MESSAGE", message)
	b.addInput("SECS", secs)
	return b
}

func (b *SayForSecsBlock) Execute(s State) (any, error) {
	msg, err := resolve(b.inputs["MESSAGE"], s)
	if err != nil {
		return nil, err
	}
	secs, err := resolve(b.inputs["SECS"], s)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Says '%v' for %v seconds", msg, secs), nil
}

// ThinkBlock shows a thought bubble.
type ThinkBlock struct {
	BaseBlock
}

func NewThinkBlock(message any) *ThinkBlock {
	b := &ThinkBlock{BaseBlock: newBaseBlock("looks_think", Stack)}
	b.addInput("MESSAGE", message)
	return b
}

func (b *ThinkBlock) Execute(s State) (any, error) {
	msg, err := resolve(b.inputs["MESSAGE"], s)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Thinks: %v", msg), nil
}

// ThinkForSecsBlock shows a thought bubble for a duration.
type ThinkForSecsBlock struct {
	BaseBlock
}

func NewThinkForSecsBlock(message, secs any) *ThinkForSecsBlock {
	b := &ThinkForSecsBlock{BaseBlock: newBaseBlock("looks_thinkforsecs", Stack)}
	b.addInput("MESSAGE", message)
	b.addInput("SECS", secs)
	return b
}

func (b *ThinkForSecsBlock) Execute(s State) (any, error) {
	msg, err := resolve(b.inputs["MESSAGE"], s)
	if err != nil {
		return nil, err
	}
	secs, err := resolve(b.inputs["SECS"], s)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("Thinks '%v' for %v seconds", msg, secs), nil
}

// ChangeSizeByBlock grows or shrinks the sprite.
type ChangeSizeByBlock struct {
	BaseBlock
}

func NewChangeSizeByBlock(change any) *ChangeSizeByBlock {
	b := &ChangeSizeByBlock{BaseBlock: newBaseBlock("looks_changesizeby", Stack)}
	b.addInput("CHANGE", change)
	return b
}

func (b *ChangeSizeByBlock) Execute(s State) (any, error) {
	change, err := resolve(b.inputs["CHANGE"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(change)
	if err != nil {
		return nil, err
	}
	s["size"] = s.getFloat("size", 100) + float64(n)
	return fmt.Sprintf("Changed size by %v", change), nil
}

// SetSizeToBlock sets the sprite's size.
type SetSizeToBlock struct {
	BaseBlock
}

func NewSetSizeToBlock(size any) *SetSizeToBlock {
	b := &SetSizeToBlock{BaseBlock: newBaseBlock("looks_setsizeto", Stack)}
	b.addInput("SIZE", size)
	return b
}

func (b *SetSizeToBlock) Execute(s State) (any, error) {
	size, err := resolve(b.inputs["SIZE"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(size)
	if err != nil {
		return nil, err
	}
	s["size"] = float64(n)
	return fmt.Sprintf("Set size to %v", size), nil
}
