package scratch

import (
	"fmt"
	"math"
)

// MoveStepsBlock moves the sprite along its current direction.
type MoveStepsBlock struct {
	BaseBlock
}

func NewMoveStepsBlock(steps any) *MoveStepsBlock {
	b := &MoveStepsBlock{BaseBlock: newBaseBlock("motion_movesteps", Stack)}
	b.addInput("STEPS", steps)
	return b
}

func (b *MoveStepsBlock) Execute(s State) (any, error) {
	steps, err := resolve(b.inputs["STEPS"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(steps)
	if err != nil {
		return nil, err
	}
	rad := radians(s.getFloat("direction", 0))
	s["x"] = s.getFloat("x", 0) + float64(n)*math.Cos(rad)
	s["y"] = s.getFloat("y", 0) + float64(n)*math.Sin(rad)
	return fmt.Sprintf("Moved %v steps", steps), nil
}

// TurnRightBlock rotates the sprite clockwise.
type TurnRightBlock struct {
	BaseBlock
}

func NewTurnRightBlock(degrees any) *TurnRightBlock {
	b := &TurnRightBlock{BaseBlock: newBaseBlock("motion_turnright", Stack)}
	b.addInput("DEGREES", degrees)
	return b
}

func (b *TurnRightBlock) Execute(s State) (any, error) {
	deg, err := resolve(b.inputs["DEGREES"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(deg)
	if err != nil {
		return nil, err
	}
	s["direction"] = flooredMod(s.getFloat("direction", 0)+float64(n), 360)
	return fmt.Sprintf("Turned right %v degrees", deg), nil
}

// TurnLeftBlock rotates the sprite counterclockwise.
type TurnLeftBlock struct {
	BaseBlock
}

func NewTurnLeftBlock(degrees any) *TurnLeftBlock {
	b := &TurnLeftBlock{BaseBlock: newBaseBlock("motion_turnleft", Stack)}
	b.addInput("DEGREES", degrees)
	return b
}

func (b *TurnLeftBlock) Execute(s State) (any, error) {
	deg, err := resolve(b.inputs["DEGREES"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(deg)
	if err != nil {
		return nil, err
	}
	s["direction"] = flooredMod(s.getFloat("direction", 0)-float64(n), 360)
	return fmt.Sprintf("Turned left %v degrees", deg), nil
}

// GoToRandomBlock jumps to a random stage position.
type GoToRandomBlock struct {
	BaseBlock
}

func NewGoToRandomBlock() *GoToRandomBlock {
	return &GoToRandomBlock{BaseBlock: newBaseBlock("motion_goto_random", Stack)}
}

func (b *GoToRandomBlock) Execute(s State) (any, error) {
	x := randInt(-240, 240)
	y := randInt(-180, 180)
	s["x"] = float64(x)
	s["y"] = float64(y)
	return fmt.Sprintf("Moved to random position (%d, %d)", x, y), nil
}

// GotoXYBlock jumps to the given coordinates.
type GotoXYBlock struct {
	BaseBlock
}

func NewGotoXYBlock(x, y any) *GotoXYBlock {
	b := &GotoXYBlock{BaseBlock: newBaseBlock("motion_gotoxy", Stack)}
	b.addInput("X", x)
	b.addInput("Y", y)
	return b
}

func (b *GotoXYBlock) Execute(s State) (any, error) {
	x, err := resolve(b.inputs["X"], s)
	if err != nil {
		return nil, err
	}
	y, err := resolve(b.inputs["Y"], s)
	if err != nil {
		return nil, err
	}
	xi, err := toInt(x)
	if err != nil {
		return nil, err
	}
	yi, err := toInt(y)
	if err != nil {
		return nil, err
	}
	s["x"] = float64(xi)
	s["y"] = float64(yi)
	return fmt.Sprintf("Moved to (%v, %v)", x, y), nil
}

// GlideToRandomBlock glides to a random stage position.
type GlideToRandomBlock struct {
	BaseBlock
}

func NewGlideToRandomBlock(secs any) *GlideToRandomBlock {
	b := &GlideToRandomBlock{BaseBlock: newBaseBlock("motion_glideto_random", Stack)}
	b.addInput("SECS", secs)
	return b
}

func (b *GlideToRandomBlock) Execute(s State) (any, error) {
	secs, err := resolve(b.inputs["SECS"], s)
	if err != nil {
		return nil, err
	}
	x := randInt(-240, 240)
	y := randInt(-180, 180)
	s["x"] = float64(x)
	s["y"] = float64(y)
	return fmt.Sprintf("Glided to random position (%d, %d) in %v seconds", x, y, secs), nil
}

// GlideToXYBlock glides to the given coordinates.
type GlideToXYBlock struct {
	BaseBlock
}

func NewGlideToXYBlock(secs, x, y any) *GlideToXYBlock {
	b := &GlideToXYBlock{BaseBlock: newBaseBlock("motion_glidetoxy", Stack)}
	b.addInput("SECS", secs)
	b.addInput("X", x)
	b.addInput("Y", y)
	return b
}

func (b *GlideToXYBlock) Execute(s State) (any, error) {
	secs, err := resolve(b.inputs["SECS"], s)
	if err != nil {
		return nil, err
	}
	x, err := resolve(b.inputs["X"], s)
	if err != nil {
		return nil, err
	}
	y, err := resolve(b.inputs["Y"], s)
	if err != nil {
		return nil, err
	}
	xi, err := toInt(x)
	if err != nil {
		return nil, err
	}
	yi, err := toInt(y)
	if err != nil {
		return nil, err
	}
	s["x"] = float64(xi)
	s["y"] = float64(yi)
	return fmt.Sprintf("Glided to (%v, %v) in %v seconds", x, y, secs), nil
}

// PointInDirectionBlock sets the sprite's heading.
type PointInDirectionBlock struct {
	BaseBlock
}

func NewPointInDirectionBlock(direction any) *PointInDirectionBlock {
	b := &PointInDirectionBlock{BaseBlock: newBaseBlock("motion_pointindirection", Stack)}
	b.addInput("DIRECTION", direction)
	return b
}

func (b *PointInDirectionBlock) Execute(s State) (any, error) {
	dir, err := resolve(b.inputs["DIRECTION"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(dir)
	if err != nil {
		return nil, err
	}
	s["direction"] = flooredMod(float64(n), 360)
	return fmt.Sprintf("Pointed in direction %v", dir), nil
}

// ChangeXByBlock shifts the sprite horizontally.
type ChangeXByBlock struct {
	BaseBlock
}

func NewChangeXByBlock(dx any) *ChangeXByBlock {
	b := &ChangeXByBlock{BaseBlock: newBaseBlock("motion_changexby", Stack)}
	b.addInput("DX", dx)
	return b
}

func (b *ChangeXByBlock) Execute(s State) (any, error) {
	dx, err := resolve(b.inputs["DX"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(dx)
	if err != nil {
		return nil, err
	}
	s["x"] = s.getFloat("x", 0) + float64(n)
	return fmt.Sprintf("Changed x by %v", dx), nil
}

// SetXToBlock sets the sprite's x position.
type SetXToBlock struct {
	BaseBlock
}

func NewSetXToBlock(x any) *SetXToBlock {
	b := &SetXToBlock{BaseBlock: newBaseBlock("motion_setx", Stack)}
	b.addInput("X", x)
	return b
}

func (b *SetXToBlock) Execute(s State) (any, error) {
	x, err := resolve(b.inputs["X"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(x)
	if err != nil {
		return nil, err
	}
	s["x"] = float64(n)
	return fmt.Sprintf("Set x to %v", x), nil
}

// ChangeYByBlock shifts the sprite vertically.
type ChangeYByBlock struct {
	BaseBlock
}

func NewChangeYByBlock(dy any) *ChangeYByBlock {
	b := &ChangeYByBlock{BaseBlock: newBaseBlock("motion_changeyby", Stack)}
	b.addInput("DY", dy)
	return b
}

func (b *ChangeYByBlock) Execute(s State) (any, error) {
	dy, err := resolve(b.inputs["DY"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(dy)
	if err != nil {
		return nil, err
	}
	s["y"] = s.getFloat("y", 0) + float64(n)
	return fmt.Sprintf("Changed y by %v", dy), nil
}

// SetYToBlock sets the sprite's y position.
type SetYToBlock struct {
	BaseBlock
}

func NewSetYToBlock(y any) *SetYToBlock {
	b := &SetYToBlock{BaseBlock: newBaseBlock("motion_sety", Stack)}
	b.addInput("Y", y)
	return b
}

func (b *SetYToBlock) Execute(s State) (any, error) {
	y, err := resolve(b.inputs["Y"], s)
	if err != nil {
		return nil, err
	}
	n, err := toInt(y)
	if err != nil {
		return nil, err
	}
	s["y"] = float64(n)
	return fmt.Sprintf("Set y to %v", y), nil
}

// XPositionBlock reports the sprite's x position.
type XPositionBlock struct {
	BaseBlock
}

func NewXPositionBlock() *XPositionBlock {
	return &XPositionBlock{BaseBlock: newBaseBlock("motion_xposition", Reporter)}
}

func (b *XPositionBlock) Execute(s State) (any, error) {
	return s.getFloat("x", 0), nil
}

// YPositionBlock reports the sprite's y position.
type YPositionBlock struct {
	BaseBlock
}

func NewYPositionBlock() *YPositionBlock {
	return &YPositionBlock{BaseBlock: newBaseBlock("motion_yposition", Reporter)}
}

func (b *YPositionBlock) Execute(s State) (any, error) {
	return s.getFloat("y", 0), nil
}
