package scratch

import "reflect"

// ImportPath is the path generated programs import this package under.
const ImportPath = "github.com/xyntechx/graph-abstract-code-gen/internal/scratch"

// Symbols exposes the package to interpreted programs. The map key ends
// with a repeated package name segment, matching the interpreter's
// import-path/package-name convention for binary symbols.
func Symbols() map[string]map[string]reflect.Value {
	return map[string]map[string]reflect.Value{
		ImportPath + "/scratch": {
			// function definitions
			"NewProgram": reflect.ValueOf(NewProgram),
			"NewState":   reflect.ValueOf(NewState),

			"NewWhenFlagClickedBlock": reflect.ValueOf(NewWhenFlagClickedBlock),
			"NewWhenKeyPressedBlock":  reflect.ValueOf(NewWhenKeyPressedBlock),

			"NewMoveStepsBlock":        reflect.ValueOf(NewMoveStepsBlock),
			"NewTurnRightBlock":        reflect.ValueOf(NewTurnRightBlock),
			"NewTurnLeftBlock":         reflect.ValueOf(NewTurnLeftBlock),
			"NewGoToRandomBlock":       reflect.ValueOf(NewGoToRandomBlock),
			"NewGotoXYBlock":           reflect.ValueOf(NewGotoXYBlock),
			"NewGlideToRandomBlock":    reflect.ValueOf(NewGlideToRandomBlock),
			"NewGlideToXYBlock":        reflect.ValueOf(NewGlideToXYBlock),
			"NewPointInDirectionBlock": reflect.ValueOf(NewPointInDirectionBlock),
			"NewChangeXByBlock":        reflect.ValueOf(NewChangeXByBlock),
			"NewSetXToBlock":           reflect.ValueOf(NewSetXToBlock),
			"NewChangeYByBlock":        reflect.ValueOf(NewChangeYByBlock),
			"NewSetYToBlock":           reflect.ValueOf(NewSetYToBlock),
			"NewXPositionBlock":        reflect.ValueOf(NewXPositionBlock),
			"NewYPositionBlock":        reflect.ValueOf(NewYPositionBlock),

			"NewSayBlock":          reflect.ValueOf(NewSayBlock),
			"NewSayForSecsBlock":   reflect.ValueOf(NewSayForSecsBlock),
			"NewThinkBlock":        reflect.ValueOf(NewThinkBlock),
			"NewThinkForSecsBlock": reflect.ValueOf(NewThinkForSecsBlock),
			"NewChangeSizeByBlock": reflect.ValueOf(NewChangeSizeByBlock),
			"NewSetSizeToBlock":    reflect.ValueOf(NewSetSizeToBlock),

			"NewWaitBlock":        reflect.ValueOf(NewWaitBlock),
			"NewRepeatBlock":      reflect.ValueOf(NewRepeatBlock),
			"NewForeverBlock":     reflect.ValueOf(NewForeverBlock),
			"NewIfBlock":          reflect.ValueOf(NewIfBlock),
			"NewIfElseBlock":      reflect.ValueOf(NewIfElseBlock),
			"NewWaitUntilBlock":   reflect.ValueOf(NewWaitUntilBlock),
			"NewRepeatUntilBlock": reflect.ValueOf(NewRepeatUntilBlock),
			"NewStopBlock":        reflect.ValueOf(NewStopBlock),

			"NewKeyPressedBlock": reflect.ValueOf(NewKeyPressedBlock),
			"NewMouseDownBlock":  reflect.ValueOf(NewMouseDownBlock),

			"NewAddBlock":          reflect.ValueOf(NewAddBlock),
			"NewSubtractBlock":     reflect.ValueOf(NewSubtractBlock),
			"NewMultiplyBlock":     reflect.ValueOf(NewMultiplyBlock),
			"NewDivideBlock":       reflect.ValueOf(NewDivideBlock),
			"NewRandomBlock":       reflect.ValueOf(NewRandomBlock),
			"NewGreaterThanBlock":  reflect.ValueOf(NewGreaterThanBlock),
			"NewLessThanBlock":     reflect.ValueOf(NewLessThanBlock),
			"NewEqualsBlock":       reflect.ValueOf(NewEqualsBlock),
			"NewAndBlock":          reflect.ValueOf(NewAndBlock),
			"NewOrBlock":           reflect.ValueOf(NewOrBlock),
			"NewNotBlock":          reflect.ValueOf(NewNotBlock),
			"NewJoinBlock":         reflect.ValueOf(NewJoinBlock),
			"NewLetterOfBlock":     reflect.ValueOf(NewLetterOfBlock),
			"NewLengthOfBlock":     reflect.ValueOf(NewLengthOfBlock),
			"NewContainsBlock":     reflect.ValueOf(NewContainsBlock),
			"NewModBlock":          reflect.ValueOf(NewModBlock),
			"NewRoundBlock":        reflect.ValueOf(NewRoundBlock),
			"NewMathFunctionBlock": reflect.ValueOf(NewMathFunctionBlock),

			"NewSetVariableBlock":      reflect.ValueOf(NewSetVariableBlock),
			"NewChangeVariableByBlock": reflect.ValueOf(NewChangeVariableByBlock),
			"NewGetVariableBlock":      reflect.ValueOf(NewGetVariableBlock),

			// type definitions
			"Block":   reflect.ValueOf((*Block)(nil)),
			"Program": reflect.ValueOf((*Program)(nil)),
			"State":   reflect.ValueOf((*State)(nil)),
		},
	}
}
