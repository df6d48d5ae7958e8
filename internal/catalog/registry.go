package catalog

// Helpers keep the registry compact. ports() always returns a non-nil
// slice so empty port lists render as [] rather than null.
func ports(ps ...PortSpec) []PortSpec {
	if len(ps) == 0 {
		return []PortSpec{}
	}
	return ps
}

func in(id, typ, desc string) PortSpec    { return PortSpec{ID: id, Type: typ, Desc: desc} }
func field(id, typ, desc string) PortSpec { return PortSpec{ID: id, Type: typ, Desc: desc} }

func execIn() PortSpec {
	return PortSpec{ID: PortExec, Type: TypeExec, Desc: "Receives execution from the previous block."}
}

func thenOut() PortSpec {
	return PortSpec{ID: PortThen, Type: TypeExec, Desc: "Passes execution to the next block."}
}

func resultOut(typ, desc string) PortSpec {
	return PortSpec{ID: PortResult, Type: typ, Desc: desc}
}

func substackOut(id, desc string) PortSpec {
	return PortSpec{ID: id, Type: TypeExec, Desc: desc}
}

var registry = []NodeSpec{
	// Event
	{
		Name: "WhenFlagClicked", Kind: KindHat,
		Desc:     "Starts the script when the green flag is clicked.",
		InPorts:  ports(),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "WhenKeyPressed", Kind: KindHat,
		Desc:     "Starts the script when the given key is pressed.",
		InPorts:  ports(),
		OutPorts: ports(thenOut()),
		Fields:   ports(field("KEY_OPTION", TypeString, "The key that triggers the script, e.g. \"space\".")),
	},

	// Motion
	{
		Name: "MoveSteps", Kind: KindStack,
		Desc:     "Moves the sprite the given number of steps along its current direction.",
		InPorts:  ports(execIn(), in("STEPS", TypeNumber, "How many steps to move.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "TurnRight", Kind: KindStack,
		Desc:     "Rotates the sprite clockwise by the given number of degrees.",
		InPorts:  ports(execIn(), in("DEGREES", TypeNumber, "How many degrees to turn clockwise.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "TurnLeft", Kind: KindStack,
		Desc:     "Rotates the sprite counterclockwise by the given number of degrees.",
		InPorts:  ports(execIn(), in("DEGREES", TypeNumber, "How many degrees to turn counterclockwise.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "GoToRandom", Kind: KindStack,
		Desc:     "Moves the sprite to a random position on the stage.",
		InPorts:  ports(execIn()),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "GotoXY", Kind: KindStack,
		Desc:     "Moves the sprite to the given x and y coordinates.",
		InPorts: ports(execIn(),
			in("X", TypeNumber, "The target x coordinate."),
			in("Y", TypeNumber, "The target y coordinate.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "GlideToRandom", Kind: KindStack,
		Desc:     "Glides the sprite to a random position over the given number of seconds.",
		InPorts:  ports(execIn(), in("SECS", TypeNumber, "How long the glide takes, in seconds.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "GlideToXY", Kind: KindStack,
		Desc:     "Glides the sprite to the given coordinates over the given number of seconds.",
		InPorts: ports(execIn(),
			in("SECS", TypeNumber, "How long the glide takes, in seconds."),
			in("X", TypeNumber, "The target x coordinate."),
			in("Y", TypeNumber, "The target y coordinate.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "PointInDirection", Kind: KindStack,
		Desc:     "Points the sprite in the given direction, in degrees.",
		InPorts:  ports(execIn(), in("DIRECTION", TypeNumber, "The direction to face, in degrees.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "ChangeXBy", Kind: KindStack,
		Desc:     "Changes the sprite's x coordinate by the given amount.",
		InPorts:  ports(execIn(), in("DX", TypeNumber, "How much to add to the x coordinate.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "SetXTo", Kind: KindStack,
		Desc:     "Sets the sprite's x coordinate to the given value.",
		InPorts:  ports(execIn(), in("X", TypeNumber, "The new x coordinate.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "ChangeYBy", Kind: KindStack,
		Desc:     "Changes the sprite's y coordinate by the given amount.",
		InPorts:  ports(execIn(), in("DY", TypeNumber, "How much to add to the y coordinate.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "SetYTo", Kind: KindStack,
		Desc:     "Sets the sprite's y coordinate to the given value.",
		InPorts:  ports(execIn(), in("Y", TypeNumber, "The new y coordinate.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "XPosition", Kind: KindReporter,
		Desc:     "Reports the sprite's current x coordinate.",
		InPorts:  ports(),
		OutPorts: ports(resultOut(TypeNumber, "The current x coordinate.")),
		Fields:   ports(),
	},
	{
		Name: "YPosition", Kind: KindReporter,
		Desc:     "Reports the sprite's current y coordinate.",
		InPorts:  ports(),
		OutPorts: ports(resultOut(TypeNumber, "The current y coordinate.")),
		Fields:   ports(),
	},

	// Looks
	{
		Name: "Say", Kind: KindStack,
		Desc:     "Shows a speech bubble with the given message.",
		InPorts:  ports(execIn(), in("MESSAGE", TypeString, "The message to say.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "SayForSecs", Kind: KindStack,
		Desc:     "Shows a speech bubble with the given message for the given number of seconds.",
		InPorts: ports(execIn(),
			in("MESSAGE", TypeString, "The message to say."),
			in("SECS", TypeNumber, "How long to show the message, in seconds.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "Think", Kind: KindStack,
		Desc:     "Shows a thought bubble with the given message.",
		InPorts:  ports(execIn(), in("MESSAGE", TypeString, "The message to think.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "ThinkForSecs", Kind: KindStack,
		Desc:     "Shows a thought bubble with the given message for the given number of seconds.",
		InPorts: ports(execIn(),
			in("MESSAGE", TypeString, "The message to think."),
			in("SECS", TypeNumber, "How long to show the message, in seconds.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "ChangeSizeBy", Kind: KindStack,
		Desc:     "Changes the sprite's size by the given percentage points.",
		InPorts:  ports(execIn(), in("CHANGE", TypeNumber, "How much to add to the size.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "SetSizeTo", Kind: KindStack,
		Desc:     "Sets the sprite's size to the given percentage.",
		InPorts:  ports(execIn(), in("SIZE", TypeNumber, "The new size, as a percentage.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},

	// Control
	{
		Name: "Wait", Kind: KindStack,
		Desc:     "Pauses the script for the given number of seconds.",
		InPorts:  ports(execIn(), in("SECS", TypeNumber, "How long to wait, in seconds.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "Repeat", Kind: KindCBlock,
		Desc:     "Runs the blocks in its substack the given number of times.",
		InPorts:  ports(execIn(), in("TIMES", TypeNumber, "How many times to repeat the substack.")),
		OutPorts: ports(thenOut(), substackOut(PortSubstack, "Connects to the first block of the loop body.")),
		Fields:   ports(),
	},
	{
		Name: "Forever", Kind: KindCBlock,
		Desc:     "Runs the blocks in its substack forever.",
		InPorts:  ports(execIn()),
		OutPorts: ports(thenOut(), substackOut(PortSubstack, "Connects to the first block of the loop body.")),
		Fields:   ports(),
	},
	{
		Name: "If", Kind: KindCBlock,
		Desc:     "Runs the blocks in its substack when the condition is true.",
		InPorts:  ports(execIn(), in("CONDITION", TypeBoolean, "The condition to test.")),
		OutPorts: ports(thenOut(), substackOut(PortSubstackIf, "Connects to the first block of the if branch.")),
		Fields:   ports(),
	},
	{
		Name: "IfElse", Kind: KindCBlock,
		Desc:     "Runs the if substack when the condition is true, otherwise the else substack.",
		InPorts:  ports(execIn(), in("CONDITION", TypeBoolean, "The condition to test.")),
		OutPorts: ports(thenOut(),
			substackOut(PortSubstackIf, "Connects to the first block of the if branch."),
			substackOut(PortSubstackElse, "Connects to the first block of the else branch.")),
		Fields: ports(),
	},
	{
		Name: "WaitUntil", Kind: KindStack,
		Desc:     "Pauses the script until the condition becomes true.",
		InPorts:  ports(execIn(), in("CONDITION", TypeBoolean, "The condition to wait for.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(),
	},
	{
		Name: "RepeatUntil", Kind: KindCBlock,
		Desc:     "Runs the blocks in its substack until the condition becomes true.",
		InPorts:  ports(execIn(), in("CONDITION", TypeBoolean, "The condition that ends the loop.")),
		OutPorts: ports(thenOut(), substackOut(PortSubstack, "Connects to the first block of the loop body.")),
		Fields:   ports(),
	},
	{
		Name: "Stop", Kind: KindCap,
		Desc:     "Stops the given scripts.",
		InPorts:  ports(execIn()),
		OutPorts: ports(),
		Fields:   ports(field("STOP_OPTION", TypeString, "What to stop, e.g. \"all\" or \"this script\".")),
	},

	// Sensing
	{
		Name: "KeyPressed", Kind: KindBoolean,
		Desc:     "Reports whether the given key is currently pressed.",
		InPorts:  ports(),
		OutPorts: ports(resultOut(TypeBoolean, "True when the key is pressed.")),
		Fields:   ports(field("KEY_OPTION", TypeString, "The key to check, e.g. \"space\".")),
	},
	{
		Name: "MouseDown", Kind: KindBoolean,
		Desc:     "Reports whether the mouse button is currently pressed.",
		InPorts:  ports(),
		OutPorts: ports(resultOut(TypeBoolean, "True when the mouse button is pressed.")),
		Fields:   ports(),
	},

	// Operators
	{
		Name: "Add", Kind: KindReporter,
		Desc: "Reports the sum of two numbers.",
		InPorts: ports(
			in("NUM1", TypeNumber, "The first addend."),
			in("NUM2", TypeNumber, "The second addend.")),
		OutPorts: ports(resultOut(TypeNumber, "The sum.")),
		Fields:   ports(),
	},
	{
		Name: "Subtract", Kind: KindReporter,
		Desc: "Reports the difference of two numbers.",
		InPorts: ports(
			in("NUM1", TypeNumber, "The number to subtract from."),
			in("NUM2", TypeNumber, "The number to subtract.")),
		OutPorts: ports(resultOut(TypeNumber, "The difference.")),
		Fields:   ports(),
	},
	{
		Name: "Multiply", Kind: KindReporter,
		Desc: "Reports the product of two numbers.",
		InPorts: ports(
			in("NUM1", TypeNumber, "The first factor."),
			in("NUM2", TypeNumber, "The second factor.")),
		OutPorts: ports(resultOut(TypeNumber, "The product.")),
		Fields:   ports(),
	},
	{
		Name: "Divide", Kind: KindReporter,
		Desc: "Reports the quotient of two numbers.",
		InPorts: ports(
			in("NUM1", TypeNumber, "The dividend."),
			in("NUM2", TypeNumber, "The divisor.")),
		OutPorts: ports(resultOut(TypeNumber, "The quotient.")),
		Fields:   ports(),
	},
	{
		Name: "Random", Kind: KindReporter,
		Desc: "Reports a random integer between two bounds, inclusive.",
		InPorts: ports(
			in("FROM_NUM", TypeNumber, "The lower bound."),
			in("TO_NUM", TypeNumber, "The upper bound.")),
		OutPorts: ports(resultOut(TypeNumber, "The random integer.")),
		Fields:   ports(),
	},
	{
		Name: "GreaterThan", Kind: KindBoolean,
		Desc: "Reports whether the first operand is greater than the second.",
		InPorts: ports(
			in("OPERAND1", TypeAny, "The left operand."),
			in("OPERAND2", TypeAny, "The right operand.")),
		OutPorts: ports(resultOut(TypeBoolean, "True when the first operand is greater.")),
		Fields:   ports(),
	},
	{
		Name: "LessThan", Kind: KindBoolean,
		Desc: "Reports whether the first operand is less than the second.",
		InPorts: ports(
			in("OPERAND1", TypeAny, "The left operand."),
			in("OPERAND2", TypeAny, "The right operand.")),
		OutPorts: ports(resultOut(TypeBoolean, "True when the first operand is smaller.")),
		Fields:   ports(),
	},
	{
		Name: "Equals", Kind: KindBoolean,
		Desc: "Reports whether two operands are equal.",
		InPorts: ports(
			in("OPERAND1", TypeAny, "The left operand."),
			in("OPERAND2", TypeAny, "The right operand.")),
		OutPorts: ports(resultOut(TypeBoolean, "True when the operands are equal.")),
		Fields:   ports(),
	},
	{
		Name: "And", Kind: KindBoolean,
		Desc: "Reports whether both conditions are true.",
		InPorts: ports(
			in("OPERAND1", TypeBoolean, "The first condition."),
			in("OPERAND2", TypeBoolean, "The second condition.")),
		OutPorts: ports(resultOut(TypeBoolean, "True when both conditions hold.")),
		Fields:   ports(),
	},
	{
		Name: "Or", Kind: KindBoolean,
		Desc: "Reports whether at least one condition is true.",
		InPorts: ports(
			in("OPERAND1", TypeBoolean, "The first condition."),
			in("OPERAND2", TypeBoolean, "The second condition.")),
		OutPorts: ports(resultOut(TypeBoolean, "True when either condition holds.")),
		Fields:   ports(),
	},
	{
		Name: "Not", Kind: KindBoolean,
		Desc:     "Reports the opposite of a condition.",
		InPorts:  ports(in("OPERAND", TypeBoolean, "The condition to negate.")),
		OutPorts: ports(resultOut(TypeBoolean, "True when the condition is false.")),
		Fields:   ports(),
	},
	{
		Name: "Join", Kind: KindReporter,
		Desc: "Reports the two strings joined together.",
		InPorts: ports(
			in("STRING1", TypeString, "The first string."),
			in("STRING2", TypeString, "The second string.")),
		OutPorts: ports(resultOut(TypeString, "The joined string.")),
		Fields:   ports(),
	},
	{
		Name: "LetterOf", Kind: KindReporter,
		Desc: "Reports the letter at the given position of a string, counting from 1.",
		InPorts: ports(
			in("LETTER_NUM", TypeNumber, "The 1-based position of the letter."),
			in("STRING", TypeString, "The string to index.")),
		OutPorts: ports(resultOut(TypeString, "The letter, or an empty string when out of range.")),
		Fields:   ports(),
	},
	{
		Name: "LengthOf", Kind: KindReporter,
		Desc:     "Reports the number of letters in a string.",
		InPorts:  ports(in("STRING", TypeString, "The string to measure.")),
		OutPorts: ports(resultOut(TypeNumber, "The number of letters.")),
		Fields:   ports(),
	},
	{
		Name: "Contains", Kind: KindBoolean,
		Desc: "Reports whether the first string contains the second.",
		InPorts: ports(
			in("STRING1", TypeString, "The string to search in."),
			in("STRING2", TypeString, "The string to search for.")),
		OutPorts: ports(resultOut(TypeBoolean, "True when the first string contains the second.")),
		Fields:   ports(),
	},
	{
		Name: "Mod", Kind: KindReporter,
		Desc: "Reports the remainder of dividing the first number by the second.",
		InPorts: ports(
			in("NUM1", TypeNumber, "The dividend."),
			in("NUM2", TypeNumber, "The divisor.")),
		OutPorts: ports(resultOut(TypeNumber, "The remainder.")),
		Fields:   ports(),
	},
	{
		Name: "Round", Kind: KindReporter,
		Desc:     "Reports the number rounded to the nearest integer.",
		InPorts:  ports(in("NUM", TypeNumber, "The number to round.")),
		OutPorts: ports(resultOut(TypeNumber, "The rounded number.")),
		Fields:   ports(),
	},
	{
		Name: "MathFunction", Kind: KindReporter,
		Desc:     "Applies the named math function (abs, floor, ceiling, sqrt, sin, cos, tan, asin, acos, atan, ln, log, e ^, 10 ^) to a number.",
		InPorts:  ports(in("NUM", TypeNumber, "The number to apply the function to.")),
		OutPorts: ports(resultOut(TypeNumber, "The function result.")),
		Fields:   ports(field("OPERATOR", TypeString, "The function name, e.g. \"sqrt\".")),
	},

	// Data
	{
		Name: "SetVariable", Kind: KindStack,
		Desc:     "Sets the named variable to the given value.",
		InPorts:  ports(execIn(), in("VALUE", TypeAny, "The value to store.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(field("VARIABLE", TypeString, "The variable name.")),
	},
	{
		Name: "ChangeVariableBy", Kind: KindStack,
		Desc:     "Changes the named variable by the given amount.",
		InPorts:  ports(execIn(), in("VALUE", TypeAny, "The amount to add.")),
		OutPorts: ports(thenOut()),
		Fields:   ports(field("VARIABLE", TypeString, "The variable name.")),
	},
	{
		Name: "GetVariable", Kind: KindReporter,
		Desc:     "Reports the value of the named variable.",
		InPorts:  ports(),
		OutPorts: ports(resultOut(TypeAny, "The variable's value, or 0 when unset.")),
		Fields:   ports(field("VARIABLE", TypeString, "The variable name.")),
	},
}
