package scratch

// Program is a set of scripts over a shared block registry. Each
// script is a chain of blocks starting at a hat block.
type Program struct {
	blocks  map[string]Block
	scripts []Block
}

func NewProgram() *Program {
	return &Program{blocks: make(map[string]Block)}
}

// AddBlock registers a block by id.
func (p *Program) AddBlock(b Block) { p.blocks[b.ID()] = b }

// Block returns a registered block by id.
func (p *Program) Block(id string) (Block, bool) {
	b, ok := p.blocks[id]
	return b, ok
}

// Scripts returns the script roots in the order they were added.
func (p *Program) Scripts() []Block { return p.scripts }

// AddScript appends a script root and registers every block reachable
// from it through next links, input children and substacks.
func (p *Program) AddScript(start Block) {
	p.scripts = append(p.scripts, start)
	p.register(start, map[string]bool{})
}

func (p *Program) register(b Block, seen map[string]bool) {
	if b == nil || seen[b.ID()] {
		return
	}
	seen[b.ID()] = true
	p.AddBlock(b)
	p.register(b.Next(), seen)
	for _, child := range b.childBlocks() {
		p.register(child, seen)
	}
	if h, ok := b.(substackHolder); ok {
		for _, stack := range h.substacks() {
			for _, sub := range stack {
				p.register(sub, seen)
			}
		}
	}
}

// Execute runs every script against a fresh state and returns the
// per-script results plus the final state.
func (p *Program) Execute() ([][]any, State, error) {
	return p.ExecuteState(NewState())
}

// ExecuteState runs every script against the given state. The first
// block error aborts the whole run.
func (p *Program) ExecuteState(s State) ([][]any, State, error) {
	results := make([][]any, 0, len(p.scripts))
	for _, script := range p.scripts {
		r, err := p.runScript(script, s)
		if err != nil {
			return nil, s, err
		}
		results = append(results, r)
	}
	return results, s, nil
}

func (p *Program) runScript(start Block, s State) ([]any, error) {
	results := []any{}
	for b := start; b != nil; b = b.Next() {
		r, err := b.Execute(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
