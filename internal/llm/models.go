package llm

import "fmt"

// Model is one of the model choices the harness accepts on the command line.
type Model string

const (
	ModelGPT      Model = "gpt"
	ModelQwen     Model = "qwen"
	ModelDeepseek Model = "deepseek"
	ModelLlama    Model = "llama"
)

// modelIDs maps each choice to the hosted model that serves it.
var modelIDs = map[Model]string{
	ModelGPT:      "openai/gpt-oss-120b",
	ModelQwen:     "qwen/qwen3-32b",
	ModelDeepseek: "deepseek-r1-distill-llama-70b",
	ModelLlama:    "llama-3.3-70b-versatile",
}

// reasoningEfforts carries the reasoning_effort each model is asked for.
// Models absent from the map do not take the parameter.
var reasoningEfforts = map[Model]string{
	ModelGPT:  "medium",
	ModelQwen: "default",
}

// Models lists the accepted model choices.
func Models() []Model {
	return []Model{ModelGPT, ModelQwen, ModelDeepseek, ModelLlama}
}

// ParseModel validates a CLI model name.
func ParseModel(s string) (Model, error) {
	m := Model(s)
	if _, ok := modelIDs[m]; !ok {
		return "", fmt.Errorf("unknown model %q (choices: gpt, qwen, deepseek, llama)", s)
	}
	return m, nil
}

// ID returns the provider-side identifier the model runs under.
func (m Model) ID() string {
	return modelIDs[m]
}

// ReasoningEffort returns the reasoning_effort to request, or "" when the
// model does not take one.
func (m Model) ReasoningEffort() string {
	return reasoningEfforts[m]
}
