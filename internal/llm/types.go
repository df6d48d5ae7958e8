package llm

import "time"

// GroqConfig holds configuration for the Groq client.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   Model
	Timeout time.Duration
}

// GroqMessage is a single chat message.
type GroqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GroqResponseFormat constrains the completion format. The harness always
// requests {"type": "json_object"} so the model emits a bare JSON graph.
type GroqResponseFormat struct {
	Type string `json:"type"`
}

// GroqRequest represents the chat completions request. Temperature, top_p,
// stream and stop are marshaled unconditionally so the request carries the
// same sampling settings every run.
type GroqRequest struct {
	Model               string              `json:"model"`
	Messages            []GroqMessage       `json:"messages"`
	Temperature         float64             `json:"temperature"`
	MaxCompletionTokens int                 `json:"max_completion_tokens"`
	TopP                float64             `json:"top_p"`
	ReasoningEffort     string              `json:"reasoning_effort,omitempty"`
	Stream              bool                `json:"stream"`
	Stop                []string            `json:"stop"`
	ResponseFormat      *GroqResponseFormat `json:"response_format,omitempty"`
}

// GroqResponse represents the chat completions response.
type GroqResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}
