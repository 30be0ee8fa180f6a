package models

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body posted to the chat completion endpoint.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message *ResponseMessage `json:"message"`
}

// ResponseMessage keeps Content nullable so a missing or null content can be
// told apart from an empty answer.
type ResponseMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

// FirstContent returns choices[0].message.content, ok is false when the
// path is absent from the response or content is null.
func (r *ChatCompletionResponse) FirstContent() (string, bool) {
	if len(r.Choices) == 0 || r.Choices[0].Message == nil || r.Choices[0].Message.Content == nil {
		return "", false
	}
	return *r.Choices[0].Message.Content, true
}
