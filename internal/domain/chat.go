package domain

// ChatRole represents the originator of a conversation turn.
type ChatRole string

const (
	ChatRole_User  ChatRole = "user"
	ChatRole_Model ChatRole = "model"
	ChatRole_Tool  ChatRole = "tool"
)

// ChatRequest is one inbound assistant prompt with its caller context.
// Built per request and discarded after the response.
type ChatRequest struct {
	Prompt      string
	OwnerSeq    int64
	ClientAddr  string
	DisplayName string
}

// HasOwnerContext reports whether the request carries the caller identity
// a mutating tool call needs.
func (r ChatRequest) HasOwnerContext() bool {
	return r.OwnerSeq > 0 && r.ClientAddr != ""
}

// ChatResponse is the sole externally visible output of the assistant.
// Success=false always comes with a non-empty Error and empty Response.
type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// FunctionCall is a structured request from the LLM to execute a named
// local operation with the given arguments.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// FunctionResult carries the outcome of one executed function call back
// into the conversation.
type FunctionResult struct {
	Name    string
	Content map[string]any
}

// ChatTurn is one exchange unit in the conversation sent to the LLM:
// user text, a model function call, or a tool result.
type ChatTurn struct {
	Role           ChatRole
	Text           string
	FunctionCall   *FunctionCall
	FunctionResult *FunctionResult
}

// Conversation is the payload for one LLM exchange. Turns are append-only
// and reflect real call order. Never persisted.
type Conversation struct {
	SystemInstruction string
	Turns             []ChatTurn
}

// AppendUserText appends a user text turn.
func (c *Conversation) AppendUserText(text string) {
	c.Turns = append(c.Turns, ChatTurn{Role: ChatRole_User, Text: text})
}

// AppendFunctionCall appends the model's function-call turn.
func (c *Conversation) AppendFunctionCall(call FunctionCall) {
	c.Turns = append(c.Turns, ChatTurn{Role: ChatRole_Model, FunctionCall: &call})
}

// AppendFunctionResult appends a tool-result turn.
func (c *Conversation) AppendFunctionResult(result FunctionResult) {
	c.Turns = append(c.Turns, ChatTurn{Role: ChatRole_Tool, FunctionResult: &result})
}
