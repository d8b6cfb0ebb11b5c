package personalai

import (
	"context"
	"net/http"
)

// MessageParams carries the fields shared by SendAIMessage and
// SendAIInstruction. Text is required; empty optional fields go out on the
// wire as explicit nulls.
type MessageParams struct {
	Text       string
	Context    string
	DomainName string // per-call persona override; empty uses the instance default
	UserName   string
	SessionID  string
	SourceName string
	IsStack    bool // add the user message to memory
	IsDraft    bool // create a copilot message for the AI
}

type messagePayload struct {
	Text       string  `json:"Text"`
	Context    *string `json:"Context"`
	DomainName *string `json:"DomainName"`
	UserName   *string `json:"UserName"`
	SessionID  *string `json:"SessionId"`
	SourceName *string `json:"SourceName"`
	IsStack    bool    `json:"is_stack"`
	IsDraft    bool    `json:"is_draft"`
}

// SendAIMessage sends a message to the AI for a response.
func (c *Client) SendAIMessage(ctx context.Context, params MessageParams) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/message", nil, c.messagePayload(params))
}

// SendAIInstruction interacts with an AI message by sending an instruction.
func (c *Client) SendAIInstruction(ctx context.Context, params MessageParams) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/instruction?cmd=search", nil, c.messagePayload(params))
}

func (c *Client) messagePayload(params MessageParams) messagePayload {
	return messagePayload{
		Text:       params.Text,
		Context:    nullable(params.Context),
		DomainName: nullable(c.domain(params.DomainName)),
		UserName:   nullable(params.UserName),
		SessionID:  nullable(params.SessionID),
		SourceName: nullable(params.SourceName),
		IsStack:    params.IsStack,
		IsDraft:    params.IsDraft,
	}
}
