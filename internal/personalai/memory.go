package personalai

import (
	"context"
	"net/http"
)

// MemoryParams carries a plain-text memory for the memory stack. Text is
// required; SourceName tells the AI where the memory came from.
type MemoryParams struct {
	Text        string
	CreatedTime string // time including timezone, helps recall when it is from
	SourceName  string
	RawFeedText string // preformatted text stored as-is
	DomainName  string // per-call persona override; empty uses the instance default
	Tags        string // comma-delimited
}

type memoryPayload struct {
	Text        string  `json:"Text"`
	CreatedTime *string `json:"CreatedTime"`
	SourceName  *string `json:"SourceName"`
	RawFeedText *string `json:"RawFeedText"`
	DomainName  *string `json:"DomainName"`
	Tags        *string `json:"Tags"`
}

// UploadMemory uploads a text memory to the Personal AI memory stack.
func (c *Client) UploadMemory(ctx context.Context, params MemoryParams) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/memory", nil, memoryPayload{
		Text:        params.Text,
		CreatedTime: nullable(params.CreatedTime),
		SourceName:  nullable(params.SourceName),
		RawFeedText: nullable(params.RawFeedText),
		DomainName:  nullable(c.domain(params.DomainName)),
		Tags:        nullable(params.Tags),
	})
}
