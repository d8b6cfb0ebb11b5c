package personalai

import (
	"context"
	"net/http"
)

// DocumentParams carries an upload-text request. Text is required. IsStack
// nil means true: the document goes to memory rather than a draft.
type DocumentParams struct {
	Text       string
	Title      string
	StartTime  string // ISO timestamp
	EndTime    string // ISO timestamp
	DomainName string // per-call persona override; empty uses the instance default
	Tags       string // comma-delimited
	IsStack    *bool
}

// URLParams carries an upload-URL request, mirroring DocumentParams with the
// source URL instead of body text.
type URLParams struct {
	URL        string
	Title      string
	StartTime  string
	EndTime    string
	DomainName string
	Tags       string
	IsStack    *bool
}

type documentPayload struct {
	Text       string  `json:"Text"`
	Title      *string `json:"Title"`
	StartTime  *string `json:"StartTime"`
	EndTime    *string `json:"EndTime"`
	DomainName *string `json:"DomainName"`
	Tags       *string `json:"Tags"`
	IsStack    bool    `json:"is_stack"`
}

type urlPayload struct {
	URL        string  `json:"Url"`
	Title      *string `json:"Title"`
	StartTime  *string `json:"StartTime"`
	EndTime    *string `json:"EndTime"`
	DomainName *string `json:"DomainName"`
	Tags       *string `json:"Tags"`
	IsStack    bool    `json:"is_stack"`
}

// UploadDocument uploads a body of text to the Personal AI memory.
func (c *Client) UploadDocument(ctx context.Context, params DocumentParams) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/upload-text", nil, documentPayload{
		Text:       params.Text,
		Title:      nullable(params.Title),
		StartTime:  nullable(params.StartTime),
		EndTime:    nullable(params.EndTime),
		DomainName: nullable(c.domain(params.DomainName)),
		Tags:       nullable(params.Tags),
		IsStack:    stackDefault(params.IsStack),
	})
}

// UploadURL uploads the content behind a URL to the Personal AI memory.
func (c *Client) UploadURL(ctx context.Context, params URLParams) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, "/v1/upload", nil, urlPayload{
		URL:        params.URL,
		Title:      nullable(params.Title),
		StartTime:  nullable(params.StartTime),
		EndTime:    nullable(params.EndTime),
		DomainName: nullable(c.domain(params.DomainName)),
		Tags:       nullable(params.Tags),
		IsStack:    stackDefault(params.IsStack),
	})
}

// stackDefault resolves the IsStack tristate: uploads stack by default.
func stackDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
