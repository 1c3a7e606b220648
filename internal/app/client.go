package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// FallbackReply substitutes for a 2xx response whose body carries none
// of the known reply fields.
const FallbackReply = "I apologize, but I couldn't process that request."

// TransportError is a non-2xx answer from the assistant endpoint.
type TransportError struct {
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("assistant endpoint returned status %d", e.Status)
}

// AssistantClient dispatches one exchange to the remote assistant
// endpoint as a single multipart POST. There is no timeout and no
// retry: a dispatched request is awaited to completion.
//
// The endpoint scheme "mock://" short-circuits to a deterministic
// offline reply, for running the client without a backend.
type AssistantClient struct {
	Endpoint   string
	FormatType string
	HTTP       *http.Client
}

func NewAssistantClient(endpoint string) *AssistantClient {
	return &AssistantClient{
		Endpoint:   endpoint,
		FormatType: "markdown",
		HTTP:       &http.Client{},
	}
}

// assistantResponse covers the backend's reply-field aliases. The
// field priority accommodates an unstable backend contract and is
// deliberate.
type assistantResponse struct {
	Reply    string `json:"reply"`
	Response string `json:"response"`
	Message  string `json:"message"`
}

// Send posts the text (possibly empty) and optional file, and returns
// the assistant's reply text. The reply is resolved from the first
// populated of reply/response/message; any other 2xx shape yields
// FallbackReply. Transport failures and non-2xx statuses return an
// error.
func (c *AssistantClient) Send(ctx context.Context, text string, file *Attachment) (string, error) {
	if strings.HasPrefix(c.Endpoint, "mock://") {
		return c.mockReply(text, file), nil
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("message", text); err != nil {
		return "", err
	}
	if err := w.WriteField("format_type", c.FormatType); err != nil {
		return "", err
	}
	if file != nil {
		part, err := w.CreateFormFile("file", file.Name)
		if err != nil {
			return "", err
		}
		if _, err := part.Write(file.Data); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed assistantResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return FallbackReply, nil
	}
	switch {
	case parsed.Reply != "":
		return parsed.Reply, nil
	case parsed.Response != "":
		return parsed.Response, nil
	case parsed.Message != "":
		return parsed.Message, nil
	}
	return FallbackReply, nil
}

func (c *AssistantClient) mockReply(text string, file *Attachment) string {
	if file != nil {
		return fmt.Sprintf("Received **%s**. Ask me anything about it.", file.Name)
	}
	if strings.TrimSpace(text) == "" {
		return FallbackReply
	}
	return "You said: " + text
}
