// Package llmtest provides a scriptable llm.Client for tests.
package llmtest

import (
	"context"
	"errors"
	"sync"

	"github.com/jonathan/interview-coach/internal/llm"
)

// ErrUnavailable is the default error returned by Failing clients.
var ErrUnavailable = errors.New("model backend unavailable")

// Client answers every call through Respond and records the prompts it saw.
type Client struct {
	Respond func(prompt string, tier llm.ModelTier) (string, error)

	mu      sync.Mutex
	prompts []string
}

// Static returns a client that always answers text.
func Static(text string) *Client {
	return &Client{Respond: func(string, llm.ModelTier) (string, error) { return text, nil }}
}

// Failing returns a client whose every call fails with err (ErrUnavailable when nil).
func Failing(err error) *Client {
	if err == nil {
		err = ErrUnavailable
	}
	return &Client{Respond: func(string, llm.ModelTier) (string, error) { return "", err }}
}

// GenerateContent implements llm.Client.
func (c *Client) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.Respond(prompt, tier)
}

// GenerateJSON implements llm.Client.
func (c *Client) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	text, err := c.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	return llm.CleanJSONBlock(text), nil
}

// GetModel implements llm.Client.
func (c *Client) GetModel(llm.ModelTier) string { return "fake" }

// Close implements llm.Client.
func (c *Client) Close() error { return nil }

// Prompts returns a copy of every prompt received so far.
func (c *Client) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}

// Calls returns the number of generation calls received.
func (c *Client) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}
