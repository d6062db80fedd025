package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	configdomain "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/infrastructure"
)

var errModelDown = errors.New("model down")

// fakeClient answers by role, keyed on the system prompt, and records every call.
type fakeClient struct {
	mu      sync.Mutex
	calls   []infrastructure.CompletionRequest
	replies map[string]func(n int) (string, error)
	counts  map[string]int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		replies: map[string]func(int) (string, error){},
		counts:  map[string]int{},
	}
}

func (f *fakeClient) on(role configdomain.RoleConfig, reply func(n int) (string, error)) *fakeClient {
	f.replies[role.Instructions] = reply
	return f
}

func (f *fakeClient) Complete(ctx context.Context, req infrastructure.CompletionRequest) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.counts[req.SystemPrompt]++
	n := f.counts[req.SystemPrompt]
	reply, ok := f.replies[req.SystemPrompt]
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no reply configured for system prompt %q", req.SystemPrompt)
	}
	return reply(n)
}

func (f *fakeClient) callsFor(role configdomain.RoleConfig) []infrastructure.CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []infrastructure.CompletionRequest
	for _, c := range f.calls {
		if c.SystemPrompt == role.Instructions {
			out = append(out, c)
		}
	}
	return out
}

func text(s string) func(int) (string, error) {
	return func(int) (string, error) { return s, nil }
}

func numbered(format string) func(int) (string, error) {
	return func(n int) (string, error) { return fmt.Sprintf(format, n), nil }
}

func failing(err error) func(int) (string, error) {
	return func(int) (string, error) { return "", err }
}
