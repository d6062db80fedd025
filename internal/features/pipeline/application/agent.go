package application

import (
	"context"
	"fmt"
	"strings"

	configdomain "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"
	"github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/pipeline/infrastructure"
)

// Agent is one role bound to the shared model client.
type Agent struct {
	role   configdomain.RoleConfig
	params configdomain.ModelParams
	client infrastructure.ChatClient
}

// NewAgent binds role to client. The client is shared, not owned.
func NewAgent(role configdomain.RoleConfig, params configdomain.ModelParams, client infrastructure.ChatClient) *Agent {
	return &Agent{role: role, params: params, client: client}
}

func (a *Agent) Name() string { return a.role.Name }

// Respond sends prompt as a single user turn under the role's instructions
// and returns the trimmed reply.
func (a *Agent) Respond(ctx context.Context, prompt string) (string, error) {
	reply, err := a.client.Complete(ctx, infrastructure.CompletionRequest{
		SystemPrompt: a.role.Instructions,
		UserPrompt:   prompt,
		Temperature:  a.params.Temperature,
		MaxTokens:    a.params.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.role.Name, err)
	}
	return strings.TrimSpace(reply), nil
}
