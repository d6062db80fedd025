package application

import (
	"context"
	"testing"

	configdomain "github.com/vivekdeshmukhrepos/multi-agent-requirement-to-code-generator/internal/features/config/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRespond(t *testing.T) {
	role := configdomain.RoleConfig{Name: "Echo", Instructions: "repeat after me"}
	params := configdomain.ModelParams{Temperature: 0.2, MaxTokens: 256}
	client := newFakeClient().on(role, text("\n\t hello world  \n"))

	reply, err := NewAgent(role, params, client).Respond(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello world", reply)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, "repeat after me", call.SystemPrompt)
	assert.Equal(t, "hello", call.UserPrompt)
	assert.Equal(t, float32(0.2), call.Temperature)
	assert.Equal(t, 256, call.MaxTokens)
}

func TestAgentRespondPropagatesError(t *testing.T) {
	role := configdomain.RoleConfig{Name: "Broken", Instructions: "fail"}
	client := newFakeClient().on(role, failing(errModelDown))

	_, err := NewAgent(role, configdomain.ModelParams{}, client).Respond(context.Background(), "hi")
	require.ErrorIs(t, err, errModelDown)
	assert.Contains(t, err.Error(), "Broken")
}

func TestAgentSharesClient(t *testing.T) {
	cfg := configdomain.DefaultAppConfig()
	client := newFakeClient().
		on(cfg.Roles.Requirements, text("a")).
		on(cfg.Roles.Aggregator, text("b"))

	first := NewAgent(cfg.Roles.Requirements, cfg.ModelParams, client)
	second := NewAgent(cfg.Roles.Aggregator, cfg.ModelParams, client)
	_, err := first.Respond(context.Background(), "x")
	require.NoError(t, err)
	_, err = second.Respond(context.Background(), "y")
	require.NoError(t, err)

	assert.Len(t, client.calls, 2)
	assert.Equal(t, "RequirementsAgent", first.Name())
}
