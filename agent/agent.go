package agent

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// maxIterations caps how many times the model may be consulted for one
// question before the run is aborted.
const maxIterations = 10

type mathAgent struct {
	runnable            compose.Runnable[map[string]any, *schema.Message]
	conversationHistory []*schema.Message
}

func NewMathAgent(ctx context.Context, tpl prompt.ChatTemplate, cm model.ToolCallingChatModel, tn *compose.ToolsNode) (*mathAgent, error) {
	g, err := buildMathGraph(tpl, cm, tn)
	if err != nil {
		return nil, err
	}
	runnable, err := g.Compile(
		ctx,
		compose.WithMaxRunSteps(2*maxIterations+2),
	)
	if err != nil {
		return nil, err
	}
	return &mathAgent{
		runnable:            runnable,
		conversationHistory: make([]*schema.Message, 0),
	}, nil
}

// Run answers one question, driving tool calls until the model produces a
// final response.
func (a *mathAgent) Run(ctx context.Context, question string) (string, error) {
	input := map[string]any{
		"user_input":   question,
		"chat_history": a.conversationHistory,
	}
	result, err := a.runnable.Invoke(ctx, input)
	if err != nil {
		return "", err
	}
	a.conversationHistory = append(a.conversationHistory,
		schema.UserMessage(question),
		result)
	return result.Content, nil
}
