package agent

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"

	"github.com/amontero/math-agent/settings"
)

// NewChatModel builds the chat model with the given tools bound to it.
func NewChatModel(ctx context.Context, tools []tool.BaseTool) (model.ToolCallingChatModel, error) {
	maxTokens := settings.MaxTokens()
	temperature := settings.TemperatureBalanced
	topP := settings.TopPCreative

	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      settings.APIKey(),
		Model:       settings.Model(),
		BaseURL:     settings.BaseURL(),
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		TopP:        &topP,
	})
	if err != nil {
		return nil, err
	}

	var toolsInfo []*schema.ToolInfo
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, err
		}
		toolsInfo = append(toolsInfo, info)
	}

	if err := cm.BindTools(toolsInfo); err != nil {
		return nil, err
	}
	logrus.Infof("Model %s loaded", settings.Model())
	return cm, nil
}
