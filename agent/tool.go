package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/compose"
	"github.com/sirupsen/logrus"
)

// reportWindow is how many of the most recent operations Report surfaces.
const reportWindow = 5

const emptyHistory = "No previous operations"

type operands struct {
	A int `json:"a" jsonschema:"description=first number"`
	B int `json:"b" jsonschema:"description=second number"`
}

type arithmeticResult struct {
	Result int `json:"result" jsonschema:"description=result of the operation"`
}

type historyParams struct{}

type historyResult struct {
	History string `json:"history" jsonschema:"description=last performed operations"`
}

// MathTools performs the arithmetic operations available to the agent and
// records every performed operation in order. One instance belongs to one
// agent; nothing here is safe for concurrent callers.
type MathTools struct {
	history []string
}

func NewMathTools() *MathTools {
	return &MathTools{}
}

// Diff returns a-b and records the operation.
func (m *MathTools) Diff(a, b int) int {
	result := a - b
	m.history = append(m.history, fmt.Sprintf("%d - %d = %d", a, b, result))
	return result
}

// Sum returns a+b and records the operation.
func (m *MathTools) Sum(a, b int) int {
	result := a + b
	m.history = append(m.history, fmt.Sprintf("%d + %d = %d", a, b, result))
	return result
}

// Report returns the most recent operations, oldest first, one per line.
func (m *MathTools) Report() string {
	if len(m.history) == 0 {
		return emptyHistory
	}
	start := len(m.history) - reportWindow
	if start < 0 {
		start = 0
	}
	return strings.Join(m.history[start:], "\n")
}

// Tools exposes the operations as self-describing function tools.
func (m *MathTools) Tools() ([]tool.BaseTool, error) {
	diffTool, err := utils.InferTool(
		"diff_values",
		"Calculates the difference between two numbers",
		func(ctx context.Context, params *operands) (*arithmeticResult, error) {
			logrus.Infof("Calculating difference: %d - %d", params.A, params.B)
			return &arithmeticResult{Result: m.Diff(params.A, params.B)}, nil
		})
	if err != nil {
		return nil, err
	}

	sumTool, err := utils.InferTool(
		"sum_values",
		"Sums two numbers",
		func(ctx context.Context, params *operands) (*arithmeticResult, error) {
			logrus.Infof("Calculating sum: %d + %d", params.A, params.B)
			return &arithmeticResult{Result: m.Sum(params.A, params.B)}, nil
		})
	if err != nil {
		return nil, err
	}

	historyTool, err := utils.InferTool(
		"get_history",
		"Gets the operation history",
		func(ctx context.Context, params *historyParams) (*historyResult, error) {
			logrus.Info("Retrieving operation history")
			return &historyResult{History: m.Report()}, nil
		})
	if err != nil {
		return nil, err
	}

	return []tool.BaseTool{diffTool, sumTool, historyTool}, nil
}

func NewToolsNode(ctx context.Context, tools []tool.BaseTool) (*compose.ToolsNode, error) {
	return compose.NewToolNode(ctx, &compose.ToolsNodeConfig{Tools: tools})
}
