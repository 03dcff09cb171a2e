package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/amontero/math-agent/agent"
	"github.com/amontero/math-agent/settings"
)

const defaultQuestion = "What's the square root of 16 divided by two, squared? " +
	"Show me also the history of operations."

func main() {
	question := flag.String("q", defaultQuestion, "question to ask the math agent")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "02/01/2006 15:04:05",
	})
	if settings.Debug() {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()
	mathTools := agent.NewMathTools()
	tools, err := mathTools.Tools()
	if err != nil {
		logrus.Fatal(err)
	}
	tn, err := agent.NewToolsNode(ctx, tools)
	if err != nil {
		logrus.Fatal(err)
	}
	cm, err := agent.NewChatModel(ctx, tools)
	if err != nil {
		logrus.Fatal(err)
	}
	tpl := agent.NewChatTemplate(ctx)

	a, err := agent.NewMathAgent(ctx, tpl, cm, tn)
	if err != nil {
		logrus.Fatal(err)
	}

	answer, err := a.Run(ctx, *question)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("Agent response: %s", answer)
	fmt.Println(answer)
}
