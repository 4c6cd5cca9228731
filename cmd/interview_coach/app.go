package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/logging"
	"github.com/jonathan/interview-coach/internal/questions"
)

// app holds what every command builds from configuration.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	client llm.Client // nil when models are disabled
	bank   *questions.Bank
}

// newApp loads configuration and builds the logger, question bank and model
// client. offline skips the model client.
func newApp(ctx context.Context, offline bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return nil, err
	}

	bank, err := questions.LoadBank()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, bank: bank}
	if offline || !cfg.ModelsEnabled() {
		logger.Info("model backend disabled, using fallbacks")
		return a, nil
	}

	client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.LLMProvider, err)
	}
	a.client = client
	logger.Info("model backend ready",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", client.GetModel(llm.TierStandard)))
	return a, nil
}

func (a *app) evaluator() *evaluation.Evaluator {
	judge := evaluation.NewCorrectnessJudge(a.client, a.logger)
	return evaluation.NewEvaluator(judge, a.logger, evaluation.WithRules(a.bank))
}

func (a *app) close() {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.logger.Warn("failed to close model client", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
