package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/improvement"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/questions"
	"github.com/jonathan/interview-coach/internal/server"
	"github.com/jonathan/interview-coach/internal/server/ratelimit"
	"github.com/jonathan/interview-coach/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the interview session, evaluation and report endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT and the config file)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.close()

	port := a.cfg.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}

	rl, err := ratelimit.LoadConfig()
	if err != nil {
		return err
	}

	ttl := time.Duration(a.cfg.SessionTTL)
	svc := interview.NewService(interview.Deps{
		Store:     session.NewMemoryStore(ttl, time.Duration(a.cfg.SessionCleanupInterval)),
		Engine:    questions.NewEngine(a.client, a.bank, a.logger),
		Evaluator: a.evaluator(),
		Composer:  improvement.NewComposer(a.client, a.logger),
		Logger:    a.logger,
		ReportTTL: ttl,
	})

	srv, err := server.New(server.Config{
		Port:         port,
		Service:      svc,
		RateLimit:    rl,
		Logger:       a.logger,
		WriteTimeout: 5 * time.Duration(a.cfg.LLMTimeout),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
