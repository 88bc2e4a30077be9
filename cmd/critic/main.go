package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/talvey/aha-critic/config"
	"github.com/talvey/aha-critic/internal/aha"
	"github.com/talvey/aha-critic/internal/analyzer"
	"github.com/talvey/aha-critic/internal/notify"
	"github.com/talvey/aha-critic/internal/server"
)

func main() {
	log.Println("🚀 Aha! Idea Critic Starting...")

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	var reviewer server.Analyzer
	switch cfg.CritiquePolicy {
	case config.PolicyGenerative:
		reviewer = analyzer.NewOpenAIAnalyzer(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		log.Printf("🤖 Critique policy: generative (%s)", cfg.OpenAIModel)
	default:
		reviewer = analyzer.NewStaticAnalyzer()
		log.Println("📝 Critique policy: static")
	}

	ahaClient := aha.NewClient(cfg.AhaBaseURL, cfg.AhaToken)
	notifier := notify.NewNotifier(cfg.SlackWebhookURL)
	if cfg.SlackWebhookURL == "" {
		log.Println("Slack webhook not configured, notifications will be skipped")
	}

	srv := server.NewServer(cfg.AhaBaseURL, reviewer, ahaClient, notifier)

	go func() {
		if err := srv.Start(cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Println("✅ System initialized successfully")
	log.Println("")
	log.Println("Service is running. Press Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")
}
