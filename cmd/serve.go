package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/enterprise"
	"github.com/limitless-infotech/auralis/internal/knowledge"
	"github.com/limitless-infotech/auralis/internal/logger"
	"github.com/limitless-infotech/auralis/internal/server"
	"github.com/limitless-infotech/auralis/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Auralis chat server",
	Long:  `Starts the Auralis HTTP server with the chat API, websocket endpoint, analytics, and enterprise command interface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logger.New(cfg.LogLevel, cfg.LogFormat)
		defer log.Sync()

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		// The LLM tier is optional. Without a provider the responder
		// falls back to knowledge snippets and canned replies.
		provider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM provider unavailable: %v\n", err)
			fmt.Fprintln(os.Stderr, "Replies will use the knowledge base and canned responses only.")
			provider = nil
		}

		idx, err := createSemanticIndex(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		var semantic knowledge.Semantic
		if idx != nil {
			semantic = idx
		}

		ks := knowledge.NewStore(database, semantic, log)
		ctx := context.Background()
		if err := ks.Seed(ctx); err != nil {
			return fmt.Errorf("seeding knowledge base: %w", err)
		}
		if idx != nil {
			items, err := ks.Items(ctx)
			if err == nil {
				if err := idx.Index(ctx, items); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not index knowledge base: %v\n", err)
				}
			}
		}

		st := store.NewStore(database)
		responder := auralis.NewResponder(provider, cfg.Model, ks,
			time.Duration(cfg.Chat.LLMTimeoutSec)*time.Second, log)
		pipeline := auralis.NewPipeline(auralis.NewClassifier(), responder,
			auralis.NewRegistry(), st, log)
		interp := enterprise.NewInterpreter(pipeline, st, log)

		port := cfg.Server.Port
		if servePort != 0 {
			port = servePort
		}

		srv := server.New(server.Config{
			Port:        port,
			AllowAll:    cfg.Server.AllowAllCORS,
			StreamDelay: time.Duration(cfg.Chat.StreamDelayMS) * time.Millisecond,
		}, pipeline, st, interp, log)

		// Graceful shutdown.
		shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-shutdownCtx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "auralis server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DataDir)
		fmt.Fprintf(os.Stderr, "  Provider: %s\n", cfg.Provider)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured server port")
	rootCmd.AddCommand(serveCmd)
}
