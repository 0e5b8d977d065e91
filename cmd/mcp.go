package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/enterprise"
	"github.com/limitless-infotech/auralis/internal/knowledge"
	"github.com/limitless-infotech/auralis/internal/logger"
	mcpserver "github.com/limitless-infotech/auralis/internal/mcp"
	"github.com/limitless-infotech/auralis/internal/store"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the Auralis chat pipeline, knowledge search, and portal commands as tools for AI agents.`,
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

		provider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			// Stdio is the protocol channel, warnings go to stderr.
			fmt.Fprintf(os.Stderr, "Warning: LLM provider unavailable: %v\n", err)
			provider = nil
		}

		ks := knowledge.NewStore(database, nil, log)
		if err := ks.Seed(context.Background()); err != nil {
			return fmt.Errorf("seeding knowledge base: %w", err)
		}

		st := store.NewStore(database)
		responder := auralis.NewResponder(provider, cfg.Model, ks,
			time.Duration(cfg.Chat.LLMTimeoutSec)*time.Second, log)
		pipeline := auralis.NewPipeline(auralis.NewClassifier(), responder,
			auralis.NewRegistry(), st, log)
		interp := enterprise.NewInterpreter(pipeline, st, log)

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintln(os.Stderr, "auralis MCP server started on stdio")

		srv := mcpserver.NewServer(pipeline, ks, interp)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
