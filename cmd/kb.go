package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/limitless-infotech/auralis/internal/knowledge"
	"github.com/limitless-infotech/auralis/internal/logger"
	"github.com/limitless-infotech/auralis/internal/progress"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Manage the Auralis knowledge base",
}

var kbImportCmd = &cobra.Command{
	Use:   "import <file.yml>",
	Short: "Import knowledge entries from a YAML file",
	Long:  `Imports knowledge entries from a YAML file into the knowledge base. Entries missing a category or content are skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logger.New(cfg.LogLevel, cfg.LogFormat)
		defer log.Sync()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}

		var items []knowledge.Item
		if err := yaml.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("parsing import file: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("no knowledge entries found in %s", args[0])
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		ks := knowledge.NewStore(database, nil, log)
		ctx := context.Background()

		rep := progress.NewReporter()
		rep.Start(len(items))
		imported := 0
		for i, item := range items {
			n, err := ks.Import(ctx, []knowledge.Item{item})
			if err != nil {
				return fmt.Errorf("importing entry %d: %w", i+1, err)
			}
			imported += n
			rep.Update(i+1, item.Title)
		}
		rep.Finish()

		fmt.Fprintf(os.Stderr, "Imported %d of %d entries (skipped %d incomplete)\n",
			imported, len(items), len(items)-imported)
		return nil
	},
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge base entries",
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

		ks := knowledge.NewStore(database, nil, log)
		items, err := ks.Items(context.Background())
		if err != nil {
			return fmt.Errorf("listing knowledge base: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("Knowledge base is empty. Run `auralis serve` once to seed it, or `auralis kb import`.")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%-12s %s\n", item.Category, item.Title)
			if verbose {
				fmt.Printf("             %s\n", item.Content)
			}
		}
		fmt.Printf("\n%d entries\n", len(items))
		return nil
	},
}

func init() {
	kbCmd.AddCommand(kbImportCmd)
	kbCmd.AddCommand(kbListCmd)
	rootCmd.AddCommand(kbCmd)
}
