package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/seeygo/internal/actions"
	"github.com/sandeepkv93/seeygo/internal/ai"
	"github.com/sandeepkv93/seeygo/internal/frameq"
	"github.com/sandeepkv93/seeygo/internal/metrics"
	"github.com/sandeepkv93/seeygo/internal/model"
	"github.com/sandeepkv93/seeygo/internal/storage"
	"github.com/sandeepkv93/seeygo/internal/store"
	"github.com/sandeepkv93/seeygo/internal/update"
)

var rootCmd = &cobra.Command{
	Use:   "seeygo",
	Short: "Terminal todo manager with LLM task optimization",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	rootCmd.AddCommand(optimizeCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("SEEYGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("data-dir", "", "data directory (default ~/.seeygo)")
	rootCmd.PersistentFlags().String("ai-provider", "", "LLM provider identifier")
	rootCmd.PersistentFlags().String("ai-api-key", "", "LLM API key")
	rootCmd.PersistentFlags().String("ai-model", "", "LLM model name")
	rootCmd.PersistentFlags().String("ai-base-url", "", "custom LLM API base URL")
	for _, name := range []string{"data-dir", "ai-provider", "ai-api-key", "ai-model", "ai-base-url"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func dataDir() (string, error) {
	dir := viper.GetString("data-dir")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".seeygo")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// newLogger writes to a log file in the data directory; logging to the
// terminal would fight with the TUI.
func newLogger(dir string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	f, err := os.OpenFile(filepath.Join(dir, "seeygo.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	return log
}

func runTUI() error {
	dir, err := dataDir()
	if err != nil {
		return err
	}
	log := newLogger(dir)

	db, err := storage.OpenSQLite(filepath.Join(dir, "seeygo.db"))
	if err != nil {
		return err
	}
	defer db.Close()
	kv, err := storage.NewKV(db, log)
	if err != nil {
		return err
	}

	st := store.New(kv, log)
	st.Hydrate()

	notices := update.NewNoticeBuffer()
	acts := actions.New(st, log, metrics.NewCollector(), frameq.New(), notices.Push)
	optimizer := ai.NewOptimizer(ai.ConfigFromViper(viper.GetViper()), log)

	program := tea.NewProgram(update.NewModel(st, acts, optimizer).WithNotices(notices))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("seeygo failed: %w", err)
	}
	return nil
}

func optimizeCmd() *cobra.Command {
	var categoryName string
	var streamOut bool
	cmd := &cobra.Command{
		Use:   "optimize [text]",
		Short: "Turn free text into a structured task draft",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			log.SetOutput(io.Discard)
			optimizer := ai.NewOptimizer(ai.ConfigFromViper(viper.GetViper()), log)
			req := ai.Request{Input: strings.Join(args, " "), CategoryName: categoryName}

			if streamOut {
				return runStreamedOptimize(cmd, optimizer, req)
			}
			draft, err := optimizer.Optimize(cmd.Context(), req)
			if err != nil {
				return err
			}
			printDraft(cmd, draft)
			return nil
		},
	}
	cmd.Flags().StringVar(&categoryName, "category", "", "category name used as context")
	cmd.Flags().BoolVar(&streamOut, "stream", false, "stream the model output while it arrives")
	return cmd
}

func runStreamedOptimize(cmd *cobra.Command, optimizer *ai.Optimizer, req ai.Request) error {
	for ev := range optimizer.OptimizeStream(context.Background(), req) {
		switch ev.Kind {
		case ai.EventChunk:
			fmt.Fprint(cmd.OutOrStdout(), ev.Content)
		case ai.EventComplete:
			fmt.Fprintln(cmd.OutOrStdout())
			printDraft(cmd, ev.Draft)
		case ai.EventError:
			return ev.Err
		}
	}
	return nil
}

func printDraft(cmd *cobra.Command, draft model.TaskDraft) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "title:    %s\n", draft.Title)
	if draft.Description != "" {
		fmt.Fprintf(out, "desc:     %s\n", draft.Description)
	}
	fmt.Fprintf(out, "priority: %s\n", draft.Priority)
	if draft.DueDate != nil {
		fmt.Fprintf(out, "due:      %s\n", draft.DueDate.Format("2006-01-02"))
	}
	if len(draft.Tags) > 0 {
		fmt.Fprintf(out, "tags:     #%s\n", strings.Join(draft.Tags, " #"))
	}
	if draft.Reasoning != "" {
		fmt.Fprintf(out, "reasoning: %s\n", draft.Reasoning)
	}
}
