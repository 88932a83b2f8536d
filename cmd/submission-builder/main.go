// cmd/submission-builder/main.go
//
// This is the entry point for the submission builder CLI.
//
// Flow:
// 1. Resolve and initialize the home directory (config, state, logs)
// 2. Open the draft store and restore any saved draft
// 3. Run the requested front end: the full-screen wizard by default,
//    `prompt` for line-by-line questions, `render` to print the document

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/submission-builder/internal/prompt"
	"github.com/kingrea/submission-builder/internal/render"
	"github.com/kingrea/submission-builder/internal/tui"
)

var clipboardWriteAll = clipboard.WriteAll

type rootFlags struct {
	home    string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "submission-builder",
		Short: "Build a submission on the Regulatory Standards Bill",
		Long: `Walks through the consultation questions step by step and assembles a
plain-text submission ready to paste into the official form.

Answers are saved after every edit, so quitting and coming back later picks
up where you left off.

Run without arguments to start the full-screen wizard.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(flags)
			if err != nil {
				return err
			}
			defer sess.Close()
			return runWizard(sess)
		},
	}
	root.PersistentFlags().StringVar(&flags.home, "home", "", "data directory (default $SUBMISSION_HOME or the user config dir)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "write debug entries to the log file")

	root.AddCommand(newRenderCmd(flags), newPromptCmd(flags))
	return root
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var copyToClipboard bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the submission document for the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			if sess.warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), sess.warning)
			}
			doc := render.Document(sess.store.Draft())
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), doc); err != nil {
				return err
			}
			if !copyToClipboard {
				return nil
			}
			if err := clipboardWriteAll(doc); err != nil {
				sess.logger.Warn("clipboard write failed", zap.Error(err))
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			sess.logger.Info("submission copied to clipboard", zap.Int("bytes", len(doc)))
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "also copy the document to the clipboard")
	return cmd
}

func newPromptCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Answer the questions one at a time without the full-screen UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(flags)
			if err != nil {
				return err
			}
			defer sess.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if sess.warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), sess.warning)
			}
			runner := prompt.NewRunner(sess.store, prompt.NewSurveyDriver(cmd.OutOrStdout()),
				prompt.WithClipboard(clipboardWriteAll),
				prompt.WithDestinationURL(sess.config.DestinationURL()),
				prompt.WithLogger(sess.logger),
			)
			err = runner.Run(ctx)
			if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Stopped. Your answers so far are saved.")
				return nil
			}
			return err
		},
	}
}

func runWizard(sess *session) error {
	app := tui.NewApp(sess.store,
		tui.WithDestinationURL(sess.config.DestinationURL()),
		tui.WithLogger(sess.logger),
		tui.WithLoadResult(sess.loaded),
	)
	// Use alternate screen buffer (like vim does)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
