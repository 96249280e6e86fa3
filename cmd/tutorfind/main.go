// Package main provides the TutorFind CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/team13/tutorfind-cli/internal/api"
	"github.com/team13/tutorfind-cli/internal/config"
	"github.com/team13/tutorfind-cli/internal/history"
	"github.com/team13/tutorfind-cli/internal/render"
	"github.com/team13/tutorfind-cli/internal/session"
	"github.com/team13/tutorfind-cli/internal/tui"
)

var (
	version = "0.1.0"
	pretty  = true

	client    *api.Client
	store     *session.Store
	out       *render.Renderer
	histStore *history.Store
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tutorfind",
		Short: "TutorFind - find and book private tutors",
		Long: `TutorFind: terminal client for the TutorFind tutor marketplace.

Usage modes:
  tutorfind            Start the interactive TUI
  tutorfind <command>  Run a specific command (see below)

Sign in with 'tutorfind login'; the session persists across invocations.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = api.New()
			store = session.New()
			// Corrupt session files are healed inside Load.
			_ = store.Load()
			out = render.New(pretty && config.Env().Pretty)

			// History is best-effort; the CLI works without it.
			histStore, _ = history.New()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if histStore != nil {
				histStore.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := tui.New(client, store)
			_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "Pretty print output")

	rootCmd.AddCommand(
		loginCmd(),
		logoutCmd(),
		registerCmd(),
		whoamiCmd(),
		searchCmd(),
		tutorCmd(),
		bookCmd(),
		sessionsCmd(),
		requestsCmd(),
		reviewCmd(),
		feedbackCmd(),
		availabilityCmd(),
		profileCmd(),
		subjectsCmd(),
		citiesCmd(),
		classesCmd(),
		enrollmentsCmd(),
		adminCmd(),
		historyCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, out.Failure(err.Error()))
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show TutorFind version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tutorfind version %s\n", version)
		},
	}
}

// requireToken returns the persisted bearer token or a sign-in hint.
func requireToken() (string, error) {
	if !store.LoggedIn() {
		return "", fmt.Errorf("not signed in; run 'tutorfind login' first")
	}
	return store.Token(), nil
}

// track runs fn and records the outcome in local history.
func track(op, detail string, fn func(ctx context.Context) error) error {
	ctx := context.Background()
	if histStore == nil {
		return fn(ctx)
	}
	pending := histStore.Begin(op, detail)
	err := fn(ctx)
	pending.Complete(ctx, err)
	return err
}
