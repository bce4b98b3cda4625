package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/skillverse/internal/config"
	"github.com/spf13/cobra"
)

// lookupEnv is a test seam for the environment.
var lookupEnv = os.LookupEnv

// runner owns the App of one command invocation.
type runner struct {
	app *App
}

func (r *runner) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags(), lookupEnv)
	if err != nil {
		return err
	}
	app, err := NewApp(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	r.app = app
	return nil
}

func (r *runner) close() error {
	if r.app == nil {
		return nil
	}
	err := r.app.Close()
	r.app = nil
	return err
}

// run adapts an App method to cobra, translating errors into the messages
// the REPL prints.
func (r *runner) run(name string, fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd.Context(), r.app, args); err != nil {
			return &commandError{msg: describe(name, err), err: err}
		}
		return nil
	}
}

func (a *App) repl(ctx context.Context) error {
	a.println("Welcome to SkillVerse CLI (type 'help' for commands)")
	runREPL(ctx, a, a.reader, a.out)
	return nil
}

func startREPL(ctx context.Context, a *App, _ []string) error {
	return a.repl(ctx)
}

// NewRootCmd builds the skillverse command tree. Every command opens the
// configured store before it runs; Execute closes it afterwards.
func NewRootCmd() (*cobra.Command, func() error) {
	r := &runner{}

	root := &cobra.Command{
		Use:               "skillverse",
		Short:             "SkillVerse learning tracker",
		Long:              "Track courses, quizzes, certificates and interview practice on this device.",
		SilenceUsage:      true,
		PersistentPreRunE: r.open,
		Args:              cobra.NoArgs,
		RunE:              r.run("repl", startREPL),
	}
	config.BindFlags(root.PersistentFlags())

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell (default)",
		Args:  cobra.NoArgs,
		RunE:  r.run("repl", startREPL),
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: r.run("register", func(ctx context.Context, a *App, _ []string) error {
			return a.Register(ctx)
		}),
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: r.run("login", func(ctx context.Context, a *App, _ []string) error {
			return a.Login(ctx)
		}),
	}

	resetCmd := &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Set a new password for an account",
		Args:  cobra.ExactArgs(1),
		RunE: r.run("reset-password", func(ctx context.Context, a *App, args []string) error {
			return a.ResetPassword(ctx, args[0])
		}),
	}

	var exportS3 bool
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup snapshot of the store",
		Args:  cobra.NoArgs,
		RunE: r.run("export", func(ctx context.Context, a *App, _ []string) error {
			return a.Export(ctx, exportS3)
		}),
	}
	exportCmd.Flags().BoolVar(&exportS3, "s3", false, "upload to the configured S3 bucket")

	var importS3 bool
	importCmd := &cobra.Command{
		Use:   "import <file|key>",
		Short: "Replace the store content with a backup snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: r.run("import", func(ctx context.Context, a *App, args []string) error {
			return a.Import(ctx, args[0], importS3)
		}),
	}
	importCmd.Flags().BoolVar(&importS3, "s3", false, "download from the configured S3 bucket")

	var yes bool
	wipeCmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every account and record on this device",
		Args:  cobra.NoArgs,
		RunE: r.run("clear-data", func(ctx context.Context, a *App, _ []string) error {
			return a.ClearData(ctx, yes)
		}),
	}
	wipeCmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	root.AddCommand(replCmd, registerCmd, loginCmd, resetCmd, exportCmd, importCmd, wipeCmd)
	return root, r.close
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context) error {
	root, closeFn := NewRootCmd()
	err := root.ExecuteContext(ctx)
	return errors.Join(err, closeFn())
}
