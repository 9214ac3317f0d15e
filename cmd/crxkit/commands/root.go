package commands

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"crxkit/internal/app"
)

var (
	cfgFile string
	appCtx  *app.App
)

// Execute runs the CLI and logs the final error, if any.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		logger(root.ErrOrStderr()).Error().Err(err).Msg("command failed")
	}
	return err
}

func newRootCmd() *cobra.Command {
	appCtx = nil
	root := &cobra.Command{
		Use:           "crxkit",
		Short:         "Browser extension key, ID and signature tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, app.NewLogger(cmd.ErrOrStderr(), cfg.Verbose))
			appCtx.Log.Debug().Str("home", cfg.Home).Str("key_file", cfg.KeyFile).Msg("configuration loaded")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default <home>/config.yaml)")
	pf.String("home", "", "key directory (default ~/.crxkit)")
	pf.String("key", "", "PEM private key file to use instead of the stored key")
	pf.StringP("passphrase", "p", "", "passphrase protecting the stored key")
	pf.BoolP("verbose", "v", false, "debug logging")

	root.AddCommand(keygenCmd(), pubkeyCmd(), idCmd(), signCmd(), verifyCmd())
	return root
}

// logger returns the configured logger, or a default one when configuration
// failed before it was built.
func logger(w io.Writer) *zerolog.Logger {
	if appCtx != nil {
		return &appCtx.Log
	}
	l := app.NewLogger(w, false)
	return &l
}
