package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA signing key and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := appCtx.Extension.CreateKey(cmd.Context(), appCtx.Config.Passphrase, force)
			if err != nil {
				return fmt.Errorf("keygen: %w", err)
			}
			if appCtx.Config.Passphrase == "" {
				appCtx.Log.Warn().Msg("key stored unencrypted; use -p to protect it")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key created.\nExtension ID: %s\n", info.ExtensionID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key")
	return cmd
}
