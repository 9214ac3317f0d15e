package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file with the signing key (RSA PKCS#1 v1.5, SHA-1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			key, err := appCtx.PrivateKey()
			if err != nil {
				return err
			}
			sig, err := appCtx.Extension.Sign(key, content)
			if err != nil {
				return err
			}

			if out == "" {
				out = args[0] + ".sig"
			}
			if err := os.WriteFile(out, sig, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signature written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "signature file (default <file>.sig)")
	return cmd
}
