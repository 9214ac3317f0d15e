package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crxkit/internal/domain"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file> <signature-file>",
		Short: "Verify a signature against the signing key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sig, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			key, err := appCtx.PrivateKey()
			if err != nil {
				return err
			}
			if err := appCtx.Extension.Verify(cmd.Context(), key, content, domain.Signature(sig)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature OK")
			return nil
		},
	}
}
