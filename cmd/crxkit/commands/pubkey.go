package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"crxkit/internal/crypto"
	"crxkit/internal/domain"
)

func pubkeyCmd() *cobra.Command {
	var asBase64 bool
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of the signing key",
		Long: "Print the public key of the signing key.\n\n" +
			"DER is written as raw bytes unless --base64 is given; the base64 DER\n" +
			"form is the value of the manifest \"key\" field.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := appCtx.PrivateKey()
			if err != nil {
				return err
			}
			format := domain.KeyFormat(appCtx.Config.Format)
			if asBase64 {
				format = domain.FormatDER
			}
			pub, err := appCtx.Extension.PublicKey(cmd.Context(), key, format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asBase64:
				_, err = fmt.Fprintln(out, crypto.B64(pub))
			default:
				_, err = out.Write(pub)
			}
			return err
		},
	}
	cmd.Flags().String("format", "", `public key format: "der" or "pem" (default der)`)
	cmd.Flags().BoolVar(&asBase64, "base64", false, "print DER as base64")
	return cmd
}
