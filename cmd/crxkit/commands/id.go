package commands

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"crxkit/internal/domain"
	"crxkit/internal/store"
)

func idCmd() *cobra.Command {
	var fromPath bool
	cmd := &cobra.Command{
		Use:   "id [key-file | --path install-dir]...",
		Short: "Print extension IDs",
		Long: "Print extension IDs.\n\n" +
			"Without arguments, prints the ID of the signing key. Arguments are PEM\n" +
			"key files, or with --path the directories unpacked extensions are\n" +
			"loaded from.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if fromPath {
					return fmt.Errorf("--path needs at least one install path")
				}
				info, err := appCtx.KeyInfo(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), info.ExtensionID)
				return nil
			}

			ids, err := deriveIDs(cmd.Context(), args, fromPath)
			if err != nil {
				return err
			}
			for i, id := range ids {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", id, args[i])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromPath, "path", false, "treat arguments as unpacked extension paths")
	return cmd
}

// deriveIDs computes one ID per input concurrently, preserving input order.
func deriveIDs(ctx context.Context, inputs []string, fromPath bool) ([]domain.Identifier, error) {
	ids := make([]domain.Identifier, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if fromPath {
				ids[i] = appCtx.Extension.IdentifierForPath(in)
				return nil
			}
			key, err := store.ReadKeyFile(in)
			if err != nil {
				return err
			}
			info, err := appCtx.Extension.DescribeKey(ctx, key)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			ids[i] = info.ExtensionID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}
