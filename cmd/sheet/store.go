package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	sheetrepo "github.com/KirkDiggler/digimon-sheet/internal/repositories/sheet"
)

func newStoreCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the sheet library",
		Long: `Copy sheets between local files and the sheet library. The library
backend is chosen with --store (file, redis or sqlite).`,
	}

	cmd.AddCommand(newStoreListCmd(root))
	cmd.AddCommand(newStorePushCmd(root))
	cmd.AddCommand(newStorePullCmd(root))

	return cmd
}

func newStoreListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sheets in the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			library, cleanup, err := root.openLibrary(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			listed, err := library.List(cmd.Context(), sheetrepo.ListInput{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(listed.Entries) == 0 {
				fmt.Fprintln(out, "No sheets stored")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "LOCATION\tNAME\tUPDATED")
			for _, e := range listed.Entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Location, e.Name, e.UpdatedAt.UTC().Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}

func newStorePushCmd(root *rootOptions) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "push PATH",
		Short: "Copy a sheet file into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			files, err := sheetrepo.NewFile(&sheetrepo.FileConfig{})
			if err != nil {
				return err
			}
			loaded, err := files.Get(ctx, sheetrepo.GetInput{Location: args[0]})
			if err != nil {
				return err
			}

			library, cleanup, err := root.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if as == "" {
				as = libraryName(args[0])
			}
			saved, err := library.Put(ctx, sheetrepo.PutInput{Location: as, Record: loaded.Record})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pushed %s as %s\n", loaded.Location, saved.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "library location (defaults to the file name without extension)")
	return cmd
}

func newStorePullCmd(root *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pull LOCATION --out PATH",
		Short: "Copy a sheet from the library to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			library, cleanup, err := root.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			loaded, err := library.Get(ctx, sheetrepo.GetInput{Location: args[0]})
			if err != nil {
				return err
			}

			files, err := sheetrepo.NewFile(&sheetrepo.FileConfig{})
			if err != nil {
				return err
			}
			saved, err := files.Put(ctx, sheetrepo.PutInput{Location: out, Record: loaded.Record})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pulled %s to %s\n", loaded.Location, saved.Location)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write")
	cmd.MarkFlagRequired("out") // nolint:errcheck

	return cmd
}

// libraryName is the default library location for a sheet file
func libraryName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
