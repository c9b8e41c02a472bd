package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/go-drift/rowkit/cmd/rowview/internal/config"
	"github.com/go-drift/rowkit/pkg/style"
)

// sampleCatalog is written by "rowview init".
func sampleCatalog() *style.Catalog {
	return &style.Catalog{Rows: []style.Row{
		{
			Name:         "account",
			Title:        style.Text{Text: "Account", Weight: "semibold"},
			Subtitle:     style.Text{Text: "Signed in"},
			ShowsDivider: true,
			Left:         style.Accessory{Image: "avatar"},
			Right:        style.Accessory{Image: "chevron", Width: 12, Height: 12},
		},
		{
			Name:      "storage",
			Title:     style.Text{Text: "Storage"},
			Subtitle:  style.Text{Text: "12.4 GB of 64 GB used", Color: "#8E8E93"},
			TextOrder: "subtitle_first",
			Left:      style.Accessory{Image: "disk", Style: "rounded", Radius: 8},
		},
		{
			Name:    "loading",
			Title:   style.Text{Text: "Loading"},
			Loading: true,
		},
	}}
}

func newInitCommand(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample row catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := config.Resolve(opts.fs, opts.dir, opts.config)
			if err != nil {
				return err
			}
			path := resolved.CatalogPath
			exists, err := afero.Exists(opts.fs, path)
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := sampleCatalog().ToFile(opts.fs, path); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing catalog")
	return cmd
}
