// Package cmd implements the rowview CLI commands.
//
// Every command reads a row catalog (rowview.yaml at the project root, or
// the file named by --config), builds the selected row and reports on it.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/go-drift/rowkit/cmd/rowview/internal/config"
	"github.com/go-drift/rowkit/pkg/errors"
	"github.com/go-drift/rowkit/pkg/rowview"
	"github.com/go-drift/rowkit/pkg/style"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type rootOptions struct {
	config  string
	verbose bool
	row     string

	fs  afero.Fs
	dir string
}

// Execute runs the CLI with os.Args.
func Execute() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	return NewRootCommand(afero.NewOsFs(), dir).Execute()
}

// NewRootCommand returns the rowview command tree reading files from fs
// and resolving the project from dir.
func NewRootCommand(fs afero.Fs, dir string) *cobra.Command {
	opts := &rootOptions{fs: fs, dir: dir}
	root := &cobra.Command{
		Use:   "rowview",
		Short: "Lay out and preview list rows",
		Long: `rowview builds rows from a YAML row catalog and reports their layout.

The catalog is rowview.yaml at the root of the current Go module unless
--config names another file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			errors.SetHandler(&errors.LogHandler{Verbose: opts.verbose, Out: cmd.ErrOrStderr()})
		},
	}
	root.PersistentFlags().StringVar(&opts.config, "config", "", fmt.Sprintf("row catalog (default is <project root>/%s)", style.DefaultFileName))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "report layout problems with stack traces")

	root.AddCommand(newLayoutCommand(opts))
	root.AddCommand(newPreviewCommand(opts))
	root.AddCommand(newInitCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

func addRowFlag(cmd *cobra.Command, opts *rootOptions) {
	cmd.Flags().StringVarP(&opts.row, "row", "r", "", "row name (default is the first row in the catalog)")
}

// buildRow resolves the catalog, picks the requested row and builds it.
func (o *rootOptions) buildRow() (*rowview.IconRow, *config.Resolved, error) {
	resolved, err := config.Resolve(o.fs, o.dir, o.config)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := resolved.LoadCatalog(o.fs)
	if err != nil {
		return nil, nil, err
	}

	var r style.Row
	switch {
	case o.row != "":
		if r, err = catalog.Find(o.row); err != nil {
			return nil, nil, err
		}
	case len(catalog.Rows) > 0:
		r = catalog.Rows[0]
	default:
		return nil, nil, fmt.Errorf("%s has no rows", resolved.CatalogPath)
	}

	row, err := r.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("row %q: %w", r.Name, err)
	}
	return row, resolved, nil
}
