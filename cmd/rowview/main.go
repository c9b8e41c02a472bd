// Command rowview lays out and previews rows described in a row catalog.
package main

import (
	"os"

	"github.com/go-drift/rowkit/cmd/rowview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
