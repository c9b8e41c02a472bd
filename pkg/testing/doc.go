// Package testing provides helpers for testing views and rows: a fake
// animation clock, view-tree finders, an error recorder and golden
// snapshot comparison.
//
// Control time for deterministic shimmer tests:
//
//	clk := rowtest.UseFakeClock(t)
//	row.ShowLoadingPlaceholder()
//	clk.Frame(100 * time.Millisecond)
//
// Compare laid out trees against golden files:
//
//	rowtest.MatchesFile(t, view.Capture(row), "testdata/row.snapshot.json")
//
// Update golden files with:
//
//	ROWKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import rowtest "github.com/go-drift/rowkit/pkg/testing"
package testing
