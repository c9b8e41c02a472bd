package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/go-drift/rowkit/pkg/errors"
	"github.com/go-drift/rowkit/pkg/graphics"
	"github.com/go-drift/rowkit/pkg/rowview"
	"github.com/go-drift/rowkit/pkg/view"
)

const testCatalog = `rows:
  - name: account
    title: {text: Account}
    subtitle: {text: Signed in}
    shows_divider: true
    left: {image: avatar}
    right: {image: chevron}
  - name: bare
    title: {text: Bare}
`

func newProject(t *testing.T) (afero.Fs, string) {
	t.Helper()
	fs := afero.NewMemMapFs()
	dir := filepath.FromSlash("/work/app")
	files := map[string]string{
		"go.mod":       "module example.com/acme/settings\n\ngo 1.24\n",
		"rowview.yaml": testCatalog,
	}
	for name, body := range files {
		if err := afero.WriteFile(fs, filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fs, dir
}

func run(t *testing.T, fs afero.Fs, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { errors.SetHandler(nil) })
	var out, errOut bytes.Buffer
	root := NewRootCommand(fs, dir)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLayout(t *testing.T) {
	fs, dir := newProject(t)
	out, err := run(t, fs, dir, "layout", "--width", "375")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"# settings: account", "leftIcon", "rightIcon", "divider", "constraints: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayout_JSON(t *testing.T) {
	fs, dir := newProject(t)
	out, err := run(t, fs, dir, "layout", "--row", "bare", "--json", "-w", "320")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var snap view.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if snap.Root.Name != "bare" || snap.Root.Frame[2] != 320 {
		t.Errorf("root = %s %v, want bare at width 320", snap.Root.Name, snap.Root.Frame)
	}
	if snap.Constraints == 0 {
		t.Error("expected active constraints in snapshot")
	}
}

func TestLayout_UnknownRow(t *testing.T) {
	fs, dir := newProject(t)
	if _, err := run(t, fs, dir, "layout", "--row", "nope"); err == nil {
		t.Error("expected error for unknown row")
	}
}

func TestLayout_ExplicitConfig(t *testing.T) {
	fs, dir := newProject(t)
	other := filepath.Join(dir, "other.yaml")
	if err := afero.WriteFile(fs, other, []byte("rows:\n  - name: elsewhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, fs, dir, "--config", other, "layout")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out, "# settings: elsewhere") {
		t.Errorf("output = %q", out)
	}
}

func TestPreview(t *testing.T) {
	fs, dir := newProject(t)
	out, err := run(t, fs, dir, "preview", "-w", "40")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(out, "Account") || !strings.Contains(out, "Signed in") {
		t.Errorf("preview missing labels:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("─", 40)) {
		t.Errorf("preview missing divider:\n%s", out)
	}
}

func TestRenderPreview_TextOrder(t *testing.T) {
	row := rowview.NewIconRow()
	t.Cleanup(row.Dispose)
	row.SetData("Title", "Subtitle")

	out := renderPreview(row, 30)
	if strings.Index(out, "Title") > strings.Index(out, "Subtitle") {
		t.Errorf("title should come first:\n%s", out)
	}
	row.SetTextOrder(rowview.SubtitleFirst)
	out = renderPreview(row, 30)
	if strings.Index(out, "Subtitle") > strings.Index(out, "Title") {
		t.Errorf("subtitle should come first:\n%s", out)
	}
	if strings.Contains(out, "─") {
		t.Errorf("divider drawn while hidden:\n%s", out)
	}
}

func TestRenderPreview_Icons(t *testing.T) {
	row := rowview.NewIconRow()
	t.Cleanup(row.Dispose)
	row.SetTitle("Wi-Fi")
	row.SetLeftIcon(graphics.NewImage("wifi", 40, 40))
	row.SetRightIcon(graphics.NewImage("chevron", 12, 12))

	out := renderPreview(row, 40)
	if !strings.Contains(out, "W") || !strings.Contains(out, "C") {
		t.Errorf("expected icon glyphs:\n%s", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("circle style should draw a rounded box:\n%s", out)
	}
	row.SetLeftAccessoryStyle(rowview.RoundedRect(4))
	if out := renderPreview(row, 40); strings.Contains(out, "╭") {
		t.Errorf("rounded rect style should draw a square box:\n%s", out)
	}
}

func TestIconGlyph(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"wifi", "W"},
		{"éclair", "É"},
		{"日本", "日"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := iconGlyph(graphics.NewImage(tt.name, 12, 12)); got != tt.want {
			t.Errorf("iconGlyph(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if !utf8.ValidString(iconGlyph(graphics.NewImage(tt.name, 12, 12))) {
			t.Errorf("iconGlyph(%q) is not valid UTF-8", tt.name)
		}
	}
}

func TestRenderPreview_Loading(t *testing.T) {
	row := rowview.NewIconRow()
	t.Cleanup(row.Dispose)
	row.SetData("Secret", "")
	row.ShowLoadingPlaceholder()

	out := renderPreview(row, 30)
	if strings.Contains(out, "Secret") || !strings.Contains(out, strings.Repeat(skeletonBlock, 6)) {
		t.Errorf("expected skeleton blocks:\n%s", out)
	}
}

func TestInit(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.FromSlash("/work/fresh")
	if err := afero.WriteFile(fs, filepath.Join(dir, "go.mod"), []byte("module fresh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, fs, dir, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := run(t, fs, dir, "init"); err == nil {
		t.Error("second init should refuse to overwrite")
	}
	if _, err := run(t, fs, dir, "init", "--force"); err != nil {
		t.Fatalf("init --force: %v", err)
	}

	out, err := run(t, fs, dir, "layout", "--row", "storage")
	if err != nil {
		t.Fatalf("layout after init: %v", err)
	}
	if !strings.Contains(out, "# fresh: storage") {
		t.Errorf("output = %q", out)
	}
}

func TestVersion(t *testing.T) {
	fs, dir := newProject(t)
	out, err := run(t, fs, dir, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "rowview "+Version) {
		t.Errorf("output = %q", out)
	}
}
