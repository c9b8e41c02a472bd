package rowview_test

import (
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/graphics"
	"github.com/go-drift/rowkit/pkg/rowview"
	rowtest "github.com/go-drift/rowkit/pkg/testing"
	"github.com/go-drift/rowkit/pkg/view"
)

func arranged(s *view.StackView) []string {
	var out []string
	for _, n := range s.ArrangedSubviews() {
		out = append(out, n.DebugName())
	}
	return out
}

func TestNewBaseRow_Defaults(t *testing.T) {
	rec := rowtest.RecordErrors(t)
	row := rowview.NewBaseRow()

	if diff := cmp.Diff([]string{"textualContent"}, arranged(row.ContentStack())); diff != "" {
		t.Errorf("content stack mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"title", "subtitle"}, arranged(row.TextStack())); diff != "" {
		t.Errorf("text stack mismatch (-want +got):\n%s", diff)
	}
	if !row.Divider().IsHidden() || row.ShowsDivider() {
		t.Error("divider should start hidden")
	}
	if got := row.TextStack().Spacing(); got != 0 {
		t.Errorf("label spacing = %v, want 0", got)
	}
	if got := row.TextualContentView().Spacing(); got != rowview.TextualSpacing {
		t.Errorf("textual spacing = %v, want %v", got, rowview.TextualSpacing)
	}
	if got := row.Spacing(); got != rowview.DefaultSpacing {
		t.Errorf("spacing = %v, want %v", got, rowview.DefaultSpacing)
	}
	if got := row.ContentInsets(); got != rowview.DefaultContentInsets {
		t.Errorf("insets = %+v, want %+v", got, rowview.DefaultContentInsets)
	}
	if !row.LeftAccessoryStyle().IsCircle() {
		t.Errorf("left style = %v, want circle", row.LeftAccessoryStyle())
	}
	if got, want := row.TitleFont(), graphics.SystemFont(17, graphics.FontWeightRegular); got != want {
		t.Errorf("title font = %v, want %v", got, want)
	}
	if got, want := row.SubtitleFont(), graphics.SystemFont(13, graphics.FontWeightRegular); got != want {
		t.Errorf("subtitle font = %v, want %v", got, want)
	}
	if row.TitleColor() != graphics.DarkText || row.SubtitleColor() != graphics.SecondaryText {
		t.Errorf("colors = %v / %v", row.TitleColor(), row.SubtitleColor())
	}
	if row.TitleLabel().NumberOfLines() != 1 || row.SubtitleLabel().NumberOfLines() != 1 {
		t.Error("labels should be single-line")
	}
	if got := row.ContentConstraints().ActiveCount(); got != 4 {
		t.Errorf("content pins = %d, want 4", got)
	}
	if len(rec.Errors()) != 0 {
		t.Errorf("unexpected errors: %v", rec.Errors())
	}
}

func TestAccountRow(t *testing.T) {
	row := rowview.NewIconRow()
	row.SetTitle("Account")
	row.SizeToFit(375)

	if n := len(row.ContentStack().ArrangedSubviews()); n != 1 {
		t.Errorf("content stack has %d elements, want 1", n)
	}
	if !row.Divider().IsHidden() {
		t.Error("divider should be hidden")
	}
	if got := row.TextStack().Spacing(); got != 0 {
		t.Errorf("label spacing = %v, want 0", got)
	}
}

func TestSetTextOrder(t *testing.T) {
	tests := []struct {
		name  string
		calls []rowview.TextOrder
		want  []string
	}{
		{"none", nil, []string{"title", "subtitle"}},
		{"subtitle first", []rowview.TextOrder{rowview.SubtitleFirst}, []string{"subtitle", "title"}},
		{"repeated", []rowview.TextOrder{rowview.SubtitleFirst, rowview.SubtitleFirst}, []string{"subtitle", "title"}},
		{"back", []rowview.TextOrder{rowview.SubtitleFirst, rowview.TitleFirst}, []string{"title", "subtitle"}},
		{"alternating", []rowview.TextOrder{rowview.TitleFirst, rowview.SubtitleFirst, rowview.TitleFirst, rowview.SubtitleFirst}, []string{"subtitle", "title"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := rowview.NewBaseRow()
			row.SetData("A", "B")
			for _, order := range tt.calls {
				row.SetTextOrder(order)
			}
			if diff := cmp.Diff(tt.want, arranged(row.TextStack())); diff != "" {
				t.Errorf("text stack mismatch (-want +got):\n%s", diff)
			}
			if n := row.TextStack().SubviewCount(); n != 2 {
				t.Errorf("text stack holds %d subviews, want 2", n)
			}
		})
	}
}

func TestSubtitleSpacing(t *testing.T) {
	row := rowview.NewBaseRow()
	steps := []struct {
		subtitle string
		want     float64
	}{
		{"B", 4}, {"B", 4}, {"", 0}, {"", 0}, {"Balance", 4}, {"", 0},
	}
	for i, step := range steps {
		row.SetSubtitle(step.subtitle)
		if got := row.TextStack().Spacing(); got != step.want {
			t.Errorf("step %d: spacing right after SetSubtitle(%q) = %v, want %v", i, step.subtitle, got, step.want)
		}
		row.SizeToFit(320)
		if got := row.TextStack().Spacing(); got != step.want {
			t.Errorf("step %d: spacing after layout = %v, want %v", i, got, step.want)
		}
	}
}

func TestSetContentInsets(t *testing.T) {
	rec := rowtest.RecordErrors(t)
	row := rowview.NewBaseRow()
	engine := row.Engine()
	titlePins := engine.Involving(row.TitleLabel())
	total := engine.ActiveCount()

	for _, in := range []graphics.EdgeInsets{
		{Top: 4, Left: 8, Bottom: 4, Right: 8},
		{Top: 10, Left: 20, Bottom: 12, Right: 24},
		graphics.EdgeInsetsAll(0),
		rowview.DefaultContentInsets,
	} {
		row.SetContentInsets(in)
		if got := row.ContentConstraints().ActiveCount(); got != 4 {
			t.Errorf("insets %+v: content pins = %d, want 4", in, got)
		}
		if got := engine.ActiveCount(); got != total {
			t.Errorf("insets %+v: active constraints = %d, want %d", in, got, total)
		}
	}
	if !slices.Equal(titlePins, engine.Involving(row.TitleLabel())) {
		t.Error("title pins were rebuilt by SetContentInsets")
	}
	if len(rec.Conflicts()) != 0 {
		t.Errorf("unexpected conflicts: %v", rec.Conflicts())
	}

	row.SetContentInsets(graphics.EdgeInsets{Top: 2, Left: 6, Bottom: 4, Right: 10})
	row.SetFrame(graphics.RectFromLTWH(0, 0, 200, 50))
	row.LayoutIfNeeded()
	if got, want := row.ContentStack().Frame(), graphics.RectFromLTWH(6, 2, 184, 44); got != want {
		t.Errorf("content frame = %v, want %v", got, want)
	}
}

func TestSetContentInsets_SameValueKeepsPins(t *testing.T) {
	row := rowview.NewBaseRow()
	before := row.ContentConstraints().Constraints()
	row.SetContentInsets(rowview.DefaultContentInsets)
	if !slices.Equal(before, row.ContentConstraints().Constraints()) {
		t.Error("pins were rebuilt for unchanged insets")
	}
}

func TestShowsDivider(t *testing.T) {
	row := rowview.NewBaseRow()
	row.SetTitle("Account")
	before := arranged(row.ContentStack())

	row.SetShowsDivider(true)
	if row.Divider().IsHidden() {
		t.Error("divider should be visible")
	}
	row.SetShowsDivider(false)
	if !row.Divider().IsHidden() {
		t.Error("divider should end hidden")
	}
	if row.Divider().Superview() != view.Node(row) {
		t.Error("divider should stay in the row")
	}
	if diff := cmp.Diff(before, arranged(row.ContentStack())); diff != "" {
		t.Errorf("content stack changed (-before +after):\n%s", diff)
	}

	row.SetShowsDivider(true)
	row.SetFrame(graphics.RectFromLTWH(0, 0, 300, 60))
	row.LayoutIfNeeded()
	if got, want := row.Divider().Frame(), graphics.RectFromLTWH(0, 59.5, 300, 0.5); got != want {
		t.Errorf("divider frame = %v, want %v", got, want)
	}
}

func TestLeftAccessoryStyle(t *testing.T) {
	row := rowview.NewIconRow()
	row.SetLeftIcon(graphics.NewImage("avatar", 80, 80))
	row.SizeToFit(375)
	if got := row.LeftSlot().CornerRadius(); got != 20 {
		t.Errorf("circle radius = %v, want 20", got)
	}

	row.SetLeftAccessoryStyle(rowview.RoundedRect(6))
	if got := row.LeftSlot().CornerRadius(); got != 20 {
		t.Errorf("radius changed before layout: %v", got)
	}
	row.LayoutIfNeeded()
	if got := row.LeftSlot().CornerRadius(); got != 6 {
		t.Errorf("rounded radius = %v, want 6", got)
	}

	row.SetLeftAccessoryStyle(rowview.Circle())
	row.SetLeftAccessorySize(graphics.Size{Width: 64, Height: 64})
	row.SizeToFit(375)
	if got := row.LeftSlot().CornerRadius(); got != 32 {
		t.Errorf("circle radius after resize = %v, want 32", got)
	}
}

func TestCornerStyle(t *testing.T) {
	var zero rowview.CornerStyle
	if !zero.IsCircle() || zero != rowview.Circle() {
		t.Error("zero CornerStyle should be Circle")
	}
	bounds := graphics.RectFromLTWH(0, 0, 40, 30)
	if got := rowview.Circle().Resolve(bounds); got != 20 {
		t.Errorf("circle = %v, want 20", got)
	}
	if got := rowview.RoundedRect(8).Resolve(bounds); got != 8 {
		t.Errorf("rounded = %v, want 8", got)
	}
	if r, ok := rowview.RoundedRect(8).FixedRadius(); !ok || r != 8 {
		t.Errorf("FixedRadius = %v, %v", r, ok)
	}
	if s := rowview.RoundedRect(8).String(); s != "rounded(8)" {
		t.Errorf("String = %q", s)
	}
}

func TestLoadingPlaceholder(t *testing.T) {
	clk := rowtest.UseFakeClock(t)
	row := rowview.NewBaseRow()
	row.SetData("Account", "Balance")

	row.ShowLoadingPlaceholder()
	if !row.IsShowingPlaceholder() {
		t.Fatal("expected placeholder to show")
	}
	for _, l := range []*view.Label{row.TitleLabel(), row.SubtitleLabel()} {
		if l.Placeholder() == nil {
			t.Errorf("%s has no placeholder", l.DebugName())
		}
	}
	for _, v := range []view.Node{row.Divider(), row.LeftSlot(), row.ContentStack()} {
		if v.Base().Placeholder() != nil {
			t.Errorf("%s should not show a placeholder", v.DebugName())
		}
	}
	clk.Frame(300 * time.Millisecond)
	if row.TitleLabel().Placeholder().Phase == 0 {
		t.Error("shimmer phase should advance")
	}

	row.HidePlaceholder()
	if row.IsShowingPlaceholder() || row.TitleLabel().Placeholder() != nil || row.SubtitleLabel().Placeholder() != nil {
		t.Error("placeholders should be gone")
	}
}

func TestNegativeInsetsDegenerate(t *testing.T) {
	row := rowview.NewBaseRow()
	row.SetContentInsets(graphics.EdgeInsetsAll(-10))
	row.SetFrame(graphics.RectFromLTWH(0, 0, 100, 20))
	row.LayoutIfNeeded()
	if got, want := row.ContentStack().Frame(), graphics.RectFromLTWH(-10, -10, 120, 40); got != want {
		t.Errorf("content frame = %v, want %v", got, want)
	}
}

func TestDispose(t *testing.T) {
	engine := constraint.NewEngine()
	row := rowview.NewBaseRow(rowview.WithEngine(engine), rowview.WithName("settings"))
	if row.DebugName() != "settings" {
		t.Errorf("name = %q", row.DebugName())
	}
	row.Dispose()
	if n := engine.ActiveCount(); n != 0 {
		t.Errorf("active constraints after Dispose = %d, want 0", n)
	}
}

func TestDetachedSubtitleReleasesItsConstraints(t *testing.T) {
	rec := rowtest.RecordErrors(t)
	row := rowview.NewBaseRow()
	row.SetData("Title", "Subtitle")
	subtitle := row.SubtitleLabel()
	before := row.Engine().ActiveCount()

	subtitle.RemoveFromSuperview()
	row.RebuildLayout()

	if n := len(row.Engine().Involving(subtitle)); n != 0 {
		t.Errorf("detached subtitle still has %d constraints", n)
	}
	if got, want := row.Engine().ActiveCount(), before-2; got != want {
		t.Errorf("active constraints = %d, want %d", got, want)
	}
	if diff := cmp.Diff([]string{"title"}, arranged(row.TextStack())); diff != "" {
		t.Errorf("text stack mismatch (-want +got):\n%s", diff)
	}

	row.SetTextOrder(rowview.SubtitleFirst)
	row.RebuildLayout()

	if got := row.Engine().ActiveCount(); got != before {
		t.Errorf("active constraints after reattaching = %d, want %d", got, before)
	}
	if n := len(row.Engine().Involving(subtitle)); n != 2 {
		t.Errorf("reattached subtitle has %d constraints, want 2", n)
	}
	if diff := cmp.Diff([]string{"subtitle", "title"}, arranged(row.TextStack())); diff != "" {
		t.Errorf("text stack mismatch (-want +got):\n%s", diff)
	}
	if len(rec.Errors()) != 0 || len(rec.Panics()) != 0 {
		t.Errorf("unexpected errors: %v %v", rec.Errors(), rec.Panics())
	}
}

func TestSharedEngineRowsLayOutIndependently(t *testing.T) {
	engine := constraint.NewEngine()
	a := rowview.NewBaseRow(rowview.WithEngine(engine), rowview.WithName("a"))
	b := rowview.NewBaseRow(rowview.WithEngine(engine), rowview.WithName("b"))
	a.SizeToFit(320)
	b.SizeToFit(320)
	if a.NeedsLayout() || b.NeedsLayout() {
		t.Fatal("rows should be laid out")
	}

	a.SetContentInsets(graphics.EdgeInsetsAll(4))

	if !a.NeedsLayout() {
		t.Error("row a should need layout after its insets changed")
	}
	if b.NeedsLayout() {
		t.Error("row b should not be invalidated by row a's constraints")
	}

	b.Dispose()
	a.LayoutIfNeeded()
	a.SetContentInsets(graphics.EdgeInsetsAll(8))
	if !a.NeedsLayout() {
		t.Error("row a should still observe the engine after row b is disposed")
	}
}
