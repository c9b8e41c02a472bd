package rowview

import (
	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/graphics"
	"github.com/go-drift/rowkit/pkg/skeleton"
	"github.com/go-drift/rowkit/pkg/view"
)

// BaseRow is the generic row: two accessory slots around a title and
// subtitle, plus a divider. Create it with NewBaseRow.
type BaseRow struct {
	view.View

	leftStyle    CornerStyle
	textOrder    TextOrder
	showsDivider bool
	insets       graphics.EdgeInsets

	title          *view.Label
	subtitle       *view.Label
	leftSlot       *view.View
	rightSlot      *view.View
	divider        *view.View
	textStack      *view.StackView
	textualContent *view.StackView
	contentStack   *view.StackView

	contentPins   *constraint.Set
	titleWidth    *constraint.Set
	subtitleWidth *constraint.Set
	dividerPins   *constraint.Set

	animator  *skeleton.Animator
	unobserve func()
}

// NewBaseRow returns an assembled row with empty accessory slots.
func NewBaseRow(opts ...Option) *BaseRow {
	r := &BaseRow{}
	r.init(r, newConfig(opts))
	r.RebuildLayout()
	return r
}

// init builds every child view, leaves first, then the containers, then
// the constraint sets that never change shape. self is the outermost node
// so constraints on the row use the same identity as layout lookups.
func (r *BaseRow) init(self view.Node, cfg config) {
	r.Init(cfg.name, cfg.engine)
	r.SetSelf(self)
	engine := r.Engine()
	r.animator = cfg.animator
	r.insets = DefaultContentInsets

	r.title = newRowLabel("title", engine, graphics.SystemFont(TitleFontSize, graphics.FontWeightRegular), graphics.DarkText)
	r.subtitle = newRowLabel("subtitle", engine, graphics.SystemFont(SubtitleFontSize, graphics.FontWeightRegular), graphics.SecondaryText)
	r.leftSlot = newSlot("leftSlot", engine)
	r.leftSlot.SetClipsToBounds(true)
	r.rightSlot = newSlot("rightSlot", engine)
	r.rightSlot.SetBackgroundColor(graphics.ColorTransparent)
	r.divider = view.New("divider", engine)
	r.divider.SetBackgroundColor(graphics.Separator)
	r.divider.SetHidden(true)

	r.textStack = view.NewStackView("textStack", engine, view.AxisVertical)
	r.textStack.SetAlignment(view.AlignmentLeading)
	r.textualContent = view.NewStackView("textualContent", engine, view.AxisHorizontal)
	r.textualContent.SetAlignment(view.AlignmentCenter)
	r.textualContent.SetSpacing(TextualSpacing)
	r.textualContent.SetCompressionResistancePriority(constraint.PriorityDefaultLow, view.AxisHorizontal)
	r.textualContent.AddArrangedSubview(r.textStack)
	r.contentStack = view.NewStackView("content", engine, view.AxisHorizontal)
	r.contentStack.SetAlignment(view.AlignmentCenter)
	r.contentStack.SetSpacing(DefaultSpacing)

	r.AddSubview(r.contentStack)
	r.AddSubview(r.divider)
	r.arrangeText()
	r.applyLabelSpacing()

	r.contentPins = constraint.NewSet(engine, "content-pins")
	r.titleWidth = constraint.NewSet(engine, "title-width")
	r.subtitleWidth = constraint.NewSet(engine, "subtitle-width")
	r.dividerPins = constraint.NewSet(engine, "divider")
	r.dividerPins.Replace(
		constraint.EqualConstant(r.divider.Anchor(constraint.AttrHeight), DividerThickness),
		constraint.Equal(r.divider.Anchor(constraint.AttrLeft), r.Anchor(constraint.AttrLeft), 0),
		constraint.Equal(r.divider.Anchor(constraint.AttrRight), r.Anchor(constraint.AttrRight), 0),
		constraint.Equal(r.divider.Anchor(constraint.AttrBottom), r.Anchor(constraint.AttrBottom), 0),
	)
	r.applyContentInsets()
	r.unobserve = engine.AddListener(r.constraintsChanged)
}

// constraintsChanged marks the row for layout when a changed constraint
// touches a view in its tree. Changes among other rows sharing the engine,
// or among detached views, leave it alone.
func (r *BaseRow) constraintsChanged(changed []*constraint.Constraint) {
	for _, c := range changed {
		if r.inTree(c.First.Item) || (c.Second != nil && r.inTree(c.Second.Item)) {
			r.SetNeedsLayout()
			return
		}
	}
}

func (r *BaseRow) inTree(item constraint.Item) bool {
	n, ok := item.(view.Node)
	return ok && r.IsAncestorOf(n)
}

func newRowLabel(name string, engine *constraint.Engine, font graphics.Font, color graphics.Color) *view.Label {
	l := view.NewLabel(name, engine)
	l.SetFont(font)
	l.SetTextColor(color)
	l.SetNumberOfLines(1)
	l.SetCompressionResistancePriority(constraint.PriorityDefaultLow, view.AxisHorizontal)
	l.SetSkeletonable(true)
	return l
}

func newSlot(name string, engine *constraint.Engine) *view.View {
	v := view.New(name, engine)
	v.SetContentHuggingPriority(constraint.PriorityRequired, view.AxisHorizontal)
	v.SetContentHuggingPriority(constraint.PriorityRequired, view.AxisVertical)
	return v
}

// RebuildLayout reassembles the content stack from the slots' current
// contents, rebuilds the label width constraints and lays the row out.
func (r *BaseRow) RebuildLayout() {
	r.assemble()
	r.LayoutIfNeeded()
}

// assemble puts the non-empty left slot first, the textual content next
// and the non-empty right slot last, then pins each parented label across
// the text stack.
func (r *BaseRow) assemble() {
	order := make([]view.Node, 0, 3)
	if r.leftSlot.SubviewCount() == 0 {
		r.leftSlot.RemoveFromSuperview()
	} else {
		order = append(order, r.leftSlot)
	}
	order = append(order, r.textualContent)
	if r.rightSlot.SubviewCount() == 0 {
		r.rightSlot.RemoveFromSuperview()
	} else {
		order = append(order, r.rightSlot)
	}
	for i, n := range order {
		r.contentStack.InsertArrangedSubview(n, i)
	}

	r.pinAcrossTextStack(r.title, r.titleWidth)
	r.pinAcrossTextStack(r.subtitle, r.subtitleWidth)
}

func (r *BaseRow) pinAcrossTextStack(l *view.Label, set *constraint.Set) {
	if l.Superview() == nil {
		set.Release()
		return
	}
	set.Replace(
		constraint.Equal(l.Anchor(constraint.AttrLeft), r.textStack.Anchor(constraint.AttrLeft), 0),
		constraint.Equal(l.Anchor(constraint.AttrRight), r.textStack.Anchor(constraint.AttrRight), 0),
	)
}

func (r *BaseRow) applyContentInsets() {
	in := r.insets
	r.contentPins.Replace(
		constraint.Equal(r.contentStack.Anchor(constraint.AttrTop), r.Anchor(constraint.AttrTop), in.Top),
		constraint.Equal(r.contentStack.Anchor(constraint.AttrLeft), r.Anchor(constraint.AttrLeft), in.Left),
		constraint.Equal(r.contentStack.Anchor(constraint.AttrBottom), r.Anchor(constraint.AttrBottom), -in.Bottom),
		constraint.Equal(r.contentStack.Anchor(constraint.AttrRight), r.Anchor(constraint.AttrRight), -in.Right),
	)
}

// arrangeText removes both labels from the text stack and re-adds them in
// the current order.
func (r *BaseRow) arrangeText() {
	r.textStack.RemoveArrangedSubview(r.title)
	r.textStack.RemoveArrangedSubview(r.subtitle)
	switch r.textOrder {
	case SubtitleFirst:
		r.textStack.AddArrangedSubview(r.subtitle)
		r.textStack.AddArrangedSubview(r.title)
	default:
		r.textStack.AddArrangedSubview(r.title)
		r.textStack.AddArrangedSubview(r.subtitle)
	}
}

func (r *BaseRow) applyLabelSpacing() {
	if r.subtitle.Text() == "" {
		r.textStack.SetSpacing(0)
	} else {
		r.textStack.SetSpacing(LabelSpacing)
	}
}

// LayoutSubviews reasserts the label spacing for the current subtitle and
// positions the content stack and divider.
func (r *BaseRow) LayoutSubviews() {
	r.applyLabelSpacing()
	r.View.LayoutSubviews()
}

// DidLayoutSubviews rounds the left slot from its resolved bounds.
func (r *BaseRow) DidLayoutSubviews() {
	r.leftSlot.SetCornerRadius(r.leftStyle.Resolve(r.leftSlot.Bounds()))
}

// LeftAccessoryStyle returns the left slot's corner style.
func (r *BaseRow) LeftAccessoryStyle() CornerStyle {
	return r.leftStyle
}

// SetLeftAccessoryStyle sets the left slot's corner style. It takes effect
// in the next layout pass.
func (r *BaseRow) SetLeftAccessoryStyle(s CornerStyle) {
	if r.leftStyle == s {
		return
	}
	r.leftStyle = s
	r.SetNeedsLayout()
}

// Title returns the title text.
func (r *BaseRow) Title() string {
	return r.title.Text()
}

// SetTitle sets the title text. The empty string means no title.
func (r *BaseRow) SetTitle(text string) {
	r.title.SetText(text)
}

// Subtitle returns the subtitle text.
func (r *BaseRow) Subtitle() string {
	return r.subtitle.Text()
}

// SetSubtitle sets the subtitle text and the label spacing that goes with
// it. The empty string means no subtitle.
func (r *BaseRow) SetSubtitle(text string) {
	r.subtitle.SetText(text)
	r.applyLabelSpacing()
}

// SetData sets the title and subtitle together.
func (r *BaseRow) SetData(title, subtitle string) {
	r.SetTitle(title)
	r.SetSubtitle(subtitle)
}

// TitleFont returns the title font.
func (r *BaseRow) TitleFont() graphics.Font {
	return r.title.Font()
}

// SetTitleFont sets the title font.
func (r *BaseRow) SetTitleFont(f graphics.Font) {
	r.title.SetFont(f)
}

// TitleColor returns the title text color.
func (r *BaseRow) TitleColor() graphics.Color {
	return r.title.TextColor()
}

// SetTitleColor sets the title text color.
func (r *BaseRow) SetTitleColor(c graphics.Color) {
	r.title.SetTextColor(c)
}

// SubtitleFont returns the subtitle font.
func (r *BaseRow) SubtitleFont() graphics.Font {
	return r.subtitle.Font()
}

// SetSubtitleFont sets the subtitle font.
func (r *BaseRow) SetSubtitleFont(f graphics.Font) {
	r.subtitle.SetFont(f)
}

// SubtitleColor returns the subtitle text color.
func (r *BaseRow) SubtitleColor() graphics.Color {
	return r.subtitle.TextColor()
}

// SetSubtitleColor sets the subtitle text color.
func (r *BaseRow) SetSubtitleColor(c graphics.Color) {
	r.subtitle.SetTextColor(c)
}

// TextOrder returns the label order.
func (r *BaseRow) TextOrder() TextOrder {
	return r.textOrder
}

// SetTextOrder reorders the title and subtitle labels. Values other than
// SubtitleFirst put the title first.
func (r *BaseRow) SetTextOrder(order TextOrder) {
	if r.textOrder == order {
		return
	}
	r.textOrder = order
	r.arrangeText()
}

// ShowsDivider reports whether the divider is visible.
func (r *BaseRow) ShowsDivider() bool {
	return r.showsDivider
}

// SetShowsDivider shows or hides the divider. Nothing else moves.
func (r *BaseRow) SetShowsDivider(show bool) {
	if r.showsDivider == show {
		return
	}
	r.showsDivider = show
	r.divider.SetHidden(!show)
}

// Spacing returns the gap between the content stack's items.
func (r *BaseRow) Spacing() float64 {
	return r.contentStack.Spacing()
}

// SetSpacing sets the gap between the content stack's items.
func (r *BaseRow) SetSpacing(spacing float64) {
	r.contentStack.SetSpacing(spacing)
}

// ContentInsets returns the insets between the row and its content.
func (r *BaseRow) ContentInsets() graphics.EdgeInsets {
	return r.insets
}

// SetContentInsets rebuilds the four content pins when insets differ from
// the current ones.
func (r *BaseRow) SetContentInsets(insets graphics.EdgeInsets) {
	if r.insets == insets {
		return
	}
	r.insets = insets
	r.applyContentInsets()
}

// ShowLoadingPlaceholder shows the animated placeholder on the title and
// subtitle labels.
func (r *BaseRow) ShowLoadingPlaceholder() {
	r.animator.Show(r.title, r.subtitle)
}

// HidePlaceholder removes the title and subtitle placeholders.
func (r *BaseRow) HidePlaceholder() {
	r.animator.Hide(r.title, r.subtitle)
}

// IsShowingPlaceholder reports whether the labels show a placeholder.
func (r *BaseRow) IsShowingPlaceholder() bool {
	return r.animator.IsShowing(r.title) || r.animator.IsShowing(r.subtitle)
}

// Dispose hides placeholders, releases every constraint the row owns and
// stops observing the engine. The row must not be used afterwards.
func (r *BaseRow) Dispose() {
	r.HidePlaceholder()
	if r.unobserve != nil {
		r.unobserve()
		r.unobserve = nil
	}
	for _, s := range r.sets() {
		s.Release()
	}
}

func (r *BaseRow) sets() []*constraint.Set {
	return []*constraint.Set{r.contentPins, r.titleWidth, r.subtitleWidth, r.dividerPins}
}

// ContentStack returns the horizontal stack holding the slots and the
// textual content.
func (r *BaseRow) ContentStack() *view.StackView { return r.contentStack }

// TextualContentView returns the container of the text stack.
func (r *BaseRow) TextualContentView() *view.StackView { return r.textualContent }

// TextStack returns the vertical stack holding the title and subtitle.
func (r *BaseRow) TextStack() *view.StackView { return r.textStack }

// TitleLabel returns the title label.
func (r *BaseRow) TitleLabel() *view.Label { return r.title }

// SubtitleLabel returns the subtitle label. It stays a subview of the text
// stack even while the subtitle is empty.
func (r *BaseRow) SubtitleLabel() *view.Label { return r.subtitle }

// LeftSlot returns the left accessory container. It is in the content
// stack only while it has subviews.
func (r *BaseRow) LeftSlot() *view.View { return r.leftSlot }

// RightSlot returns the right accessory container, in the content stack
// only while it has subviews.
func (r *BaseRow) RightSlot() *view.View { return r.rightSlot }

// Divider returns the hairline pinned along the row's bottom edge.
func (r *BaseRow) Divider() *view.View { return r.divider }

// ContentConstraints returns the set pinning the content stack into the
// row.
func (r *BaseRow) ContentConstraints() *constraint.Set { return r.contentPins }
