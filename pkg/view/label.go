package view

import (
	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/errors"
	"github.com/go-drift/rowkit/pkg/graphics"
)

// Label displays a run of text.
type Label struct {
	View
	text          string
	font          graphics.Font
	textColor     graphics.Color
	numberOfLines int
	fonts         *graphics.FontManager
}

// NewLabel returns an empty single-line label in the 17pt system font.
// Text is measured with the default font manager.
func NewLabel(name string, engine *constraint.Engine) *Label {
	l := &Label{
		font:          graphics.SystemFont(graphics.DefaultFontSize, graphics.FontWeightRegular),
		textColor:     graphics.DarkText,
		numberOfLines: 1,
		fonts:         graphics.DefaultFontManager(),
	}
	l.Init(name, engine)
	l.SetSelf(l)
	// Labels hug their text slightly more than plain views.
	l.SetContentHuggingPriority(constraint.PriorityDefaultLow+1, AxisHorizontal)
	l.SetContentHuggingPriority(constraint.PriorityDefaultLow+1, AxisVertical)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText sets the label text.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.SetNeedsLayout()
}

// Font returns the label font.
func (l *Label) Font() graphics.Font {
	return l.font
}

// SetFont sets the label font.
func (l *Label) SetFont(f graphics.Font) {
	if l.font == f {
		return
	}
	l.font = f
	l.SetNeedsLayout()
}

// TextColor returns the text color.
func (l *Label) TextColor() graphics.Color {
	return l.textColor
}

// SetTextColor sets the text color.
func (l *Label) SetTextColor(c graphics.Color) {
	l.textColor = c
}

// NumberOfLines returns the maximum line count; 0 means unlimited.
func (l *Label) NumberOfLines() int {
	return l.numberOfLines
}

// SetNumberOfLines sets the maximum line count.
func (l *Label) SetNumberOfLines(n int) {
	l.numberOfLines = n
}

// SetFontManager replaces the font manager used for measurement.
func (l *Label) SetFontManager(m *graphics.FontManager) {
	l.fonts = m
	l.SetNeedsLayout()
}

// IntrinsicContentSize returns the measured single-line size of the text.
// Empty text needs no space.
func (l *Label) IntrinsicContentSize() graphics.Size {
	if l.text == "" || l.fonts == nil {
		return graphics.Size{}
	}
	size, err := l.fonts.Measure(l.text, l.font)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "view.Label.IntrinsicContentSize",
			Kind: errors.KindLayout,
			Err:  err,
		})
		return graphics.Size{}
	}
	return size
}
