package style

import (
	"errors"
	"fmt"

	"github.com/go-drift/rowkit/pkg/graphics"
	"github.com/go-drift/rowkit/pkg/rowview"
)

// ParseTextOrder maps "title_first" (or "") and "subtitle_first".
func ParseTextOrder(s string) (rowview.TextOrder, error) {
	switch s {
	case "", "title_first":
		return rowview.TitleFirst, nil
	case "subtitle_first":
		return rowview.SubtitleFirst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTextOrder, s)
}

// ParseCornerStyle maps "circle" (or "") and "rounded" with its radius.
func ParseCornerStyle(s string, radius float64) (rowview.CornerStyle, error) {
	switch s {
	case "", "circle":
		return rowview.Circle(), nil
	case "rounded":
		return rowview.RoundedRect(radius), nil
	}
	return rowview.CornerStyle{}, fmt.Errorf("%w: %q", ErrUnknownCornerStyle, s)
}

// resolved is a Row with every string field parsed.
type resolved struct {
	titleFont, subtitleFont   graphics.Font
	titleColor, subtitleColor *graphics.Color
	order                     rowview.TextOrder
	leftStyle                 rowview.CornerStyle
}

// Validate reports every field that cannot be applied.
func (r Row) Validate() error {
	_, err := r.resolve()
	return err
}

func (r Row) resolve() (resolved, error) {
	var res resolved
	var errs []error
	var err error
	if res.titleFont, err = r.Title.font(rowview.TitleFontSize); err != nil {
		errs = append(errs, fmt.Errorf("title: %w", err))
	}
	if res.subtitleFont, err = r.Subtitle.font(rowview.SubtitleFontSize); err != nil {
		errs = append(errs, fmt.Errorf("subtitle: %w", err))
	}
	if res.titleColor, err = r.Title.color(); err != nil {
		errs = append(errs, fmt.Errorf("title: %w", err))
	}
	if res.subtitleColor, err = r.Subtitle.color(); err != nil {
		errs = append(errs, fmt.Errorf("subtitle: %w", err))
	}
	if res.order, err = ParseTextOrder(r.TextOrder); err != nil {
		errs = append(errs, err)
	}
	if res.leftStyle, err = ParseCornerStyle(r.Left.Style, r.Left.Radius); err != nil {
		errs = append(errs, fmt.Errorf("left: %w", err))
	}
	return res, errors.Join(errs...)
}

func (t Text) font(defaultSize float64) (graphics.Font, error) {
	weight, ok := graphics.ParseFontWeight(t.Weight)
	if !ok {
		return graphics.Font{}, fmt.Errorf("%w: %q", ErrUnknownFontWeight, t.Weight)
	}
	size := defaultSize
	if t.Size != 0 {
		size = t.Size
	}
	return graphics.SystemFont(size, weight), nil
}

func (t Text) color() (*graphics.Color, error) {
	if t.Color == "" {
		return nil, nil
	}
	c, err := graphics.ParseHex(t.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	return &c, nil
}

func (a Accessory) size(current graphics.Size) graphics.Size {
	if a.Width != 0 {
		current.Width = a.Width
	}
	if a.Height != 0 {
		current.Height = a.Height
	}
	return current
}

func (a Accessory) image(size graphics.Size) *graphics.Image {
	if a.Image == "" {
		return nil
	}
	return graphics.NewImage(a.Image, size.Width, size.Height)
}

// Build returns a new IconRow named after r with r applied.
func (r Row) Build(opts ...rowview.Option) (*rowview.IconRow, error) {
	if _, err := r.resolve(); err != nil {
		return nil, err
	}
	if r.Name != "" {
		opts = append([]rowview.Option{rowview.WithName(r.Name)}, opts...)
	}
	row := rowview.NewIconRow(opts...)
	if err := r.Apply(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Apply configures row from r. Nothing is changed when r does not
// validate.
func (r Row) Apply(row *rowview.IconRow) error {
	res, err := r.resolve()
	if err != nil {
		return err
	}

	row.SetData(r.Title.Text, r.Subtitle.Text)
	row.SetTitleFont(res.titleFont)
	row.SetSubtitleFont(res.subtitleFont)
	if res.titleColor != nil {
		row.SetTitleColor(*res.titleColor)
	}
	if res.subtitleColor != nil {
		row.SetSubtitleColor(*res.subtitleColor)
	}
	row.SetTextOrder(res.order)
	row.SetShowsDivider(r.ShowsDivider)
	if r.Spacing != nil {
		row.SetSpacing(*r.Spacing)
	}
	if r.Insets != nil {
		row.SetContentInsets(graphics.EdgeInsets{
			Top:    r.Insets.Top,
			Left:   r.Insets.Left,
			Bottom: r.Insets.Bottom,
			Right:  r.Insets.Right,
		})
	}
	row.SetLeftAccessoryStyle(res.leftStyle)

	leftSize := r.Left.size(row.LeftAccessorySize())
	rightSize := r.Right.size(row.RightAccessorySize())
	row.SetLeftAccessorySize(leftSize)
	row.SetRightAccessorySize(rightSize)
	row.SetLeftIcon(r.Left.image(leftSize))
	row.SetRightIcon(r.Right.image(rightSize))

	if r.Loading {
		row.ShowLoadingPlaceholder()
	} else {
		row.HidePlaceholder()
	}
	return nil
}
