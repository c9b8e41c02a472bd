package rowview

import (
	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/graphics"
	"github.com/go-drift/rowkit/pkg/view"
)

// IconRow is a BaseRow whose accessory slots hold image views. A slot
// holds its image view only while the icon is set.
//
// The right image view also carries a required 12x12 floor. A right
// accessory size below 12 conflicts with it; the conflict is reported and
// the floor wins.
type IconRow struct {
	BaseRow

	leftIcon  *view.ImageView
	rightIcon *view.ImageView
	leftSize  graphics.Size
	rightSize graphics.Size

	leftSizePins  *constraint.Set
	rightSizePins *constraint.Set
	rightFloor    *constraint.Set
	leftFill      *constraint.Set
	rightFill     *constraint.Set
}

// NewIconRow returns an assembled row with no icons.
func NewIconRow(opts ...Option) *IconRow {
	r := &IconRow{
		leftSize:  graphics.Size{Width: DefaultLeftIconSide, Height: DefaultLeftIconSide},
		rightSize: graphics.Size{Width: DefaultRightIconSide, Height: DefaultRightIconSide},
	}
	r.init(r, newConfig(opts))
	engine := r.Engine()

	r.leftIcon = view.NewImageView("leftIcon", engine)
	r.leftIcon.SetContentMode(view.ContentModeScaleAspectFit)
	r.rightIcon = view.NewImageView("rightIcon", engine)
	r.rightIcon.SetContentMode(view.ContentModeScaleAspectFit)

	r.leftSizePins = constraint.NewSet(engine, "left-size")
	r.rightSizePins = constraint.NewSet(engine, "right-size")
	r.rightFloor = constraint.NewSet(engine, "right-floor")
	r.leftFill = constraint.NewSet(engine, "left-fill")
	r.rightFill = constraint.NewSet(engine, "right-fill")

	r.rightFloor.Replace(
		constraint.AtLeastConstant(r.rightIcon.Anchor(constraint.AttrWidth), RightIconFloor),
		constraint.AtLeastConstant(r.rightIcon.Anchor(constraint.AttrHeight), RightIconFloor),
	)
	applySize(r.leftIcon, r.leftSizePins, r.leftSize)
	applySize(r.rightIcon, r.rightSizePins, r.rightSize)
	r.RebuildLayout()
	return r
}

// RebuildLayout puts each image view in its slot iff its icon is set,
// reassembles the content stack, refits the image views to their slots and
// lays the row out.
func (r *IconRow) RebuildLayout() {
	place(r.leftIcon, r.leftSlot)
	place(r.rightIcon, r.rightSlot)
	r.assemble()
	fill(r.leftIcon, r.leftSlot, r.leftFill)
	fill(r.rightIcon, r.rightSlot, r.rightFill)
	r.LayoutIfNeeded()
}

func place(icon *view.ImageView, slot *view.View) {
	switch {
	case icon.Image() == nil:
		icon.RemoveFromSuperview()
	case !slot.Contains(icon):
		slot.AddSubview(icon)
	}
}

func fill(icon *view.ImageView, slot *view.View, set *constraint.Set) {
	if icon.Superview() == nil {
		set.Release()
		return
	}
	set.Replace(view.FillConstraints(icon, slot)...)
}

func applySize(icon *view.ImageView, set *constraint.Set, size graphics.Size) {
	set.Replace(
		constraint.EqualConstant(icon.Anchor(constraint.AttrWidth), size.Width),
		constraint.EqualConstant(icon.Anchor(constraint.AttrHeight), size.Height),
	)
}

// LeftIcon returns the left icon, or nil.
func (r *IconRow) LeftIcon() *graphics.Image {
	return r.leftIcon.Image()
}

// SetLeftIcon sets the left icon and rebuilds the layout. A nil icon
// removes the left slot from the row.
func (r *IconRow) SetLeftIcon(img *graphics.Image) {
	if r.leftIcon.Image() == img {
		return
	}
	r.leftIcon.SetImage(img)
	r.RebuildLayout()
}

// RightIcon returns the right icon, or nil.
func (r *IconRow) RightIcon() *graphics.Image {
	return r.rightIcon.Image()
}

// SetRightIcon sets the right icon and rebuilds the layout. A nil icon
// removes the right slot from the row.
func (r *IconRow) SetRightIcon(img *graphics.Image) {
	if r.rightIcon.Image() == img {
		return
	}
	r.rightIcon.SetImage(img)
	r.RebuildLayout()
}

// LeftAccessorySize returns the left image view's size.
func (r *IconRow) LeftAccessorySize() graphics.Size {
	return r.leftSize
}

// SetLeftAccessorySize rebuilds the left image view's size constraints.
func (r *IconRow) SetLeftAccessorySize(size graphics.Size) {
	if r.leftSize == size {
		return
	}
	r.leftSize = size
	applySize(r.leftIcon, r.leftSizePins, size)
}

// RightAccessorySize returns the right image view's configured size.
func (r *IconRow) RightAccessorySize() graphics.Size {
	return r.rightSize
}

// SetRightAccessorySize rebuilds the right image view's size constraints.
func (r *IconRow) SetRightAccessorySize(size graphics.Size) {
	if r.rightSize == size {
		return
	}
	r.rightSize = size
	applySize(r.rightIcon, r.rightSizePins, size)
}

// Dispose releases the icon constraints and then everything BaseRow owns.
func (r *IconRow) Dispose() {
	for _, s := range []*constraint.Set{r.leftSizePins, r.rightSizePins, r.rightFloor, r.leftFill, r.rightFill} {
		s.Release()
	}
	r.BaseRow.Dispose()
}

// LeftIconView returns the image view shown in the left slot.
func (r *IconRow) LeftIconView() *view.ImageView { return r.leftIcon }

// RightIconView returns the image view shown in the right slot.
func (r *IconRow) RightIconView() *view.ImageView { return r.rightIcon }

// SizeConstraints returns the left and right image view size sets.
func (r *IconRow) SizeConstraints() (left, right *constraint.Set) {
	return r.leftSizePins, r.rightSizePins
}
