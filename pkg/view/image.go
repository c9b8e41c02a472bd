package view

import (
	"fmt"

	"github.com/go-drift/rowkit/pkg/constraint"
	"github.com/go-drift/rowkit/pkg/graphics"
)

// ContentMode controls how an image is fitted into its view.
type ContentMode int

const (
	ContentModeScaleToFill ContentMode = iota
	ContentModeScaleAspectFit
	ContentModeScaleAspectFill
	ContentModeCenter
)

// String returns a human-readable representation of the content mode.
func (m ContentMode) String() string {
	switch m {
	case ContentModeScaleToFill:
		return "scale_to_fill"
	case ContentModeScaleAspectFit:
		return "aspect_fit"
	case ContentModeScaleAspectFill:
		return "aspect_fill"
	case ContentModeCenter:
		return "center"
	default:
		return fmt.Sprintf("ContentMode(%d)", int(m))
	}
}

// ImageView displays an optional image.
type ImageView struct {
	View
	image       *graphics.Image
	contentMode ContentMode
}

// NewImageView returns an image view with no image.
func NewImageView(name string, engine *constraint.Engine) *ImageView {
	iv := &ImageView{}
	iv.Init(name, engine)
	iv.SetSelf(iv)
	return iv
}

// Image returns the displayed image, or nil.
func (iv *ImageView) Image() *graphics.Image {
	return iv.image
}

// SetImage sets the displayed image; nil clears it.
func (iv *ImageView) SetImage(img *graphics.Image) {
	if iv.image == img {
		return
	}
	iv.image = img
	iv.SetNeedsLayout()
}

// ContentMode returns the content mode.
func (iv *ImageView) ContentMode() ContentMode {
	return iv.contentMode
}

// SetContentMode sets the content mode.
func (iv *ImageView) SetContentMode(m ContentMode) {
	iv.contentMode = m
}

// IntrinsicContentSize returns the image's size, or zero without an image.
func (iv *ImageView) IntrinsicContentSize() graphics.Size {
	if iv.image == nil {
		return graphics.Size{}
	}
	return iv.image.Size
}

// ImageRect returns where the image is drawn inside the view's bounds.
func (iv *ImageView) ImageRect() graphics.Rect {
	b := iv.Bounds()
	if iv.image == nil {
		return graphics.Rect{}
	}
	img := iv.image.Size
	switch iv.contentMode {
	case ContentModeScaleAspectFit, ContentModeScaleAspectFill:
		if img.Width <= 0 || img.Height <= 0 {
			return graphics.Rect{}
		}
		sx, sy := b.Width()/img.Width, b.Height()/img.Height
		scale := min(sx, sy)
		if iv.contentMode == ContentModeScaleAspectFill {
			scale = max(sx, sy)
		}
		w, h := img.Width*scale, img.Height*scale
		return graphics.RectFromLTWH((b.Width()-w)/2, (b.Height()-h)/2, w, h)
	case ContentModeCenter:
		return graphics.RectFromLTWH((b.Width()-img.Width)/2, (b.Height()-img.Height)/2, img.Width, img.Height)
	default:
		return b
	}
}
