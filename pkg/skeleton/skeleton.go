// Package skeleton animates loading placeholders over views.
//
// An [Animator] owns one repeating [animation.AnimationController] and a set
// of target views. While a target is showing, its view carries a
// [view.Placeholder] whose phase (gradient style) or base color (pulse
// style) follows the controller. Only skeletonable views participate.
package skeleton

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/go-drift/rowkit/pkg/animation"
	"github.com/go-drift/rowkit/pkg/graphics"
	"github.com/go-drift/rowkit/pkg/view"
)

// Style selects how placeholders animate.
type Style int

const (
	// StyleGradient slides a highlight band across the placeholder.
	StyleGradient Style = iota
	// StylePulse fades the placeholder between its base and highlight colors.
	StylePulse
)

// String returns a human-readable representation of the style.
func (s Style) String() string {
	switch s {
	case StyleGradient:
		return "gradient"
	case StylePulse:
		return "pulse"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Default placeholder appearance.
const DefaultDuration = 1500 * time.Millisecond

var (
	DefaultBaseColor      = graphics.RGB(0xEC, 0xF0, 0xF1)
	DefaultHighlightColor = graphics.RGB(0xF7, 0xF9, 0xF9)
)

// Animator shows and hides animated placeholders.
type Animator struct {
	style      Style
	base       graphics.Color
	highlight  graphics.Color
	controller *animation.AnimationController
	colors     *animation.Tween[graphics.Color]
	targets    []view.Node
}

// Option configures an Animator.
type Option func(*Animator)

// WithStyle sets the animation style.
func WithStyle(s Style) Option {
	return func(a *Animator) { a.style = s }
}

// WithColors sets the placeholder base and highlight colors.
func WithColors(base, highlight graphics.Color) Option {
	return func(a *Animator) {
		a.base = base
		a.highlight = highlight
	}
}

// WithDuration sets the time for one sweep or one fade.
func WithDuration(d time.Duration) Option {
	return func(a *Animator) { a.controller.Duration = d }
}

// NewAnimator returns an idle animator.
func NewAnimator(opts ...Option) *Animator {
	a := &Animator{
		style:      StyleGradient,
		base:       DefaultBaseColor,
		highlight:  DefaultHighlightColor,
		controller: animation.NewAnimationController(DefaultDuration),
	}
	a.controller.Curve = animation.EaseInOut
	for _, opt := range opts {
		opt(a)
	}
	a.colors = animation.TweenColor(a.base, a.highlight)
	a.controller.AddListener(a.update)
	return a
}

// Style returns the animation style.
func (a *Animator) Style() Style {
	return a.style
}

// Show installs a placeholder on each skeletonable target and starts the
// animation if it is not running. Targets already showing are left alone.
func (a *Animator) Show(targets ...view.Node) {
	added := false
	for _, t := range targets {
		if t == nil || !t.Base().IsSkeletonable() || a.IsShowing(t) {
			continue
		}
		t.Base().SetPlaceholder(&view.Placeholder{Base: a.base, Highlight: a.highlight})
		a.targets = append(a.targets, t)
		added = true
	}
	if added && !a.controller.IsAnimating() {
		a.controller.Repeat(a.style == StylePulse)
	}
	a.update()
}

// Hide removes the placeholder from each target. The animation stops once
// no target is left.
func (a *Animator) Hide(targets ...view.Node) {
	for _, t := range targets {
		if !a.IsShowing(t) {
			continue
		}
		t.Base().SetPlaceholder(nil)
		a.targets = lo.Without(a.targets, t)
	}
	if len(a.targets) == 0 {
		a.controller.Reset()
	}
}

// HideAll removes every placeholder and stops the animation.
func (a *Animator) HideAll() {
	a.Hide(a.targets...)
}

// IsShowing reports whether t currently shows a placeholder from a.
func (a *Animator) IsShowing(t view.Node) bool {
	return lo.Contains(a.targets, t)
}

// Targets returns the views currently showing a placeholder.
func (a *Animator) Targets() []view.Node {
	return append([]view.Node(nil), a.targets...)
}

// IsAnimating reports whether the shimmer is running.
func (a *Animator) IsAnimating() bool {
	return a.controller.IsAnimating()
}

func (a *Animator) update() {
	for _, t := range a.targets {
		p := t.Base().Placeholder()
		if p == nil {
			continue
		}
		switch a.style {
		case StylePulse:
			p.Base = a.colors.Transform(a.controller)
		default:
			p.Phase = a.controller.Value
		}
	}
}
