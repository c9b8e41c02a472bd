// Package view provides a small retained view hierarchy with
// constraint-driven layout: plain container views, stack views, labels and
// image views.
//
// Every node embeds [View] and registers itself with SetSelf so the layout
// pass can dispatch to overridden methods, the same way render objects
// register themselves in a render tree:
//
//	type Badge struct {
//	    view.View
//	}
//
//	func NewBadge(engine *constraint.Engine) *Badge {
//	    b := &Badge{}
//	    b.Init("badge", engine)
//	    b.SetSelf(b)
//	    return b
//	}
//
// # Layout
//
// Geometry is resolved from the constraints active in the hierarchy's
// [constraint.Engine]. Mutations mark the affected views with
// SetNeedsLayout, which walks up to the root; [View.LayoutIfNeeded] then runs
// LayoutSubviews top-down over the dirty subtree. A node can override
// LayoutSubviews to adjust properties that depend on resolved sizes before
// delegating to the embedded implementation.
//
// All views of one hierarchy share a single engine and are owned by the UI
// thread; nothing here is safe for concurrent use.
package view
