// Package rowview provides list-row components.
//
// A [BaseRow] is a horizontal content stack inset into the row:
//
//	[leftSlot] [textual content: title / subtitle] [rightSlot]
//
// with a 0.5pt divider along the bottom edge. An accessory slot takes part
// in the content stack only while it has children, so an empty slot takes
// no space. The title and subtitle labels always live in the text stack;
// [TextOrder] only changes their order.
//
// An [IconRow] fills the slots with image views. Setting an icon to nil
// empties its slot and removes it from the stack:
//
//	row := rowview.NewIconRow()
//	row.SetTitle("Account")
//	row.SetLeftIcon(graphics.NewImage("avatar", 80, 80))
//	row.SizeToFit(375)
//
// Every constraint group a row owns is a [constraint.Set]. Rebuilding one
// releases its old members before activating the new ones, so repeated
// configuration never accumulates constraints.
//
// Rows are not safe for concurrent use. Configure them from the thread
// that drives layout.
package rowview
