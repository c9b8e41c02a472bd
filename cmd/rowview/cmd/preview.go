package cmd

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-drift/rowkit/pkg/graphics"
	"github.com/go-drift/rowkit/pkg/rowview"
)

var (
	iconStyle     = lipgloss.NewStyle().Padding(0, 1)
	gapStyle      = lipgloss.NewStyle().Width(2)
	dividerColor  = lipgloss.Color("#CFCFCF")
	skeletonBlock = "░"
)

func newPreviewCommand(opts *rootOptions) *cobra.Command {
	var cols int
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a row in the terminal",
		Long: `Builds a row from the catalog and draws a terminal mock of it: icons as
boxes, the labels in text order and the divider when shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			row, _, err := opts.buildRow()
			if err != nil {
				return err
			}
			defer row.Dispose()

			_, err = cmd.OutOrStdout().Write([]byte(renderPreview(row, cols) + "\n"))
			return err
		},
	}
	addRowFlag(cmd, opts)
	cmd.Flags().IntVarP(&cols, "width", "w", 48, "preview width in columns")
	return cmd
}

// renderPreview draws row cols columns wide.
func renderPreview(row *rowview.IconRow, cols int) string {
	var leading, trailing []string
	if img := row.LeftIcon(); img != nil {
		border := lipgloss.NormalBorder()
		if row.LeftAccessoryStyle().IsCircle() {
			border = lipgloss.RoundedBorder()
		}
		leading = append(leading, iconStyle.Copy().Border(border).Render(iconGlyph(img)), gapStyle.Render(""))
	}
	if img := row.RightIcon(); img != nil {
		trailing = append(trailing, gapStyle.Render(""), iconStyle.Copy().Border(lipgloss.NormalBorder()).Render(iconGlyph(img)))
	}
	used := lo.SumBy(leading, lipgloss.Width) + lo.SumBy(trailing, lipgloss.Width)
	textWidth := max(cols-used, 1)

	parts := make([]string, 0, len(leading)+len(trailing)+1)
	parts = append(parts, leading...)
	parts = append(parts, renderText(row, textWidth))
	parts = append(parts, trailing...)
	out := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if row.ShowsDivider() {
		out = lipgloss.JoinVertical(lipgloss.Left, out,
			lipgloss.NewStyle().Foreground(dividerColor).Render(strings.Repeat("─", cols)))
	}
	return out
}

func renderText(row *rowview.IconRow, width int) string {
	title := textLine(row.Title(), row.TitleFont(), row.TitleColor(), width)
	subtitle := textLine(row.Subtitle(), row.SubtitleFont(), row.SubtitleColor(), width)
	if row.IsShowingPlaceholder() {
		title = skeletonLine(row.Title(), width)
		subtitle = skeletonLine(row.Subtitle(), width)
	}

	lines := []string{title, subtitle}
	if row.TextOrder() == rowview.SubtitleFirst {
		lines = []string{subtitle, title}
	}
	lines = lo.Filter(lines, func(l string, _ int) bool { return l != "" })
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func textLine(text string, font graphics.Font, color graphics.Color, width int) string {
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Bold(font.Weight >= graphics.FontWeightSemibold).
		Foreground(lipgloss.Color(color.WithAlpha8(0xFF).Hex())).
		MaxWidth(width).
		Render(text)
}

func skeletonLine(text string, width int) string {
	if text == "" {
		return ""
	}
	return strings.Repeat(skeletonBlock, min(lipgloss.Width(text), width))
}

func iconGlyph(img *graphics.Image) string {
	if img.Name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(img.Name)
	return string(unicode.ToUpper(r))
}
