package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// groceryItemDelegate renders one row per item. The selection highlight only
// shows while the list has focus; active is shared with the app model.
type groceryItemDelegate struct {
	active *bool
}

func newGroceryItemDelegate(active *bool) groceryItemDelegate {
	return groceryItemDelegate{active: active}
}

func (d groceryItemDelegate) Height() int  { return 1 }
func (d groceryItemDelegate) Spacing() int { return 0 }
func (d groceryItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d groceryItemDelegate) isActive() bool {
	return d.active != nil && *d.active
}

func (d groceryItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}
	gi, ok := item.(groceryListItem)
	if !ok {
		fmt.Fprint(w, fitLine(fmt.Sprint(item), contentW))
		return
	}
	selected := index == m.Index() && d.isActive()
	fmt.Fprint(w, renderGroceryRow(gi, contentW, selected))
}

func renderGroceryRow(gi groceryListItem, width int, selected bool) string {
	if gi.item.Editing {
		left := glyphEditing() + " " + gi.editView
		right := styleMuted().Render("enter: save  esc: cancel")
		return fitLine(joinLeftRight(left, right, width), width)
	}

	prefix := "  "
	if selected {
		prefix = glyphCursor() + " "
	}
	left := prefix + glyphBullet() + " " + gi.item.Text
	if !selected {
		return fitLine(left, width)
	}
	sep := " " + glyphSeparator() + " "
	right := renderButton("e edit", colorAccentFg, colorAccent) + sep + renderButton("d delete", colorDangerFg, colorDangerBg)
	row := joinLeftRight(left, right, width)
	st := lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	return st.Render(fitLine(row, width))
}

// joinLeftRight right-aligns right when both fit; otherwise left wins.
func joinLeftRight(left string, right string, width int) string {
	lw := xansi.StringWidth(left)
	rw := xansi.StringWidth(right)
	if lw+1+rw > width {
		return left
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

func fitLine(line string, width int) string {
	lineW := xansi.StringWidth(line)
	if lineW < width {
		return line + strings.Repeat(" ", width-lineW)
	}
	if lineW > width {
		// Terminate styling so a cut escape sequence can't bleed into the next row.
		return xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}

func renderButton(label string, fg lipgloss.TerminalColor, bg lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(fg).
		Background(bg).
		Render(label)
}
