package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func addButtonWidth() int {
	return lipgloss.Width(renderButton("Add", colorAccentFg, colorAccent))
}

func (m appModel) View() string {
	cw := m.contentWidth()

	title := lipgloss.PlaceHorizontal(cw, lipgloss.Center, styleTitle().Render(m.title))

	inputW := cw - addButtonWidth() - 1
	addRow := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderInputLine(inputW, m.input.View(), m.focus == focusAddInput),
		" ",
		renderButton("Add", colorAccentFg, colorAccent),
	)

	var body string
	if m.list.Len() == 0 {
		body = "\n" + lipgloss.PlaceHorizontal(cw, lipgloss.Center, styleMuted().Render(emptyListText))
	} else {
		body = m.itemsList.View()
	}

	parts := []string{
		title,
		"",
		addRow,
		"",
		body,
		"",
		m.renderMinibuffer(cw),
		m.renderFooter(cw),
	}
	screen := strings.Join(parts, "\n")

	switch m.modal {
	case modalConfirmDelete:
		return m.placeModal(renderConfirmModal(m.widthOrDefault(), deleteTitle, deleteQuestion, "Delete", "Cancel", m.confirmFocus))
	case modalHelp:
		return m.placeModal(renderHelpModal(m.widthOrDefault()))
	}
	return screen
}

func (m appModel) widthOrDefault() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m appModel) placeModal(box string) string {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	return lipgloss.Place(m.widthOrDefault(), h, lipgloss.Center, lipgloss.Center, box)
}

func (m appModel) renderMinibuffer(width int) string {
	txt := strings.TrimSpace(m.minibufferText)
	if txt == "" {
		return ""
	}
	return fitLine(styleMuted().Render(txt), width)
}

func (m appModel) renderFooter(width int) string {
	var hint string
	switch m.focus {
	case focusAddInput:
		hint = "enter: add  tab: list  ctrl+c: quit"
	case focusEdit:
		hint = "enter: save  esc: cancel"
	default:
		hint = "e: edit  d: delete  a: add  ?: help  q: quit"
	}
	return styleMuted().Render(fitLine(hint, width))
}
