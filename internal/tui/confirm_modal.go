package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxW = 60
	modalMinW = 30
	modalPadX = 2
)

func modalWidth(width int) int {
	w := width - 4
	if w > modalMaxW {
		w = modalMaxW
	}
	if w < modalMinW {
		w = modalMinW
	}
	return w
}

func modalBodyWidth(width int) int {
	return modalWidth(width) - 2*modalPadX
}

func renderModalBox(width int, title string, content string) string {
	w := modalWidth(width)
	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, modalPadX).
		Bold(true).
		Foreground(colorModalHeaderFg).
		Background(colorModalHeaderBg).
		Render(title)
	body := lipgloss.NewStyle().
		Width(w).
		Padding(1, modalPadX).
		Foreground(colorModalSurfaceFg).
		Background(colorModalSurfaceBg).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders here: some terminals show background artifacts when nesting bordered
	// components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorModalSurfaceFg).
		Background(colorControlBg)
	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	switch focus {
	case confirmFocusConfirm:
		confirm = btnBase.Foreground(colorDangerFg).Background(colorDangerBg).Bold(true).Render(confirmLabel)
	case confirmFocusCancel:
		cancel = btnBase.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true).Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorModalSurfaceBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, cancel, sep, confirm)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   y: delete   esc/n: cancel")

	content := strings.Join([]string{
		lipgloss.NewStyle().Width(bodyW).Render(body),
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}
