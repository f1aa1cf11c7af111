package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusAddInput focusArea = iota
	focusList
	focusEdit
)

func focusToString(f focusArea) string {
	switch f {
	case focusAddInput:
		return "add"
	case focusList:
		return "list"
	case focusEdit:
		return "edit"
	default:
		return "unknown"
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalHelp
)

type confirmModalFocus int

const (
	confirmFocusCancel confirmModalFocus = iota
	confirmFocusConfirm
)

func (f confirmModalFocus) toggle() confirmModalFocus {
	if f == confirmFocusConfirm {
		return confirmFocusCancel
	}
	return confirmFocusConfirm
}

func (m appModel) debugKeyMsg(k tea.KeyMsg) {
	if !m.debugEnabled {
		return
	}
	m.debugLogf(
		"key focus=%s modal=%d str=%q type=%v alt=%v items=%d",
		focusToString(m.focus),
		int(m.modal),
		k.String(),
		k.Type,
		k.Alt,
		m.list.Len(),
	)
}
