package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.debugKeyMsg(msg)
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.modal {
		case modalConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modalHelp:
			switch msg.String() {
			case "esc", "?", "q", "enter", "ctrl+g":
				m.modal = modalNone
			}
			return m, nil
		}
		switch m.focus {
		case focusAddInput:
			return m.updateAddInput(msg)
		case focusEdit:
			return m.updateEdit(msg)
		default:
			return m.updateList(msg)
		}
	}

	// Non-key messages (cursor blink) go to whichever input is focused.
	var cmd tea.Cmd
	switch m.focus {
	case focusAddInput:
		m.input, cmd = m.input.Update(msg)
	case focusEdit:
		m.editInput, cmd = m.editInput.Update(msg)
		m.refreshList(m.editingID)
	}
	return m, cmd
}

func (m appModel) updateAddInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		it, ok := m.list.Add(m.input.Value())
		if !ok {
			return m, nil
		}
		m.debugLogf("add id=%s text=%q", it.ID, it.Text)
		m.input.SetValue("")
		m.minibufferText = ""
		m.refreshList(it.ID)
		return m, nil
	case "tab", "down", "esc":
		m.setFocus(focusList)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.modal = modalHelp
		return m, nil
	case "a", "i", "tab":
		m.setFocus(focusAddInput)
		return m, textinput.Blink
	case "esc":
		m.minibufferText = ""
		return m, nil
	case "e", "enter":
		if it, ok := selectedGroceryItem(m.itemsList); ok {
			m.beginEdit(it.ID)
			return m, textinput.Blink
		}
		return m, nil
	case "d", "x", "delete":
		if it, ok := selectedGroceryItem(m.itemsList); ok && m.list.RequestDelete(it.ID) {
			m.modal = modalConfirmDelete
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.itemsList, cmd = m.itemsList.Update(msg)
	return m, cmd
}

func (m *appModel) beginEdit(id string) {
	if !m.list.BeginEdit(id) {
		return
	}
	it, _ := m.list.Find(id)
	m.editingID = id
	m.editInput.SetValue(it.Text)
	m.editInput.CursorEnd()
	m.minibufferText = ""
	m.setFocus(focusEdit)
	m.refreshList(id)
	m.debugLogf("edit begin id=%s", id)
}

func (m *appModel) endEdit() {
	id := m.editingID
	m.editingID = ""
	m.editInput.SetValue("")
	m.setFocus(focusList)
	m.refreshList(id)
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if !m.list.SaveEdit(m.editingID, m.editInput.Value()) {
			m.minibufferText = "Item text can't be empty"
			return m, nil
		}
		m.debugLogf("edit save id=%s", m.editingID)
		m.minibufferText = ""
		m.endEdit()
		return m, nil
	case "esc":
		m.list.CancelEdit(m.editingID)
		m.debugLogf("edit cancel id=%s", m.editingID)
		m.minibufferText = ""
		m.endEdit()
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	m.refreshList(m.editingID)
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m, nil
	case "y":
		m.confirmDelete()
		return m, nil
	case "n", "esc", "ctrl+g":
		m.cancelDelete()
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmDelete()
		} else {
			m.cancelDelete()
		}
		return m, nil
	}
	return m, nil
}

func (m *appModel) confirmDelete() {
	id, _ := m.list.PendingDelete()
	it, _ := m.list.Find(id)
	m.modal = modalNone
	if m.list.ConfirmDelete() {
		m.minibufferText = "Deleted " + strconv.Quote(it.Text)
		m.debugLogf("delete id=%s", id)
	}
	m.refreshList("")
}

func (m *appModel) cancelDelete() {
	m.list.CancelDelete()
	m.modal = modalNone
}
