package tui

import (
	"strings"

	"grocery-cli/internal/config"
	"grocery-cli/internal/grocery"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
)

type appModel struct {
	list *grocery.List

	title string

	width  int
	height int

	focus        focusArea
	modal        modalKind
	confirmFocus confirmModalFocus

	input     textinput.Model
	editInput textinput.Model
	editingID string

	itemsList list.Model
	// listActive is shared with the list delegate so rows know when to show selection.
	listActive *bool

	minibufferText string

	debugEnabled bool
}

const (
	maxContentW    = 96
	defaultWidth   = 80
	defaultHeight  = 24
	chromeLines    = 8
	minListHeight  = 3
	emptyListText  = "Your grocery list is empty. Add some items!"
	deleteTitle    = "Delete Item"
	deleteQuestion = "Are you sure you want to delete this item?"
)

func newAppModel(ui config.UIConfig, debug bool) appModel {
	m := appModel{
		list:         grocery.New(),
		title:        strings.TrimSpace(ui.Title),
		focus:        focusAddInput,
		listActive:   new(bool),
		debugEnabled: debug,
	}
	if m.title == "" {
		m.title = "Grocery List"
	}

	placeholder := ui.Placeholder
	if strings.TrimSpace(placeholder) == "" {
		placeholder = "Add an item..."
	}
	charLimit := ui.CharLimit
	if charLimit <= 0 {
		charLimit = 200
	}

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.Placeholder = placeholder
	m.input.CharLimit = charLimit
	m.input.Width = 40
	m.input.Focus()

	m.editInput = textinput.New()
	m.editInput.Prompt = ""
	m.editInput.CharLimit = charLimit
	m.editInput.Width = 40

	m.itemsList = newList(m.title, []list.Item{}, m.listActive)
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m appModel) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	if w > maxContentW {
		w = maxContentW
	}
	return w
}

func (m *appModel) resize(w, h int) {
	m.width = w
	m.height = h

	cw := m.contentWidth()
	inputW := cw - addButtonWidth() - 1
	if inputW < 10 {
		inputW = 10
	}
	// Leave room for the focus marker + padding around the input view.
	m.input.Width = inputW - 4
	m.editInput.Width = cw / 2

	lh := h - chromeLines
	if lh < minListHeight {
		lh = minListHeight
	}
	m.itemsList.SetSize(cw, lh)
}

func (m *appModel) setFocus(f focusArea) {
	m.focus = f
	*m.listActive = f == focusList
	switch f {
	case focusAddInput:
		m.input.Focus()
		m.editInput.Blur()
	case focusEdit:
		m.input.Blur()
		m.editInput.Focus()
	default:
		m.input.Blur()
		m.editInput.Blur()
	}
}

// refreshList rebuilds the rendered rows from the list manager, keeping the
// selection on selectID when it still exists.
func (m *appModel) refreshList(selectID string) {
	if selectID == "" {
		if it, ok := selectedGroceryItem(m.itemsList); ok {
			selectID = it.ID
		}
	}
	prev := m.itemsList.Index()
	m.itemsList.SetItems(toListItems(m.list.Items(), m.editInput.View()))
	if selectID != "" && selectListItemByID(&m.itemsList, selectID) {
		return
	}
	n := len(m.itemsList.Items())
	switch {
	case n == 0:
		m.itemsList.Select(0)
	case prev >= n:
		m.itemsList.Select(n - 1)
	default:
		m.itemsList.Select(prev)
	}
}
