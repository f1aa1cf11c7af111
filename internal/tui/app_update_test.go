package tui

import (
	"reflect"
	"strings"
	"testing"

	"grocery-cli/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		mm, _ := m.Update(msg)
		m = mm.(appModel)
	}
	return m
}

func listTexts(m appModel) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.Text)
	}
	return out
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	m := newAppModel(config.UIConfig{}, false)
	return press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// addItems types each text into the add field and submits it.
func addItems(t *testing.T, m appModel, texts ...string) appModel {
	t.Helper()
	for _, s := range texts {
		m = press(t, m, keyRunes(s), tea.KeyMsg{Type: tea.KeyEnter})
	}
	return m
}

func TestNewAppModel_StartsInAddFieldWithEmptyList(t *testing.T) {
	m := newTestModel(t)
	if m.focus != focusAddInput {
		t.Fatalf("expected add field focus, got %s", focusToString(m.focus))
	}
	if !m.input.Focused() {
		t.Fatalf("expected add input to be focused")
	}
	if m.list.Len() != 0 {
		t.Fatalf("expected empty list")
	}
	v := m.View()
	if !strings.Contains(v, emptyListText) {
		t.Fatalf("expected empty placeholder in view:\n%s", v)
	}
	if !strings.Contains(v, "Grocery List") {
		t.Fatalf("expected default title in view:\n%s", v)
	}
}

func TestAddField_EnterAppendsAndClears(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk", "Eggs")

	if got := listTexts(m); !reflect.DeepEqual(got, []string{"Milk", "Eggs"}) {
		t.Fatalf("unexpected items: %#v", got)
	}
	if got := m.input.Value(); got != "" {
		t.Fatalf("expected add input cleared, got %q", got)
	}
	if m.focus != focusAddInput {
		t.Fatalf("expected focus to stay in add field")
	}
	if it, ok := selectedGroceryItem(m.itemsList); !ok || it.Text != "Eggs" {
		t.Fatalf("expected newest item selected, got %#v", it)
	}
	if v := m.View(); strings.Contains(v, emptyListText) {
		t.Fatalf("expected placeholder to disappear once items exist")
	}
}

func TestAddField_BlankInputIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyRunes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	if m.list.Len() != 0 {
		t.Fatalf("expected blank input not to add, got %#v", listTexts(m))
	}
}

func TestAddField_QTypesInsteadOfQuitting(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyRunes("q"))
	if m.focus != focusAddInput {
		t.Fatalf("expected focus to stay in add field, got %s", focusToString(m.focus))
	}
	if got := m.input.Value(); got != "q" {
		t.Fatalf("expected q in input, got %q", got)
	}
}

func TestList_QQuits(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestFocus_TabTogglesBetweenAddFieldAndList(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusList || !*m.listActive || m.input.Focused() {
		t.Fatalf("expected list focus, got %s", focusToString(m.focus))
	}
	m = press(t, m, keyRunes("a"))
	if m.focus != focusAddInput || *m.listActive || !m.input.Focused() {
		t.Fatalf("expected add field focus, got %s", focusToString(m.focus))
	}
}

func TestEdit_SaveReplacesText(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk", "Eggs")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyUp}, keyRunes("e"))

	if m.focus != focusEdit {
		t.Fatalf("expected edit focus, got %s", focusToString(m.focus))
	}
	if got := m.editInput.Value(); got != "Milk" {
		t.Fatalf("expected editor prefilled with Milk, got %q", got)
	}
	it, ok := m.list.Editing()
	if !ok || it.Text != "Milk" {
		t.Fatalf("expected Milk in edit mode, got %#v", it)
	}

	m.editInput.SetValue("Oat Milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := listTexts(m); !reflect.DeepEqual(got, []string{"Oat Milk", "Eggs"}) {
		t.Fatalf("unexpected items: %#v", got)
	}
	if _, ok := m.list.Editing(); ok {
		t.Fatalf("expected edit mode to end")
	}
	if m.focus != focusList {
		t.Fatalf("expected focus back on list, got %s", focusToString(m.focus))
	}
}

func TestEdit_BlankSaveKeepsEditorOpen(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})

	m.editInput.SetValue("   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.focus != focusEdit {
		t.Fatalf("expected editor to stay open, got %s", focusToString(m.focus))
	}
	it, ok := m.list.Editing()
	if !ok || it.Text != "Milk" {
		t.Fatalf("expected Milk still editing with old text, got %#v ok=%v", it, ok)
	}
	if m.minibufferText == "" {
		t.Fatalf("expected a minibuffer hint")
	}
}

func TestEdit_EscCancels(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("e"))
	m.editInput.SetValue("Bread")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if got := listTexts(m); !reflect.DeepEqual(got, []string{"Milk"}) {
		t.Fatalf("expected text unchanged, got %#v", got)
	}
	if _, ok := m.list.Editing(); ok {
		t.Fatalf("expected edit mode to end")
	}
	if m.focus != focusList {
		t.Fatalf("expected list focus, got %s", focusToString(m.focus))
	}
}

func TestEdit_TypingUpdatesInlineRow(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("e"), keyRunes("s"))

	if got := m.editInput.Value(); got != "Milks" {
		t.Fatalf("expected typed rune appended, got %q", got)
	}
	gi, ok := m.itemsList.SelectedItem().(groceryListItem)
	if !ok || !strings.Contains(gi.editView, "Milks") {
		t.Fatalf("expected row to carry the editor view, got %#v", gi)
	}
}

func TestDelete_OpensConfirmModal(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk", "Eggs")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("d"))

	if m.modal != modalConfirmDelete {
		t.Fatalf("expected confirm modal, got %v", m.modal)
	}
	if m.confirmFocus != confirmFocusCancel {
		t.Fatalf("expected Cancel to be focused by default")
	}
	if m.list.Len() != 2 {
		t.Fatalf("expected no removal before confirmation")
	}
	v := m.View()
	if !strings.Contains(v, deleteTitle) || !strings.Contains(v, deleteQuestion) {
		t.Fatalf("expected confirm prompt in view:\n%s", v)
	}
}

func TestDelete_CancelPaths(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{name: "esc", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyEsc}}},
		{name: "n", keys: []tea.Msg{keyRunes("n")}},
		{name: "enter on cancel", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}},
		{name: "ctrl+g", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyCtrlG}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = addItems(t, m, "Milk", "Eggs")
			m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("d"))
			m = press(t, m, tt.keys...)

			if m.modal != modalNone {
				t.Fatalf("expected modal closed, got %v", m.modal)
			}
			if got := listTexts(m); !reflect.DeepEqual(got, []string{"Milk", "Eggs"}) {
				t.Fatalf("expected list unchanged, got %#v", got)
			}
			if _, ok := m.list.PendingDelete(); ok {
				t.Fatalf("expected pending delete cleared")
			}
		})
	}
}

func TestDelete_ConfirmPaths(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{name: "y", keys: []tea.Msg{keyRunes("y")}},
		{name: "tab then enter", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter}}},
		{name: "right then enter", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = addItems(t, m, "Milk", "Eggs")
			m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("d"))
			m = press(t, m, tt.keys...)

			if m.modal != modalNone {
				t.Fatalf("expected modal closed, got %v", m.modal)
			}
			if got := listTexts(m); !reflect.DeepEqual(got, []string{"Milk"}) {
				t.Fatalf("expected Eggs removed, got %#v", got)
			}
			if it, ok := selectedGroceryItem(m.itemsList); !ok || it.Text != "Milk" {
				t.Fatalf("expected selection to move to remaining item, got %#v", it)
			}
			if !strings.Contains(m.minibufferText, "Eggs") {
				t.Fatalf("expected minibuffer to mention deleted item, got %q", m.minibufferText)
			}
		})
	}
}

func TestDelete_LastItemShowsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("x"), keyRunes("y"))
	if m.list.Len() != 0 {
		t.Fatalf("expected empty list")
	}
	if v := m.View(); !strings.Contains(v, emptyListText) {
		t.Fatalf("expected empty placeholder in view:\n%s", v)
	}
}

func TestDelete_EmptyListDoesNotOpenModal(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("d"))
	if m.modal != modalNone {
		t.Fatalf("expected no modal on empty list, got %v", m.modal)
	}
}

func TestHelp_ToggleFromList(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, keyRunes("?"))
	if m.modal != modalHelp {
		t.Fatalf("expected help modal, got %v", m.modal)
	}
	if v := m.View(); !strings.Contains(v, "Keys") {
		t.Fatalf("expected help title in view:\n%s", v)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != modalNone {
		t.Fatalf("expected help closed, got %v", m.modal)
	}
}

func TestScenario_AddEditDeleteThroughKeys(t *testing.T) {
	m := newTestModel(t)
	m = addItems(t, m, "Milk", "Eggs")
	if got := listTexts(m); !reflect.DeepEqual(got, []string{"Milk", "Eggs"}) {
		t.Fatalf("after adds: %#v", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyUp}, keyRunes("e"))
	m.editInput.SetValue("Oat Milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := listTexts(m); !reflect.DeepEqual(got, []string{"Oat Milk", "Eggs"}) {
		t.Fatalf("after edit: %#v", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, keyRunes("d"), keyRunes("y"))
	if got := listTexts(m); !reflect.DeepEqual(got, []string{"Oat Milk"}) {
		t.Fatalf("after delete: %#v", got)
	}
}

func TestNewAppModel_UsesConfiguredText(t *testing.T) {
	m := newAppModel(config.UIConfig{Title: "Shopping", Placeholder: "What do we need?", CharLimit: 5}, false)
	if m.title != "Shopping" {
		t.Fatalf("expected configured title, got %q", m.title)
	}
	if m.input.Placeholder != "What do we need?" {
		t.Fatalf("expected configured placeholder, got %q", m.input.Placeholder)
	}
	m = press(t, m, keyRunes("Watermelon"))
	if got := m.input.Value(); got != "Water" {
		t.Fatalf("expected char limit to apply, got %q", got)
	}
}
