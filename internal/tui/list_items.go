package tui

import (
	"grocery-cli/internal/grocery"

	"github.com/charmbracelet/bubbles/list"
)

type groceryListItem struct {
	item grocery.Item
	// editView is the rendered inline editor while item.Editing is set.
	editView string
}

func (i groceryListItem) FilterValue() string { return i.item.Text }
func (i groceryListItem) Title() string       { return i.item.Text }

func newList(title string, items []list.Item, active *bool) list.Model {
	l := list.New(items, newGroceryItemDelegate(active), 0, 0)
	l.Title = title
	// We render our own title, footer and minibuffer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	// Quit is handled by the app model, not the list.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	// Add Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func toListItems(items []grocery.Item, editView string) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		li := groceryListItem{item: it}
		if it.Editing {
			li.editView = editView
		}
		out = append(out, li)
	}
	return out
}

func selectListItemByID(l *list.Model, id string) bool {
	for i, it := range l.Items() {
		if gi, ok := it.(groceryListItem); ok && gi.item.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}

func selectedGroceryItem(l list.Model) (grocery.Item, bool) {
	if gi, ok := l.SelectedItem().(groceryListItem); ok {
		return gi.item, true
	}
	return grocery.Item{}, false
}
