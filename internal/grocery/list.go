package grocery

import (
	"strings"

	"github.com/google/uuid"
)

// Item is a single grocery list entry.
type Item struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Editing bool   `json:"editing"`
}

// List owns the ordered item sequence. Insertion order is display order.
//
// A List is not safe for concurrent use; all mutations are expected to happen on
// the UI's update loop.
type List struct {
	items         []Item
	pendingDelete string
	newID         func() string
}

func New() *List {
	return &List{newID: newItemID}
}

func newItemID() string {
	return "item-" + uuid.NewString()
}

// Items returns a copy of the current sequence.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int { return len(l.items) }

func (l *List) Find(id string) (Item, bool) {
	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	return Item{}, false
}

// Editing returns the item currently being edited, if any.
func (l *List) Editing() (Item, bool) {
	for _, it := range l.items {
		if it.Editing {
			return it, true
		}
	}
	return Item{}, false
}

func (l *List) index(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new item with trimmed text. Blank text is ignored.
func (l *List) Add(text string) (Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Item{}, false
	}
	it := Item{ID: l.uniqueID(), Text: text}
	l.items = append(l.items, it)
	return it, true
}

func (l *List) uniqueID() string {
	gen := l.newID
	if gen == nil {
		gen = newItemID
	}
	for {
		id := gen()
		if id != "" && l.index(id) < 0 {
			return id
		}
	}
}

// BeginEdit marks id as the only item being edited. Unknown ids are ignored.
func (l *List) BeginEdit(id string) bool {
	if l.index(id) < 0 {
		return false
	}
	for i := range l.items {
		l.items[i].Editing = l.items[i].ID == id
	}
	return true
}

// SaveEdit commits text to id and leaves edit mode. Blank text keeps the item
// in edit mode with its previous text.
func (l *List) SaveEdit(id string, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items[i].Text = text
	l.items[i].Editing = false
	return true
}

// CancelEdit leaves edit mode without touching the item's text.
func (l *List) CancelEdit(id string) bool {
	i := l.index(id)
	if i < 0 || !l.items[i].Editing {
		return false
	}
	l.items[i].Editing = false
	return true
}

// RequestDelete records id as awaiting confirmation. It replaces any earlier
// unconfirmed request.
func (l *List) RequestDelete(id string) bool {
	if l.index(id) < 0 {
		return false
	}
	l.pendingDelete = id
	return true
}

// PendingDelete returns the id awaiting confirmation, if any.
func (l *List) PendingDelete() (string, bool) {
	return l.pendingDelete, l.pendingDelete != ""
}

// ConfirmDelete removes the item recorded by RequestDelete.
func (l *List) ConfirmDelete() bool {
	id := l.pendingDelete
	l.pendingDelete = ""
	i := l.index(id)
	if id == "" || i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

func (l *List) CancelDelete() bool {
	had := l.pendingDelete != ""
	l.pendingDelete = ""
	return had
}
