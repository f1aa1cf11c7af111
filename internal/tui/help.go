package tui

const keysMarkdown = `
## Add field

| Key | Action |
|---|---|
| enter | add the typed item |
| tab, down, esc | move to the list |

## List

| Key | Action |
|---|---|
| up/down, k/j, ctrl+p/ctrl+n | move selection |
| e, enter | edit the selected item |
| d, x, delete | delete the selected item (asks first) |
| a, i, tab | back to the add field |
| ? | toggle this help |
| q, ctrl+c | quit |

## Editing

| Key | Action |
|---|---|
| enter | save (blank text is not saved) |
| esc | stop editing |

## Delete prompt

| Key | Action |
|---|---|
| tab, left/right | switch button |
| enter | choose the focused button |
| y | delete |
| n, esc, ctrl+g | cancel |
`

// KeysMarkdown returns the keybinding reference as markdown.
func KeysMarkdown() string { return keysMarkdown }

func renderHelpModal(width int) string {
	return renderModalBox(width, "Keys", renderMarkdown(keysMarkdown, modalBodyWidth(width)))
}
