package ui

import "github.com/charmbracelet/glamour"

const helpMarkdown = `# orderscope

Type to search orders by id or store name. Matching is fuzzy: small typos
and partial names still hit.

## Keys

| Key | Action |
|-----|--------|
| tab | cycle status filter (all → pending → in progress → completed) |
| ctrl+f | cycle minimum payment ($0, $75, $100, $150) |
| ctrl+g | toggle grouping by status |
| enter | apply the query immediately |
| esc | clear the query |
| ctrl+h | toggle this help |
| ctrl+c | quit |
`

// renderHelp lazily renders the markdown help overlay.
func (m *Model) renderHelp() string {
	if m.helpView != "" {
		return m.helpView
	}

	style := "light"
	if m.styles.Theme.IsDark {
		style = "dark"
	}
	out, err := glamour.Render(helpMarkdown, style)
	if err != nil {
		// Raw markdown is still readable.
		out = helpMarkdown
	}
	m.helpView = out
	return m.helpView
}
