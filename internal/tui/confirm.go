package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Clear saved credential for \"" + m.message + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
