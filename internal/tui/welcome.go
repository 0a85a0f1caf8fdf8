package tui

type welcomeModel struct {
	items     []string
	idx       int
	savedUser string
	status    string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Attempt history", "About"}}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("CITPC Internet Login") + "\n\nChoose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}

	out += "\n"
	if m.savedUser != "" {
		out += "Saved credential: " + m.savedUser + "\n"
	} else {
		out += "No saved credential\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	hotKeys := "q quit"
	if m.savedUser != "" {
		hotKeys = "d clear saved credential  q quit"
	}
	out += "\n" + helpStyle.Render(hotKeys)
	return out
}
