package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type homeItem struct {
	label  string
	target ViewState
}

type HomeModel struct {
	copy   Copy
	items  []homeItem
	cursor int
	keys   menuKeyMap
	help   help.Model
}

func NewHomeModel(c Copy) *HomeModel {
	return &HomeModel{
		copy: c,
		items: []homeItem{
			{label: c.LoginAction, target: ViewLogin},
			{label: c.RegisterAction, target: ViewRegister},
		},
		keys: newMenuKeyMap(c),
		help: help.New(),
	}
}

func (m HomeModel) Init() tea.Cmd {
	return nil
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			return m, NavigateTo(m.items[m.cursor].target, "")
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m HomeModel) View() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(m.copy.HomeTitle))
	content.WriteString("\n\n")
	content.WriteString(subtitleStyle.Render(m.copy.HomeSubtitle))
	content.WriteString("\n\n")

	for i, item := range m.items {
		cursor := " "
		style := itemStyle
		if m.cursor == i {
			cursor = ">"
			style = selectedStyle
		}
		content.WriteString(style.Render(fmt.Sprintf("%s %s", cursor, item.label)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return cardStyle.Render(content.String())
}
