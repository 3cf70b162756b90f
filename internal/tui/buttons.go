package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Action is an intent a button sends to the engine
type Action int

const (
	ActionHit Action = iota
	ActionStand
	ActionRestart
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

var buttonOrder = []Action{ActionHit, ActionStand, ActionRestart}

// region is a clickable rectangle in terminal cells, recorded at render time
type region struct {
	action        Action
	x, y          int
	width, height int
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

// renderButtons lays the buttons out in one row starting at (originX,
// originY) and returns the row with the hit region of each button.
func renderButtons(theme Theme, canAct bool, originX, originY int) (string, []region) {
	const gap = 2

	var (
		parts   []string
		regions []region
	)
	x := originX
	for i, action := range buttonOrder {
		style := theme.Button
		if !canAct && action != ActionRestart {
			style = theme.ButtonDisabled
		}
		rendered := style.Render(action.String())

		if i > 0 {
			parts = append(parts, lipgloss.NewStyle().Width(gap).Render(""))
			x += gap
		}
		parts = append(parts, rendered)

		w, h := lipgloss.Size(rendered)
		regions = append(regions, region{action: action, x: x, y: originY, width: w, height: h})
		x += w
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), regions
}

func hitTest(regions []region, x, y int) (Action, bool) {
	for _, r := range regions {
		if r.contains(x, y) {
			return r.action, true
		}
	}
	return 0, false
}
