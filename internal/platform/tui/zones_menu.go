package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zone-arcade/internal/config"
	"github.com/vovakirdan/zone-arcade/internal/core"
)

// ZonesSelection holds the user's selection from the Zone Arcade menu.
type ZonesSelection struct {
	Preset config.DifficultyPreset
}

var presetChoices = []struct {
	preset config.DifficultyPreset
	label  string
}{
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyEasy, "Easy (5 lives, slower spawns)"},
	{config.DifficultyHard, "Hard (2 lives, faster spawns)"},
}

// ZonesModeModel lets users choose a difficulty and preview the zone table.
type ZonesModeModel struct {
	zones       []config.Zone
	cursor      int
	inZoneTable bool
	width       int
	height      int
	keyMapper   *KeyMapper
	selection   ZonesSelection
	choosing    bool
	quitting    bool
	back        bool
}

// NewZonesModeModel creates a new difficulty selection model.
func NewZonesModeModel(zones []config.Zone, width, height int) ZonesModeModel {
	return ZonesModeModel{
		zones:     zones,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ZonesModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ZonesModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ZonesModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inZoneTable {
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.inZoneTable = false
		}
		return m, nil
	}

	// The last row opens the zone table.
	rows := len(presetChoices) + 1
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < rows-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == len(presetChoices) {
			m.inZoneTable = true
			return m, nil
		}
		m.choosing = false
		m.selection = ZonesSelection{Preset: presetChoices[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection or the zone table.
func (m ZonesModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inZoneTable {
		return m.viewZoneTable()
	}
	return m.viewPresetSelect()
}

func (m ZonesModeModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("Z O N E   A R C A D E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	labels := make([]string, 0, len(presetChoices)+1)
	for _, c := range presetChoices {
		labels = append(labels, c.label)
	}
	labels = append(labels, fmt.Sprintf("View zones (%d)...", len(m.zones)))

	for i, label := range labels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m ZonesModeModel) viewZoneTable() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("ZONES", m.width))
	b.WriteString("\n\n")

	for i, z := range m.zones {
		line := fmt.Sprintf("%d. %-16s boss at %5d  hp %4.0f  speed x%.2f",
			i+1, z.Name, z.BossThreshold, z.BossHP, z.EnemySpeedScale)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ZonesModeModel) Selected() *ZonesSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ZonesModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ZonesModeModel) WantsBack() bool {
	return m.back
}

// RunZonesModeSelector runs the difficulty selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunZonesModeSelector(zones []config.Zone, cfg core.RuntimeConfig) (*ZonesSelection, error) {
	model := NewZonesModeModel(zones, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ZonesModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
