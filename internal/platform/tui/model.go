package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-corridor/internal/config"
	"github.com/vovakirdan/tui-corridor/internal/core"
	"github.com/vovakirdan/tui-corridor/internal/engine"
	"github.com/vovakirdan/tui-corridor/internal/storage"
)

// autosaveSlot is the save slot used for checkpoint and level-advance saves.
const autosaveSlot = "autosave"

var namePanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("3")).
	Padding(1, 3)

// Model is the Bubble Tea model driving one corridor run.
type Model struct {
	eng      *engine.Engine
	screen   *core.Screen
	store    *storage.Store
	settings config.Settings

	keyMapper *KeyMapper
	input     core.InputFrame
	snap      engine.Snapshot

	tickRate int
	lastTick time.Time

	naming    bool // entering a leaderboard name before quitting
	nameInput textinput.Model
	quitting  bool
}

// NewModel creates a model for a fresh campaign, or resumes from a save
// record when one is given.
func NewModel(store *storage.Store, settings config.Settings, seed int64, resume *engine.SaveRecord, tickRate int) Model {
	settings.Normalize()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	eng := engine.NewGame()
	eng.ApplySettings(settings)
	if resume != nil {
		eng.LoadSave(*resume)
	} else {
		eng.StartCampaign(seed, settings.ParsedDifficulty())
	}

	return Model{
		eng:       eng,
		screen:    core.NewScreen(settings.Width, settings.Height),
		store:     store,
		settings:  settings,
		keyMapper: NewKeyMapper(),
		snap:      eng.Snapshot(),
		tickRate:  tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.naming {
		return m.handleNameKey(msg)
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		return m.beginQuit()
	}
	return m, nil
}

// handleNameKey processes input while the leaderboard name prompt is shown.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submitScore(m.nameInput.Value())
		m.quitting = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize applies a new terminal size to screen and raycaster.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.settings.Width = msg.Width
	m.settings.Height = msg.Height
	m.settings.Normalize()

	m.screen.Resize(msg.Width, msg.Height)
	m.eng.ApplySettings(m.settings)
	m.snap = m.eng.Snapshot()
	return m, nil
}

// handleTick advances the simulation by the real elapsed time since the last
// tick and persists the autosave when the engine signals one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.naming {
		// The world pauses while the name prompt is up.
		return m, tickCmd(m.tickRate)
	}

	dt := 1.0 / float64(m.tickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.eng.Update(m.input, dt)
	m.input.Clear()

	if m.eng.TryConsumeAutosave() && m.store != nil {
		//nolint:errcheck // Best-effort autosave, the run continues regardless
		m.store.PutSave(m.eng.CreateSave(autosaveSlot))
	}

	m.snap = m.eng.Snapshot()
	return m, tickCmd(m.tickRate)
}

// beginQuit either shows the leaderboard name prompt or quits outright.
func (m Model) beginQuit() (tea.Model, tea.Cmd) {
	if m.store == nil || m.snap.Score <= 0 {
		m.quitting = true
		return m, tea.Quit
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.SetValue(m.settings.PlayerName)
	ti.CharLimit = 24
	ti.Width = 24
	ti.Focus()

	m.nameInput = ti
	m.naming = true
	return m, textinput.Blink
}

// submitScore records the finished run on the leaderboard.
func (m Model) submitScore(name string) {
	if name == "" {
		name = m.settings.PlayerName
	}
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort submit on the way out
	m.store.SubmitScore(name, m.snap.Score, m.snap.LevelIndex, m.snap.TotalKills,
		m.snap.Difficulty.String())
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.naming {
		return m.nameView()
	}
	return renderFrame(m.screen, m.snap)
}

// nameView renders the leaderboard name prompt panel.
func (m Model) nameView() string {
	panel := namePanelStyle.Render(fmt.Sprintf(
		"Run over  score %d  level %d\n\n%s\n\nenter submit  esc skip",
		m.snap.Score, m.snap.LevelIndex+1, m.nameInput.View(),
	))
	return lipgloss.Place(m.settings.Width, m.settings.Height,
		lipgloss.Center, lipgloss.Center, panel)
}

// Run starts the Bubble Tea program with the given model.
func Run(store *storage.Store, settings config.Settings, seed int64, resume *engine.SaveRecord, tickRate int) error {
	model := NewModel(store, settings, seed, resume, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
