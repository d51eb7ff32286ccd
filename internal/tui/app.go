// Package tui provides the interactive Bubble Tea paycheck splitter.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/config"
	plog "github.com/theirongolddev/paysplit/internal/log"
	"github.com/theirongolddev/paysplit/internal/model"
	"github.com/theirongolddev/paysplit/internal/tui/components"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

const (
	tabSplit = iota
	tabBreakdown
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// editField is the text field currently focused on the Split tab.
type editField int

const (
	editNone editField = iota
	editTotal
	editName
	editAmount
)

// Options configures a new App.
type Options struct {
	Config    config.Config
	Total     float64 // starting paycheck; falls back to Config.General.DefaultTotal
	NeedSetup bool    // show the first-run form
	Logger    *plog.Logger
}

// App is the root Bubble Tea model. Update never mutates shared state: the
// allocation is an immutable snapshot replaced on every edit.
type App struct {
	alloc model.Allocation
	cfg   config.Config
	log   *plog.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int

	// Split tab text editing. editID pins the row being edited so a
	// removal elsewhere can't redirect keystrokes to another item.
	editing editField
	editID  string
	input   textinput.Model

	keys     keyMap
	editKeys editKeys
	help     help.Model

	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = plog.Discard()
	}
	total := opts.Total
	if total <= 0 {
		total = opts.Config.General.DefaultTotal
	}

	h := help.New()
	h.ShortSeparator = "  "

	return App{
		alloc:     model.New(total),
		cfg:       opts.Config,
		log:       logger.WithComponent("tui"),
		keys:      newKeyMap(),
		editKeys:  newEditKeys(),
		help:      h,
		needSetup: opts.NeedSetup,
	}
}

// Allocation returns the current allocation snapshot.
func (a App) Allocation() model.Allocation {
	return a.alloc
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup {
		cmds = append(cmds, func() tea.Msg { return startSetupMsg{} })
	}
	return tea.Batch(cmds...)
}

type startSetupMsg struct{}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case startSetupMsg:
		a.setupVals = &SetupValues{Theme: a.cfg.Appearance.Theme}
		a.setupForm = NewSetupForm(a.setupVals)
		if a.width > 0 {
			a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.setupForm.Init()

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.editing != editNone || a.settings.editing {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.editing != editNone {
			return a.updateEditing(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		return a.updateKeys(msg)
	}

	// Forward unhandled messages (cursor blinks) to whatever has focus.
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.editing != editNone {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if runes := msg.Runes; len(runes) == 1 {
		if idx := components.TabIdxByKey(runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	switch a.activeTab {
	case tabSplit:
		return a.updateSplitKeys(msg)
	case tabSettings:
		return a.updateSettingsKeys(msg)
	}
	return a, nil
}

func (a App) updateSplitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.EditTotal) {
		return a.startEdit(editTotal)
	}
	// Categories can only be edited once there is something to split.
	if a.alloc.Total <= 0 {
		return a, nil
	}

	n := len(a.alloc.Items)
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < n-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Add):
		a.alloc = a.alloc.AddItem()
		a.cursor = len(a.alloc.Items) - 1
		a.log.Debug("category added", "index", a.cursor)
		return a.startEdit(editName)
	case key.Matches(msg, a.keys.Remove):
		if n == 0 {
			return a, nil
		}
		a.alloc = a.alloc.RemoveItem(a.cursor)
		a.log.Debug("category removed", "index", a.cursor)
		a.clampCursor()
	case key.Matches(msg, a.keys.Toggle):
		if n == 0 {
			return a, nil
		}
		a.alloc = a.alloc.ToggleMode(a.cursor)
		it := a.alloc.Items[a.cursor]
		a.log.Debug("mode toggled", "index", a.cursor, "percentage", it.IsPercentage, "amount", it.Amount)
	case key.Matches(msg, a.keys.EditName):
		if n > 0 {
			return a.startEdit(editName)
		}
	case key.Matches(msg, a.keys.EditAmount):
		if n > 0 {
			return a.startEdit(editAmount)
		}
	}
	return a, nil
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.alloc.Items) {
		a.cursor = len(a.alloc.Items) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// indexOf returns the current position of the item with the given ID.
func (a App) indexOf(id string) int {
	for i, it := range a.alloc.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func newFieldInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = ""
	return ti
}

// formatRaw renders a stored number for re-editing; zero shows as empty,
// matching a blank field.
func formatRaw(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (a App) startEdit(field editField) (tea.Model, tea.Cmd) {
	ti := newFieldInput()

	switch field {
	case editTotal:
		ti.Placeholder = "Enter your paycheck amount"
		ti.SetValue(formatRaw(a.alloc.Total))
		a.editID = ""
	case editName, editAmount:
		if a.cursor < 0 || a.cursor >= len(a.alloc.Items) {
			return a, nil
		}
		it := a.alloc.Items[a.cursor]
		a.editID = it.ID
		if field == editName {
			ti.Placeholder = "Category name"
			ti.SetValue(it.Name)
		} else {
			ti.Placeholder = "Amount"
			if it.IsPercentage {
				ti.Placeholder = "Percentage"
			}
			ti.SetValue(formatRaw(it.Amount))
		}
	}

	ti.Focus()
	a.editing = field
	a.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) stopEdit() App {
	a.editing = editNone
	a.editID = ""
	a.input.Blur()
	return a
}

func (a App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.editKeys.Confirm), key.Matches(msg, a.editKeys.Cancel):
		return a.stopEdit(), nil
	case key.Matches(msg, a.editKeys.Next):
		switch a.editing {
		case editName:
			return a.stopEdit().startEdit(editAmount)
		case editAmount:
			return a.stopEdit().startEdit(editName)
		default:
			return a.stopEdit(), nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a = a.applyEdit()
	return a, cmd
}

// applyEdit pushes the field's current text through the model.
func (a App) applyEdit() App {
	val := a.input.Value()

	if a.editing == editTotal {
		a.alloc = a.alloc.SetTotalInput(val)
		return a
	}

	idx := a.indexOf(a.editID)
	if idx < 0 {
		return a.stopEdit()
	}
	a.cursor = idx

	switch a.editing {
	case editName:
		a.alloc = a.alloc.UpdateName(idx, val)
	case editAmount:
		a.alloc = a.alloc.UpdateAmount(idx, val)
		// Show the clamped value instead of the out-of-range text.
		if stored := a.alloc.Items[idx].Amount; stored != model.ParseAmount(val) {
			a.log.Debug("amount clamped", "index", idx, "input", val, "stored", stored)
			a.input.SetValue(formatRaw(stored))
			a.input.CursorEnd()
		}
	}
	return a
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		cfg, total := ApplySetup(a.cfg, *a.setupVals)
		a.cfg = cfg
		theme.SetActive(cfg.Appearance.Theme)
		if total > 0 {
			a.alloc = a.alloc.SetTotal(total)
		}
		if err := config.Save(cfg); err != nil {
			a.log.Warn("saving setup config", "err", err)
		}
		a.setupForm = nil
		a.needSetup = false
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		a.needSetup = false
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// barWidth is the configured bar width, capped to the card it sits in.
func (a App) barWidth(cw int) int {
	return min(config.BarWidth(a.cfg), components.CardInnerWidth(cw))
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  paysplit needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	full := a.help
	full.ShowAll = true

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(full.View(a.keys))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("1 2 3 jump to tab · press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	var hints string
	if a.editing != editNone {
		hints = a.help.ShortHelpView(a.editKeys.ShortHelp())
	} else {
		hints = a.help.ShortHelpView(a.keys.ShortHelp())
	}
	status, warn := a.statusText()
	statusBar := components.RenderStatusBar(w, hints, status, warn)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabSplit:
		content = a.renderSplitTab(cw)
	case tabBreakdown:
		content = a.renderBreakdownTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// statusText summarizes the balance for the status bar.
func (a App) statusText() (string, bool) {
	if a.alloc.Total <= 0 {
		return "no paycheck", false
	}
	if a.alloc.Mismatch(a.cfg.Allocation.MismatchTolerance) {
		return "unbalanced", true
	}
	return "balanced", false
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
