package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/paysplit/internal/cli"
	"github.com/theirongolddev/paysplit/internal/config"
	"github.com/theirongolddev/paysplit/internal/model"
	"github.com/theirongolddev/paysplit/internal/tui/components"
	"github.com/theirongolddev/paysplit/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldBarWidth
	settingsFieldTolerance
	settingsFieldDefaultTotal
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) updateSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case key.Matches(msg, a.keys.EditName):
		return a.settingsStartEdit()
	}
	return a, nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, th := range theme.All {
			names[i] = th.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldBarWidth:
		ti.Placeholder = fmt.Sprintf("%d (%d-%d)", config.DefaultBarWidth, config.MinBarWidth, config.MaxBarWidth)
		ti.SetValue(strconv.Itoa(config.BarWidth(a.cfg)))
	case settingsFieldTolerance:
		ti.Placeholder = "0 for exact, e.g. 0.005"
		ti.SetValue(formatRaw(a.cfg.Allocation.MismatchTolerance))
	case settingsFieldDefaultTotal:
		ti.Placeholder = "starting paycheck, empty to clear"
		ti.SetValue(formatRaw(a.cfg.General.DefaultTotal))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited field to the live config and persists it.
// Invalid values leave the field unchanged.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldBarWidth:
		if w, err := strconv.Atoi(val); err == nil {
			cfg.General.BarWidth = min(max(w, config.MinBarWidth), config.MaxBarWidth)
		}
	case settingsFieldTolerance:
		if tol := model.ParseAmount(val); tol >= 0 {
			cfg.Allocation.MismatchTolerance = tol
		}
	case settingsFieldDefaultTotal:
		if total := model.ParseAmount(val); total >= 0 {
			cfg.General.DefaultTotal = total
		}
	}

	a.cfg = cfg
	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr != nil {
		a.log.Warn("saving settings", "err", a.settings.saveErr)
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	tolerance := "exact"
	if cfg.Allocation.MismatchTolerance > 0 {
		tolerance = cli.FormatMoney(cfg.Allocation.MismatchTolerance)
		if cfg.Allocation.MismatchTolerance < 0.01 {
			tolerance = "$" + formatRaw(cfg.Allocation.MismatchTolerance)
		}
	}
	defaultTotal := "(not set)"
	if cfg.General.DefaultTotal > 0 {
		defaultTotal = cli.FormatMoney(cfg.General.DefaultTotal)
	}

	fields := []field{
		{"Theme", cfg.Appearance.Theme},
		{"Bar Width", fmt.Sprintf("%d cols", config.BarWidth(cfg))},
		{"Mismatch Tolerance", tolerance},
		{"Default Paycheck", defaultTotal},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-20s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-20s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-20s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Debug log:    ") + valueStyle.Render(config.LogPath(cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Categories:   ") + valueStyle.Render(cli.FormatNumber(int64(len(a.alloc.Items)))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))
	return b.String()
}
