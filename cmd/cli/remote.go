package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vizcast/internal/smartcast"
)

// StartRemote runs the interactive remote against one device.
func StartRemote(device *smartcast.Device) error {
	p := tea.NewProgram(newRemoteModel(device))
	_, err := p.Run()
	return err
}

// keyBinding maps one terminal key to one remote action.
type keyBinding struct {
	key   string
	label string
	send  func(d *smartcast.Device) (bool, error)
}

var bindings = []keyBinding{
	{"up", "Up", func(d *smartcast.Device) (bool, error) { return d.Key("UP") }},
	{"down", "Down", func(d *smartcast.Device) (bool, error) { return d.Key("DOWN") }},
	{"left", "Left", func(d *smartcast.Device) (bool, error) { return d.Key("LEFT") }},
	{"right", "Right", func(d *smartcast.Device) (bool, error) { return d.Key("RIGHT") }},
	{"enter", "OK", func(d *smartcast.Device) (bool, error) { return d.Key("OK") }},
	{"backspace", "Back", func(d *smartcast.Device) (bool, error) { return d.Key("BACK") }},
	{"h", "Home", func(d *smartcast.Device) (bool, error) { return d.Key("HOME") }},
	{"x", "Exit", func(d *smartcast.Device) (bool, error) { return d.Key("EXIT") }},
	{"+", "Volume up", func(d *smartcast.Device) (bool, error) { return d.VolumeUp(1) }},
	{"-", "Volume down", func(d *smartcast.Device) (bool, error) { return d.VolumeDown(1) }},
	{"m", "Mute", func(d *smartcast.Device) (bool, error) { return d.MuteToggle() }},
	{" ", "Play/Pause", func(d *smartcast.Device) (bool, error) { return d.Play() }},
	{"i", "Next input", func(d *smartcast.Device) (bool, error) { return d.NextInput() }},
	{"p", "Power toggle", func(d *smartcast.Device) (bool, error) { return d.PowerToggle() }},
}

// resultMsg reports an async command outcome back to the model.
type resultMsg struct {
	label string
	ok    bool
	err   error
}

type remoteModel struct {
	device  *smartcast.Device
	status  string
	pending string
	failed  bool
}

func newRemoteModel(device *smartcast.Device) remoteModel {
	return remoteModel{
		device: device,
		status: fmt.Sprintf("Connected to %s (%s)", device.Host(), device.Class()),
	}
}

func (m remoteModel) Init() tea.Cmd {
	return nil
}

func (m remoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" {
			return m, tea.Quit
		}

		for _, b := range bindings {
			if b.key != key {
				continue
			}
			binding := b
			m.pending = binding.label
			return m, func() tea.Msg {
				ok, err := binding.send(m.device)
				return resultMsg{label: binding.label, ok: ok, err: err}
			}
		}
		return m, nil

	case resultMsg:
		m.pending = ""
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("%s failed: %v", msg.label, msg.err)
			m.failed = true
		case !msg.ok:
			m.status = fmt.Sprintf("%s: device did not answer", msg.label)
			m.failed = true
		default:
			m.status = msg.label
			m.failed = false
		}
		return m, nil
	}

	return m, nil
}

func (m remoteModel) View() string {
	var sections []string

	sections = append(sections, remoteTitleStyle.Render("Vizcast Remote"))
	sections = append(sections, "")

	for _, b := range bindings {
		key := b.key
		if key == " " {
			key = "space"
		}
		sections = append(sections, fmt.Sprintf("  %s %s",
			remoteKeyStyle.Render(fmt.Sprintf("%-9s", key)), b.label))
	}

	sections = append(sections, "")
	if m.pending != "" {
		sections = append(sections, remoteHelpStyle.Render("Sending "+m.pending+"..."))
	} else if m.failed {
		sections = append(sections, remoteErrorStyle.Render(m.status))
	} else {
		sections = append(sections, remoteStatusStyle.Render(m.status))
	}

	sections = append(sections, "")
	sections = append(sections, remoteHelpStyle.Render("q: Quit"))

	return strings.Join(sections, "\n")
}

var (
	remoteTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1).
				Bold(true)

	remoteKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD")).
			Bold(true)

	remoteStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#50FA7B"))

	remoteErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF5555")).
				Bold(true)

	remoteHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))
)
