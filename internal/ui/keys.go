package ui

import "github.com/charmbracelet/bubbles/key"

// Command is the closed set of inputs the menu reacts to.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandActivate
	CommandQuit
	CommandAltUp
	CommandAltDown
)

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandActivate:
		return "activate"
	case CommandQuit:
		return "quit"
	case CommandAltUp:
		return "alt-up"
	case CommandAltDown:
		return "alt-down"
	default:
		return "none"
	}
}

// Keymap binds raw key and mouse strings to menu commands.
type Keymap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Quit     key.Binding
	AltUp    key.Binding
	AltDown  key.Binding
}

// DefaultKeymap returns the standard bindings. The alternate bindings mirror
// a numeric keypad (8 up, 1 down) and the mouse wheel.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:       key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Quit:     key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "quit")),
		AltUp:    key.NewBinding(key.WithKeys("8", "wheel up"), key.WithHelp("8", "up")),
		AltDown:  key.NewBinding(key.WithKeys("1", "wheel down"), key.WithHelp("1", "down")),
	}
}

// Table flattens the enabled bindings into a lookup table. When two bindings
// share a key the earlier command wins.
func (k Keymap) Table() map[string]Command {
	table := make(map[string]Command)
	for _, b := range []struct {
		binding key.Binding
		cmd     Command
	}{
		{k.Up, CommandUp},
		{k.Down, CommandDown},
		{k.Activate, CommandActivate},
		{k.Quit, CommandQuit},
		{k.AltUp, CommandAltUp},
		{k.AltDown, CommandAltDown},
	} {
		if !b.binding.Enabled() {
			continue
		}
		for _, s := range b.binding.Keys() {
			if _, taken := table[s]; !taken {
				table[s] = b.cmd
			}
		}
	}
	return table
}

// ShortHelp lists the primary bindings shown in the command usage text.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Quit}
}
