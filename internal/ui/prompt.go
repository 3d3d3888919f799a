package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects a linking scope.
type Mode int

const (
	// ModeFolders links notes within each YYYY-MM folder independently.
	ModeFolders Mode = iota + 1
	// ModeVault links notes across the entire vault tree.
	ModeVault
)

// ErrInvalidChoice is returned when the mode prompt receives anything other
// than 1 or 2. The caller reports it and takes no action.
var ErrInvalidChoice = errors.New("invalid choice")

type confirmModel struct {
	question string
	accepted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		// y proceeds, any other key cancels.
		m.accepted = key.String() == "y" || key.String() == "Y"
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	return fmt.Sprintf("\n%s %s ", m.question, DimText.Render("(y/N)"))
}

// Confirm asks a yes/no question. Only y answers yes.
func Confirm(question string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{question: question}).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type from confirm prompt")
	}
	return m.accepted, nil
}

type modeModel struct {
	vault  string
	choice Mode
}

func (m modeModel) Init() tea.Cmd { return nil }

func (m modeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "1":
			m.choice = ModeFolders
		case "2":
			m.choice = ModeVault
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m modeModel) View() string {
	s := "\n" + TitleStyle.Render("Link notes in: "+m.vault) + "\n\n"
	s += "  1. Link notes within each month folder only\n"
	s += "  2. Link notes across the whole vault (recommended)\n\n"
	s += DimText.Render("Choose option (1 or 2)") + " "
	return s
}

// ChooseMode asks which linking scope to use. Any key other than 1 or 2
// yields ErrInvalidChoice.
func ChooseMode(vaultPath string) (Mode, error) {
	final, err := tea.NewProgram(modeModel{vault: vaultPath}).Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(modeModel)
	if !ok {
		return 0, fmt.Errorf("unexpected model type from mode prompt")
	}
	if m.choice == 0 {
		return 0, ErrInvalidChoice
	}
	return m.choice, nil
}
