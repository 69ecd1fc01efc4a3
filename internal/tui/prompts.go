package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when prompts cannot be shown, either
// because LCD_TEST_NO_INTERACTIVE is set or because there is no terminal.
var ErrInteractiveDisabled = errors.New("interactive prompts are disabled")

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New("canceled")

func checkInteractiveAllowed() error {
	if os.Getenv("LCD_TEST_NO_INTERACTIVE") != "" {
		return fmt.Errorf("%w (LCD_TEST_NO_INTERACTIVE is set)", ErrInteractiveDisabled)
	}
	if !IsTTY() {
		return fmt.Errorf("%w (not a terminal)", ErrInteractiveDisabled)
	}
	return nil
}

// IsTTY returns true if stdin and stdout are both terminals.
func IsTTY() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Accept, k.Cancel}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultConfirmKeys = confirmKeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "default"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, defaultConfirmKeys.Accept):
	case key.Matches(keyMsg, defaultConfirmKeys.Cancel):
		m.err = ErrCanceled
	case key.Matches(keyMsg, defaultConfirmKeys.Yes):
		m.choice = true
	case key.Matches(keyMsg, defaultConfirmKeys.No):
		m.choice = false
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return lipgloss.NewStyle().Margin(1, 0).Render(
		fmt.Sprintf("%s %s\n\n%s", m.prompt, yesNo, help.New().View(defaultConfirmKeys)))
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := confirmModel{
		prompt: prompt,
		choice: defaultValue,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return false, err
	}

	if finalModel, ok := model.(confirmModel); ok {
		if finalModel.err != nil {
			return false, finalModel.err
		}
		return finalModel.choice, nil
	}

	return false, fmt.Errorf("unexpected model type")
}

// PromptDevices asks the user to pick any number of device names.
// Labels may carry extra detail; the returned values are plain names.
func PromptDevices(message string, names []string, labels map[string]string) ([]string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no devices to choose from")
	}

	options := make([]string, len(names))
	byLabel := make(map[string]string, len(names))
	for i, name := range names {
		label := name
		if l, ok := labels[name]; ok && l != "" {
			label = l
		}
		options[i] = label
		byLabel[label] = name
	}

	var picked []string
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return nil, ErrCanceled
	}

	selected := make([]string, 0, len(picked))
	for _, label := range picked {
		selected = append(selected, byLabel[label])
	}
	return selected, nil
}
