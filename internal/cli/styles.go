package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af87", ANSI256: "36", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorName = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffaf", ANSI256: "85", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#00875f", ANSI256: "29", ANSI: "2"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f87ff", ANSI256: "69", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#9e9e9e", ANSI256: "247", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#444444", ANSI256: "238", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ffaf5f", ANSI256: "215", ANSI: "11"},
		Light: lipgloss.CompleteColor{TrueColor: "#af5f00", ANSI256: "130", ANSI: "3"},
	}

	// Exported styles used across the CLI output
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleName   = lipgloss.NewStyle().Bold(true).Foreground(colorName)
	StylePath   = lipgloss.NewStyle().Foreground(colorPath)
	StyleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleFlag   = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)

	// StyleBanner is the interactive-mode title banner
	StyleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorName).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHeader).
			Padding(0, 4).
			Align(lipgloss.Center)
)

func configureStyles() {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	logger.SetStyles(styles)
}

// tunetidyTheme returns the huh theme used by all interactive forms.
func tunetidyTheme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

func tunetidyKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	// Map both to Quit; the bubbletea filter below tells them apart.
	km.Quit.SetKeys("esc", "ctrl+c")
	km.Quit.SetHelp("ctrl+c", "quit")

	km.Input.Submit.SetHelp("enter", "submit • esc: back • ctrl+c: quit")
	km.Input.Next.SetHelp("enter", "next • esc: back • ctrl+c: quit")
	km.Confirm.Submit.SetHelp("enter", "confirm • esc: back • ctrl+c: quit")

	return km
}

// ErrUserBack is returned when the user explicitly steps back out of a form.
var ErrUserBack = errors.New("user navigated back")

// interceptedKey tracks the last key that triggered an abort (esc vs ctrl+c).
var interceptedKey string

// promptFilter is a Bubble Tea filter that intercepts esc and ctrl+c to
// distinguish them.
func promptFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			interceptedKey = "esc"
		case tea.KeyCtrlC:
			interceptedKey = "ctrl+c"
		}
	}
	return msg
}

// RunForm runs a huh form with the key-intercepting filter installed.
func RunForm(f *huh.Form) error {
	interceptedKey = ""
	return f.WithProgramOptions(tea.WithFilter(promptFilter)).Run()
}

// ClearAndPrintBanner clears the terminal and prints the TuneTidy header.
func ClearAndPrintBanner(dryRun bool) {
	fmt.Print("\033[H\033[2J")
	fmt.Println()
	fmt.Println(StyleBanner.Render("TuneTidy"))
	fmt.Println()
	if dryRun {
		fmt.Println(styleFlag.Render("  [DRY RUN]"))
		fmt.Println()
	}
}
