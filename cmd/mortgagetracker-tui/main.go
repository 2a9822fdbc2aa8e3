package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/tui"
)

func main() {
	// Scenario file is optional; without one the form starts with example
	// figures.
	scenarioPath := ""
	if len(os.Args) > 1 {
		scenarioPath = os.Args[1]
		if _, err := os.Stat(scenarioPath); os.IsNotExist(err) {
			fmt.Printf("Error: scenario file not found: %s\n", scenarioPath)
			os.Exit(1)
		}
	}

	model := tui.NewModel(scenarioPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
