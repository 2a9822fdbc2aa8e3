package tui

import (
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/config"
	"github.com/Naadir-Dev-Portfolio/Desktop-Mortgage-overpayment-tracker/internal/domain"
)

// Message types for the Bubble Tea update cycle

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ScenarioLoadedMsg signals a scenario file has been loaded
type ScenarioLoadedMsg struct {
	Input *config.MortgageInput
}

// ScenarioSavedMsg signals a scenario file has been written
type ScenarioSavedMsg struct {
	Path string
}

// CalculationCompleteMsg signals both schedules have been computed
type CalculationCompleteMsg struct {
	Schedule *domain.Schedule
	Baseline *domain.Schedule
	Err      error
}
