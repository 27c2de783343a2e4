package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while showing a spinner titled title. Outside an
// interactive terminal the action runs without any animation.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsInteractive() {
		return action(ctx)
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Context(ctx).
		Action(func() {
			actionErr = action(ctx)
		}).
		Run()
	if actionErr != nil {
		return actionErr
	}
	return err
}
