package app

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/gtprob/internal/tui"
)

// progressSource is implemented by telemetry backends whose updates can be
// observed by the progress display.
type progressSource interface {
	Attach(w vprogrock.Writer) (detach func())
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithProgressOutput sets where the progress display is drawn.
func (a *App) WithProgressOutput(w io.Writer) *App {
	a.progressOut = w
	return a
}

// startProgress shows the progress of a batch of total topologies until the
// returned stop function is called.
func (a *App) startProgress(ctx context.Context, total int) (stop func()) {
	source, ok := a.telemetry.(progressSource)
	if !ok {
		a.logger.Warn("progress display is not supported by the telemetry backend")
		return func() {}
	}

	pipe := tui.NewPipe()
	detach := source.Attach(pipe)

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(a.progressOut),
	}, a.teaOptions...)
	renderer := tui.NewRenderer(tui.NewModel(pipe, total), opts...)
	_ = renderer.Start(ctx)

	// The pipe is closed as soon as the display exits so that recorder
	// writes never block on a missing reader.
	done := make(chan error, 1)
	go func() {
		err := renderer.Wait()
		_ = pipe.Close()
		done <- err
	}()

	return func() {
		detach()
		_ = pipe.Close()
		if err := <-done; err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			a.logger.Warn("progress display failed: " + err.Error())
		}
	}
}
