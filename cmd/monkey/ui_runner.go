package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"monkey/internal/driver"
	"monkey/internal/pipeline"
	"monkey/internal/source"
	"monkey/internal/ui"
)

type parseOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// runParseWithUI парсит файлы в фоне, пока bubbletea рисует прогресс.
func runParseWithUI(ctx context.Context, title string, files []string, jobs int) (*source.FileSet, []driver.ParseDirResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		fs, results, err := driver.ParseFiles(ctx, files, settings.maxDiagnostics, jobs, pipeline.ChannelSink{Ch: events})
		outcomeCh <- parseOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ctrl+c): дочитываем события, чтобы воркеры не заблокировались
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
