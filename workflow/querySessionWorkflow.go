package workflow

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/mmdatafocus/inventory_reports/config"
	"github.com/mmdatafocus/inventory_reports/models"
	"github.com/mmdatafocus/inventory_reports/utils"
	"github.com/sirupsen/logrus"
)

type inputLine struct {
	text string
	err  error
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The channel closes at end of input; a read error is sent last.
func readLines(in io.Reader, done <-chan struct{}) <-chan inputLine {
	ch := make(chan inputLine)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case ch <- inputLine{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case ch <- inputLine{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}

// RunQuerySession prompts on out and feeds each line read from in to session
// until the user quits, input ends or ctx is cancelled. A cancelled ctx returns
// ctx.Err() even while waiting for input.
func RunQuerySession(ctx context.Context, logger *logrus.Logger, session *models.QuerySession, in io.Reader, out io.Writer) error {
	if logger == nil {
		logger = config.GetLogger()
	}
	runId, _ := utils.GetRunIdFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	input := readLines(in, done)

	queries := 0
	for session.State() == models.SessionIdle {
		if _, err := fmt.Fprint(out, "\n"+session.Prompt()); err != nil {
			return err
		}

		var line inputLine
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			logger.WithFields(logrus.Fields{
				"runId":   runId,
				"queries": queries,
			}).Info("query session cancelled")
			return ctx.Err()
		case line, ok = <-input:
		}
		if !ok {
			fmt.Fprintln(out)
			break
		}
		if line.err != nil {
			config.LogError(logger, "workflow", "RunQuerySession", "read input", nil, line.err)
			return line.err
		}
		// A line and a cancel can arrive together; cancel wins.
		if err := ctx.Err(); err != nil {
			return err
		}

		lines, err := session.Handle(line.text)
		if err != nil {
			config.LogError(logger, "workflow", "RunQuerySession", "handle query", line.text, err)
			return err
		}
		if session.State() == models.SessionIdle {
			queries++
		}
		for _, l := range lines {
			if _, err := fmt.Fprintln(out, l); err != nil {
				return err
			}
		}
	}

	logger.WithFields(logrus.Fields{
		"runId":   runId,
		"queries": queries,
		"state":   session.State().String(),
	}).Info("query session ended")
	return nil
}
