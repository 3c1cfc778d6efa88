package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type SessionState int

const (
	SessionIdle SessionState = iota
	SessionTerminated
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "Idle"
	case SessionTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

const (
	queryPromptFormat = "Enter manufacturer and item type (or '%s' to quit): "
	NoMatchReply      = "No such item in inventory"
)

// QuerySession is the interactive lookup as a two-state machine. It is driven
// one input line at a time and never touches a terminal itself.
type QuerySession struct {
	engine       *QueryEngine
	quitSentinel string
	now          func() time.Time
	state        SessionState
}

// NewQuerySession creates an idle session. A nil clock means time.Now.
func NewQuerySession(engine *QueryEngine, quitSentinel string, clock func() time.Time) *QuerySession {
	if clock == nil {
		clock = time.Now
	}
	return &QuerySession{
		engine:       engine,
		quitSentinel: strings.ToLower(strings.TrimSpace(quitSentinel)),
		now:          clock,
		state:        SessionIdle,
	}
}

func (s *QuerySession) State() SessionState {
	return s.state
}

func (s *QuerySession) Prompt() string {
	return fmt.Sprintf(queryPromptFormat, s.quitSentinel)
}

// Handle runs one query cycle and returns the lines to show the user.
func (s *QuerySession) Handle(line string) ([]string, error) {
	if s.state == SessionTerminated {
		return nil, ErrSessionTerminated
	}
	if strings.ToLower(strings.TrimSpace(line)) == s.quitSentinel {
		s.state = SessionTerminated
		return nil, nil
	}

	result, err := s.engine.Query(line, s.now())
	if err != nil {
		var ambiguous *AmbiguousQueryError
		if errors.As(err, &ambiguous) {
			return []string{fmt.Sprintf("Please name a single %s (%s)", ambiguous.Field, strings.Join(ambiguous.Candidates, ", "))}, nil
		}
		return nil, err
	}
	if !result.Found() {
		return []string{NoMatchReply}, nil
	}

	lines := []string{"Your item is: " + describeItem(*result.Best)}
	if result.Alternative != nil {
		lines = append(lines, "You may, also, consider: "+describeItem(*result.Alternative))
	}
	return lines, nil
}

func describeItem(item Item) string {
	return fmt.Sprintf("%s, %s, %s, %d", item.ItemId, item.Manufacturer, item.Type, item.Price)
}
