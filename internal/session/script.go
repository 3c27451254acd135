package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dbmrq/nestlist/internal/errors"
)

var scriptCommands = map[string]EventKind{
	"down":      EventNext,
	"next":      EventNext,
	"up":        EventPrev,
	"prev":      EventPrev,
	"left":      EventCollapse,
	"collapse":  EventCollapse,
	"back":      EventBack,
	"edit":      EventDescend,
	"descend":   EventDescend,
	"add":       EventAdd,
	"delete":    EventDelete,
	"save":      EventSave,
	"quit":      EventExit,
	"exit":      EventExit,
	"backspace": EventBackspace,
	"enter":     EventConfirm,
	"esc":       EventCancel,
}

// ParseScript reads a replay script: one command per line, blank lines and
// lines starting with # ignored. "type <text>" expands to one character
// event per rune of text, keeping inner spaces.
func ParseScript(r io.Reader) ([]Event, error) {
	var events []Event

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimRight(scanner.Text(), "\r")
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if rest, ok := strings.CutPrefix(text, "type "); ok {
			events = append(events, Text(rest)...)
			continue
		}

		kind, ok := scriptCommands[strings.ToLower(text)]
		if !ok {
			return nil, errors.ScriptParseError(line, text)
		}
		events = append(events, Key(kind))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return events, nil
}

// Feed returns a channel that yields events in order and is closed after the
// last one, or as soon as ctx is cancelled. Cancel ctx to release the
// producer when the consumer stops early.
func Feed(ctx context.Context, events []Event) <-chan Event {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		for _, ev := range events {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
