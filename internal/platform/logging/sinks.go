package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Sinks names the outputs a logger writes to besides its primary writer.
type Sinks struct {
	// File receives every record as JSON. Empty disables it.
	File string
	// Journal forwards records to the systemd journal.
	Journal bool
}

type closers []io.Closer

func (c closers) Close() error {
	var errs []error
	for _, cl := range c {
		errs = append(errs, cl.Close())
	}
	return errors.Join(errs...)
}

// NewWithSinks creates a logger that fans every record out to w and to
// each enabled sink. The returned closer releases the sinks; close it after
// the last log call.
//
// Failing to reach the journal is not fatal: the logger keeps the other
// outputs and reports the failure as a warning.
func NewWithSinks(level, format string, w io.Writer, sinks Sinks) (*slog.Logger, io.Closer, error) {
	lvl := parseLevel(level)
	handlers := []slog.Handler{newHandler(lvl, format, w)}
	var opened closers

	if sinks.File != "" {
		f, err := os.OpenFile(sinks.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", sinks.File, err)
		}
		opened = append(opened, f)
		handlers = append(handlers, newHandler(lvl, "json", f))
	}

	var journalErr error
	if sinks.Journal {
		redact := newRedactor()
		jh, err := slogjournal.NewHandler(&slogjournal.Options{
			Level:        lvl,
			ReplaceGroup: toJournalKey,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a = redact(groups, a)
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			journalErr = err
		} else {
			handlers = append(handlers, jh)
		}
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	if journalErr != nil {
		logger.Warn("systemd journal unavailable", slog.Any("error", journalErr))
	}
	return logger, opened, nil
}

// toJournalKey maps an attribute key to the journal field alphabet:
// upper case letters, digits and underscores.
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(key))
}
