package engine

import (
	"bytes"
	"regexp"

	"github.com/arthur-debert/rename-files/pkg/errors"
	"github.com/arthur-debert/rename-files/pkg/filesystem"
	"github.com/arthur-debert/rename-files/pkg/logging"
	"github.com/arthur-debert/rename-files/pkg/pathbytes"
	"github.com/rs/zerolog"
)

// Outcome describes what happened to one target
type Outcome string

const (
	// OutcomeRenamed means the file was moved to its new name
	OutcomeRenamed Outcome = "renamed"
	// OutcomeUnchanged means the computed name equals the current name
	OutcomeUnchanged Outcome = "unchanged"
)

// Entry records the handling of a single target
type Entry struct {
	Source      string
	Destination string
	Outcome     Outcome
}

// Result lists the targets handled by Process, in input order. On failure
// it holds only the targets completed before the failing one.
type Result struct {
	Entries []Entry
}

// Renamed returns the number of files that were actually moved
func (r *Result) Renamed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == OutcomeRenamed {
			n++
		}
	}
	return n
}

// Engine holds the compiled match pattern and replacement template. It is
// immutable after New and keeps no state between targets.
type Engine struct {
	match        *regexp.Regexp
	matchPattern string
	replacement  string
	template     []byte
	renamer      filesystem.Renamer
	logger       zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithRenamer sets the rename primitive. The default is filesystem.NewOS().
func WithRenamer(r filesystem.Renamer) Option {
	return func(e *Engine) {
		e.renamer = r
	}
}

// WithLogger sets the logger used for per-target debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New compiles matchPattern and returns an Engine that substitutes the
// first match with replacement. A pattern that does not compile yields an
// ErrInvalidPattern error.
func New(matchPattern, replacement string, opts ...Option) (*Engine, error) {
	re, err := regexp.Compile(matchPattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid match pattern %q", matchPattern).
			WithDetail("pattern", matchPattern)
	}

	e := &Engine{
		match:        re,
		matchPattern: matchPattern,
		replacement:  replacement,
		template:     pathbytes.Encode(replacement),
		renamer:      filesystem.NewOS(),
		logger:       logging.GetLogger("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// MatchPattern returns the source text of the match pattern
func (e *Engine) MatchPattern() string {
	return e.matchPattern
}

// Replacement returns the replacement template
func (e *Engine) Replacement() string {
	return e.replacement
}

// Substitute replaces the leftmost match in src with the expanded
// template. Later matches are left untouched. If there is no match, src is
// returned as is.
func (e *Engine) Substitute(src []byte) []byte {
	loc := e.match.FindSubmatchIndex(src)
	if loc == nil {
		return src
	}

	out := make([]byte, 0, len(src)+len(e.template))
	out = append(out, src[:loc[0]]...)
	out = e.match.Expand(out, e.template, src, loc)
	return append(out, src[loc[1]:]...)
}

// Destination returns the path that Process would rename path to
func (e *Engine) Destination(path string) string {
	return pathbytes.Decode(e.Substitute(pathbytes.Encode(path)))
}

// Process renames each target in order. It stops at the first failed
// rename and returns an *errors.Error, coded by the OS failure, that wraps
// a *Failure describing it.
func (e *Engine) Process(targets []string) (*Result, error) {
	done := logging.LogOperationStart(e.logger, "process")
	defer done()

	result := &Result{Entries: make([]Entry, 0, len(targets))}

	for i, source := range targets {
		raw := pathbytes.Encode(source)
		replaced := e.Substitute(raw)

		if bytes.Equal(raw, replaced) {
			e.logger.Debug().
				Int("index", i).
				Str("source", source).
				Msg("Name unchanged, skipping")
			result.Entries = append(result.Entries, Entry{
				Source:      source,
				Destination: source,
				Outcome:     OutcomeUnchanged,
			})
			continue
		}

		destination := pathbytes.Decode(replaced)
		if err := e.renamer.RenameNoReplace(source, destination); err != nil {
			failure := &Failure{
				Index:        i,
				Source:       source,
				Destination:  destination,
				MatchPattern: e.matchPattern,
				Replacement:  e.replacement,
				Err:          err,
			}
			code := errors.ClassifyOSError(err)
			e.logger.Debug().
				Err(err).
				Int("index", i).
				Str("source", source).
				Str("destination", destination).
				Str("code", string(code)).
				Int("remaining", len(targets)-i-1).
				Msg("Rename failed, halting")
			return result, errors.Wrap(failure, code, "rename failed").WithDetails(map[string]interface{}{
				"index":       i,
				"source":      source,
				"destination": destination,
			})
		}

		e.logger.Debug().
			Int("index", i).
			Str("source", source).
			Str("destination", destination).
			Msg("Renamed")
		result.Entries = append(result.Entries, Entry{
			Source:      source,
			Destination: destination,
			Outcome:     OutcomeRenamed,
		})
	}

	return result, nil
}
