// Package playground wraps the engine for interactive use: it cleans up
// typed statements, times them, remembers the ones that succeeded and
// renders results.
package playground

import (
	"strings"
	"time"

	"sqlplayground/internal/engine"
	"sqlplayground/internal/sql"
)

// Outcome is one statement run through a Session.
type Outcome struct {
	Query       string
	Result      engine.Result
	Elapsed     time.Duration
	Explanation string
}

// Session runs statements against one engine, one at a time.
type Session struct {
	eng     *engine.DBEngine
	history *History

	// Explain adds a plain-English explanation to successful outcomes.
	Explain bool

	now func() time.Time
}

// NewSession returns a session over eng keeping historySize statements.
func NewSession(eng *engine.DBEngine, historySize int) *Session {
	return &Session{
		eng:     eng,
		history: NewHistory(historySize),
		now:     time.Now,
	}
}

// History returns the statements that ran successfully, most recent first.
func (s *Session) History() []string {
	return s.history.Entries()
}

// Engine returns the engine the session runs against.
func (s *Session) Engine() *engine.DBEngine {
	return s.eng
}

// Run executes input. Blank input is ignored and reports false. The
// outcome and the history show the statement without surrounding whitespace
// or its trailing semicolon.
func (s *Session) Run(input string) (Outcome, bool) {
	if strings.TrimSpace(input) == "" {
		return Outcome{}, false
	}

	start := s.now()
	res := s.eng.ExecuteQuery(input)
	out := Outcome{
		Query:   sql.TrimStatement(input),
		Result:  res,
		Elapsed: s.now().Sub(start),
	}

	if res.Success() {
		if s.Explain {
			out.Explanation = sql.Explain(input)
		}
		s.history.Add(out.Query)
	}
	return out, true
}
