package parse

import (
	"github.com/mfournier/optset/util"
)

// State is a private cursor over an argument token stream. The constructor copies the
// token slice, so rewrites performed during parsing (cluster expansion, inline-value
// splitting) never leak back into the caller's arguments.
type State struct {
	pos  int
	args []string
}

// NewState creates a new State positioned on the first token
func NewState(args []string) *State {
	owned := make([]string, len(args))
	copy(owned, args)

	return &State{args: owned}
}

// Done reports whether all tokens have been consumed
func (s *State) Done() bool {
	return s.pos >= len(s.args)
}

// Current returns the token under the cursor, or an empty string when Done
func (s *State) Current() string {
	if s.Done() {
		return ""
	}

	return s.args[s.pos]
}

// Peek returns the token after the current one without advancing, or an empty string when
// no such token exists
func (s *State) Peek() string {
	if s.pos+1 >= len(s.args) {
		return ""
	}

	return s.args[s.pos+1]
}

// Shift consumes and returns the current token, advancing the cursor
func (s *State) Shift() string {
	token := s.Current()
	if !s.Done() {
		s.pos++
	}

	return token
}

// Insert places tokens at pos, shifting later tokens right
func (s *State) Insert(pos int, tokens ...string) {
	s.args = util.InsertSlice(s.args, pos, tokens...)
}

// ReplaceCurrent substitutes the current token with one or more synthesized tokens. The
// cursor does not move, so the first replacement token is evaluated next - this is how
// squashed clusters and inline values are re-fed through the normal parse loop.
func (s *State) ReplaceCurrent(tokens ...string) {
	if s.Done() {
		return
	}
	trimmed := make([]string, 0, len(s.args)-1)
	trimmed = append(trimmed, s.args[:s.pos]...)
	trimmed = append(trimmed, s.args[s.pos+1:]...)
	s.args = util.InsertSlice(trimmed, s.pos, tokens...)
}

// Rest returns the tokens from the cursor to the end of the stream
func (s *State) Rest() []string {
	if s.Done() {
		return nil
	}
	rest := make([]string, len(s.args)-s.pos)
	copy(rest, s.args[s.pos:])

	return rest
}

// Args returns the entire token list in its current (possibly rewritten) form
func (s *State) Args() []string {
	return s.args
}

// Pos returns the cursor position
func (s *State) Pos() int {
	return s.pos
}

// Len returns the length of the token list
func (s *State) Len() int {
	return len(s.args)
}
