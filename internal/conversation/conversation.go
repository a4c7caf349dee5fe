// Package conversation holds the session-scoped chat log.
package conversation

import "github.com/SHRA1M/Rag-chatbot/internal/models"

// Log is an ordered, append-only sequence of turns. A Log belongs to a
// single session, which processes one query at a time, so it does no
// locking of its own. Turns are never mutated after being appended; the log
// only grows, or is cleared wholesale on a language switch.
type Log struct {
	turns []models.Turn
}

func New() *Log {
	return &Log{}
}

// Append adds a turn to the end of the log.
func (l *Log) Append(turn models.Turn) {
	l.turns = append(l.turns, turn)
}

// Clear drops the whole history.
func (l *Log) Clear() {
	l.turns = nil
}

// Last returns the most recent n turns in order, fewer when the log is
// shorter. The returned slice is a copy.
func (l *Log) Last(n int) []models.Turn {
	if n <= 0 || len(l.turns) == 0 {
		return nil
	}
	if n > len(l.turns) {
		n = len(l.turns)
	}
	return append([]models.Turn(nil), l.turns[len(l.turns)-n:]...)
}

// All returns a copy of every turn in order.
func (l *Log) All() []models.Turn {
	return append([]models.Turn(nil), l.turns...)
}

// Len reports the number of turns.
func (l *Log) Len() int {
	return len(l.turns)
}
