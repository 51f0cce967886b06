package commands

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

const maxNoteLength = 500

var notePolicy = sync.OnceValue(bluemonday.StrictPolicy)

// sanitizeNote strips markup from a free-text history note and bounds its
// length. Notes are shown verbatim to support agents and customers.
func sanitizeNote(note string) string {
	note = strings.TrimSpace(notePolicy().Sanitize(strings.TrimSpace(note)))
	if r := []rune(note); len(r) > maxNoteLength {
		note = string(r[:maxNoteLength])
	}
	return note
}
