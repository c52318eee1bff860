// Note model and filters for the shelf CLI.
package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/shelf/pkg/store"
)

// Note is the model the shelf CLI stores.
type Note struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Tag     string    `json:"tag,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// newNote builds a Note with a fresh UUID v7 ID and the current time.
func newNote(text, tag string) Note {
	return Note{
		ID:      newNoteID(),
		Text:    text,
		Tag:     tag,
		AddedAt: time.Now().UTC(),
	}
}

// newNoteID generates a UUID v7 string, falling back to v4 if v7 fails.
func newNoteID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// byTag matches notes carrying the given tag.
func byTag(tag string) store.Filter[Note] {
	return func(n Note) bool { return n.Tag == tag }
}

// byID matches the note with the given ID.
func byID(id string) store.Filter[Note] {
	return func(n Note) bool { return n.ID == id }
}
