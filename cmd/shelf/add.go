// Add command creates a new note.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addTag string

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a note to the shelf",
	Long: `Add stores a new note with the given text.

Example:
  shelf add "buy coffee"
  shelf add "rotate the API key" --tag ops
  shelf add "call the dentist" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTag, "tag", "", "tag for the note")
}

func runAdd(cmd *cobra.Command, args []string) error {
	notes, closeStore, err := openNotes()
	if err != nil {
		return err
	}
	defer closeStore()

	note := newNote(strings.Join(args, " "), addTag)
	if err := notes.Create(note); err != nil {
		return fmt.Errorf("add note: %w", err)
	}

	if flagJSON {
		return printNotes([]Note{note})
	}
	fmt.Printf("Added note: %s\n", note.ID)
	return nil
}
