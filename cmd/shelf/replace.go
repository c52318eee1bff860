// Replace command swaps matching notes for a single new one.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var replaceTag string

var replaceCmd = &cobra.Command{
	Use:   "replace <text>",
	Short: "Replace every note with a tag by one new note",
	Long: `Replace removes EVERY note carrying the given tag and adds one
new note with the same tag in its place. When no note matches, the new
note is still added.

Example:
  shelf replace "rotate the API key monthly" --tag ops`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().StringVar(&replaceTag, "tag", "", "tag selecting the notes to replace (required)")
	_ = replaceCmd.MarkFlagRequired("tag")
}

func runReplace(cmd *cobra.Command, args []string) error {
	notes, closeStore, err := openNotes()
	if err != nil {
		return err
	}
	defer closeStore()

	note := newNote(strings.Join(args, " "), replaceTag)
	if err := notes.Update(byTag(replaceTag), note); err != nil {
		return fmt.Errorf("replace notes: %w", err)
	}

	if flagJSON {
		return printNotes([]Note{note})
	}
	fmt.Printf("Replaced notes tagged %q with: %s\n", replaceTag, note.ID)
	return nil
}
