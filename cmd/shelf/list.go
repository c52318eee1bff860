// List command queries notes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/store"
)

var (
	listTag string
	listID  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes on the shelf",
	Long: `List fetches notes and displays them in insertion order.

Use --tag or --id to narrow the result.

Example:
  shelf list
  shelf list --tag ops
  shelf list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listTag, "tag", "", "only notes with this tag")
	listCmd.Flags().StringVar(&listID, "id", "", "only the note with this ID")
}

func runList(cmd *cobra.Command, args []string) error {
	notes, closeStore, err := openNotes()
	if err != nil {
		return err
	}
	defer closeStore()

	var filter store.Filter[Note]
	switch {
	case listID != "":
		filter = byID(listID)
	case listTag != "":
		filter = byTag(listTag)
	}

	found, err := notes.Read(filter)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	return printNotes(found)
}
