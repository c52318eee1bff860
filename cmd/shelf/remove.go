// Remove command deletes notes.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/pkg/store"
)

var (
	removeTag string
	removeID  string
	removeAll bool
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove notes from the shelf",
	Long: `Remove deletes every note matching the given selector.
Notes that do not match keep their order.

Example:
  shelf remove --id 0190f1ee-...
  shelf remove --tag ops
  shelf remove --all`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeID, "id", "", "remove the note with this ID")
	removeCmd.Flags().StringVar(&removeTag, "tag", "", "remove every note with this tag")
	removeCmd.Flags().BoolVar(&removeAll, "all", false, "remove every note")
	removeCmd.MarkFlagsOneRequired("id", "tag", "all")
	removeCmd.MarkFlagsMutuallyExclusive("id", "tag", "all")
}

func runRemove(cmd *cobra.Command, args []string) error {
	notes, closeStore, err := openNotes()
	if err != nil {
		return err
	}
	defer closeStore()

	var filter store.Filter[Note]
	switch {
	case removeID != "":
		filter = byID(removeID)
	case removeTag != "":
		filter = byTag(removeTag)
	case removeAll:
		// nil filter matches everything.
	default:
		return errors.New("one of --id, --tag or --all is required")
	}

	before, err := notes.Read(filter)
	if err != nil {
		return fmt.Errorf("query notes: %w", err)
	}
	if err := notes.Delete(filter); err != nil {
		return fmt.Errorf("remove notes: %w", err)
	}

	fmt.Printf("Removed %d note(s)\n", len(before))
	return nil
}
