// Shared helpers for shelf CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/shelf/internal/sqlite"
	"github.com/mesh-intelligence/shelf/pkg/store"
)

// notesDBName is the database file name under the data directory.
const notesDBName = "shelf"

// openNotes resolves the data directory, opens the SQLite-backed note
// store, and returns a type-erased handle to it. The commands only ever
// see *store.AnyStore[Note]; which implementation backs the handle is
// decided here. The caller must defer the returned close function.
func openNotes() (*store.AnyStore[Note], func() error, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	base, err := sqlite.Open[Note](dataDir, notesDBName)
	if err != nil {
		return nil, nil, fmt.Errorf("open note store: %w", err)
	}

	notes, err := store.Erase[Note](base)
	if err != nil {
		base.Close()
		return nil, nil, fmt.Errorf("wrap note store: %w", err)
	}

	return notes, base.Close, nil
}

// printNotes renders notes as JSON or as a human-readable table,
// depending on the --json flag.
func printNotes(notes []Note) error {
	if flagJSON {
		output, err := json.MarshalIndent(notes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal notes: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if len(notes) == 0 {
		fmt.Println("No notes.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTAG\tADDED\tTEXT")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			n.ID, n.Tag, n.AddedAt.Format(time.RFC3339), n.Text)
	}
	return w.Flush()
}
