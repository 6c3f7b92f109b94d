package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pable/go-shuttle-stats/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import sessions from a JSON file",
	Long: `Import sessions and matches from a JSON file in the export format.
Malformed match records are skipped and counted, never fatal — one bad
record must not block the rest of the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	var file exchangeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	imported, skipped := 0, 0
	for _, sj := range file.Sessions {
		id := sj.ID
		if id == "" {
			id = uuid.NewString()
		}
		session := model.Session{ID: id, Name: sj.Name, CreatedAt: sj.CreatedAt}
		if err := db.InsertSession(session); err != nil {
			return fmt.Errorf("insert session %q: %w", sj.Name, err)
		}

		var matches []model.Match
		for _, mj := range sj.Matches {
			m, err := mj.toMatch(session.ID, uuid.NewString)
			if err != nil {
				skipped++
				logrus.WithError(err).WithField("session", sj.Name).Warn("skipping match record")
				continue
			}
			matches = append(matches, m)
		}
		if err := db.InsertMatches(matches); err != nil {
			return fmt.Errorf("insert matches for %q: %w", sj.Name, err)
		}
		imported += len(matches)
	}

	fmt.Fprintf(os.Stdout, "Imported %d sessions, %d matches", len(file.Sessions), imported)
	if skipped > 0 {
		fmt.Fprintf(os.Stdout, " (%d records skipped)", skipped)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
