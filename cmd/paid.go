package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var paidBy string

var paidCmd = &cobra.Command{
	Use:   "paid <match-id-prefix>",
	Short: "Mark a match as settled",
	Long:  "Flag a match as paid so it no longer feeds settlement plans.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaid,
}

func init() {
	paidCmd.Flags().StringVar(&paidBy, "by", "", "who settled it")
}

func runPaid(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.MarkMatchPaid(args[0], paidBy)
	if err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}
	if id == "" {
		fmt.Fprintf(os.Stderr, "No match found with id prefix %q\n", args[0])
		return nil
	}
	fmt.Fprintf(os.Stdout, "Marked %s as paid\n", shortID(id))
	return nil
}
