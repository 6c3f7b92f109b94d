// Package main is the entry point for the shuttlestats CLI tool, which tracks
// badminton sessions and computes player performance and settlement reports.
package main

import "github.com/pable/go-shuttle-stats/cmd"

func main() {
	cmd.Execute()
}
