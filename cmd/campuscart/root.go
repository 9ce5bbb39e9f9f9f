package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campuscart",
	Short: "CampusCart API server",
	Long:  "CampusCart is a campus marketplace backend backed by a single-file JSON document store.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
