package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/seed"
)

var seedStorePath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample catalog into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := docstore.Open(seedStorePath)
		if err != nil {
			return err
		}
		defer store.Close()

		m := marketplace.New(store)
		n, err := seed.Load(cmd.Context(), m.Products)
		if err != nil {
			return err
		}
		fmt.Printf("Inserted %d products into %s\n", n, seedStorePath)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedStorePath, "store", "s", "db.json", "path to store file")
}
