package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rotaplan/database"
	cropRepoImp "rotaplan/pkg/crop/repositoryImp"
	cropSvcImp "rotaplan/pkg/crop/serviceImp"
)

var importOwner string

var importCmd = &cobra.Command{
	Use:   "import-crops <file>",
	Short: "Load a crop catalog file (.csv, .xlsx, .yaml, .html) into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return err
		}
		svc := cropSvcImp.NewCropService(cropRepoImp.New(db), logger)
		n, err := svc.ImportCrops(cmd.Context(), importOwner, args[0])
		out := cmd.OutOrStdout()
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", color.New(color.FgRed).Sprint("FAILED"), args[0], err)
			return err
		}
		owner := importOwner
		if owner == "" {
			owner = "shared"
		}
		fmt.Fprintf(out, "%s %d crops from %s (owner: %s) into %s\n",
			color.New(color.FgGreen).Sprint("IMPORTED"), n, args[0], color.New(color.FgCyan).Sprint(owner), cfg.DBPath)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importOwner, "owner", "", "user id that owns the imported crops (empty = shared)")
}
