package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/jonathan/resume-parser/internal/roles"
	"github.com/spf13/cobra"
)

var rolesJSON bool

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the themed roles a resume can be converted into",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		infos := roles.Infos()
		if rolesJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(infos)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "KEY\tTITLE\tDESCRIPTION")
		for _, info := range infos {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Key, info.Title, info.Description)
		}
		return tw.Flush()
	},
}

func init() {
	rolesCmd.Flags().BoolVar(&rolesJSON, "json", false, "Print roles as JSON")
	rootCmd.AddCommand(rolesCmd)
}
