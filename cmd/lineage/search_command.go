package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lineage/internal/store"
)

func newSearchCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Search stored persons by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			query := strings.Join(args, " ")
			records, err := st.SearchByName(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No persons matching %q\n", query)
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.ID,
					rec.FullName,
					string(rec.Gender),
					rec.Village,
					rec.Town,
					strconv.Itoa(int(rec.VerificationLevel)),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRows(
				[]string{"ID", "Full Name", "Gender", "Village", "Town", "Verified"},
				rows, 5,
			))
			if len(records) == store.SearchLimit {
				fmt.Fprintf(out, "Showing first %d matches; refine the name to narrow the search\n", store.SearchLimit)
			}
			return nil
		},
	}
}
