package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lineage/internal/person"
	"lineage/internal/store"
)

func newStatsCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the person store",
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

			stats, err := st.CollectStats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Persons stored: %d\n", stats.Total)
			if stats.Total == 0 {
				return nil
			}

			genderRows := make([][]string, 0, 4)
			for _, g := range []person.Gender{person.GenderMale, person.GenderFemale, person.GenderOther, person.GenderUnknown} {
				if count := stats.ByGender[g]; count > 0 {
					genderRows = append(genderRows, []string{string(g), strconv.Itoa(count)})
				}
			}
			fmt.Fprintln(out, countTable("Gender", genderRows))

			visibilityRows := make([][]string, 0, 3)
			for _, v := range []person.Visibility{person.VisibilityPublic, person.VisibilityPartial, person.VisibilityPrivate} {
				if count := stats.ByVisibility[v]; count > 0 {
					visibilityRows = append(visibilityRows, []string{string(v), strconv.Itoa(count)})
				}
			}
			fmt.Fprintln(out, countTable("Visibility", visibilityRows))

			levelRows := make([][]string, 0, 4)
			for level := person.VerificationMin; level <= person.VerificationMax; level++ {
				if count := stats.ByVerification[level]; count > 0 {
					levelRows = append(levelRows, []string{strconv.Itoa(int(level)), strconv.Itoa(count)})
				}
			}
			fmt.Fprintln(out, renderRows(
				[]string{"Verification Level", "Count"},
				levelRows, 0, 1,
			))
			return nil
		},
	}
}
