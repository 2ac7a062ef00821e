package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lineage/internal/csvtext"
	"lineage/internal/ingest"
	"lineage/internal/logging"
	"lineage/internal/notifications"
	"lineage/internal/store"
)

func newImportCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv-file> [actor]",
		Short: "Import person records from a delimited text file",
		Long: `Import reads a comma-delimited file (first line = column headers),
normalizes every row into a person record, and writes the results to the
person store in fixed-size batches. Rows without a full name are skipped
and reported; a failed batch is reported and the remaining batches still
run. The exit code is non-zero when any record fails to import.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			actor := cfg.Ingest.DefaultActor
			if len(args) > 1 {
				actor = args[1]
			}

			unlock, err := acquireRunLock(cfg)
			if err != nil {
				return err
			}
			defer unlock()

			notifier := notifications.NewService(cfg)
			started := time.Now()

			file, err := csvtext.ReadFile(args[0])
			if err != nil {
				_ = notifier.NotifyError(cmd.Context(), err, "csv import")
				return err
			}

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			forms, skipped := ingest.CollectCSV(file, logger)
			_ = notifier.NotifyImportStarted(cmd.Context(), args[0], len(forms))

			pipeline := ingest.New(st, logger,
				ingest.WithChunkSize(cfg.Ingest.ChunkSize),
				ingest.WithChunkDelay(time.Duration(cfg.Ingest.BatchDelaySeconds)*time.Second),
			)
			summary := pipeline.Run(cmd.Context(), forms, actor)
			summary.TotalRows = len(file.Rows)
			summary.SkippedRows = skipped

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderImportSummary(summary, cfg.Ingest.ErrorDisplayLimit))
			verdict := fmt.Sprintf("Imported %d of %d records", summary.Imported, summary.Valid)
			fmt.Fprintln(out, renderVerdict(summary.Clean(), verdict, shouldColorize(out)))
			_ = notifier.NotifyImportCompleted(cmd.Context(), summary.Imported, summary.Failed, time.Since(started))

			if !summary.Clean() {
				return fmt.Errorf("%d of %d records failed to import", summary.Failed, summary.Valid)
			}
			return nil
		},
	}
}
