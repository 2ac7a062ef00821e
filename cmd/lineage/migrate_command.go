package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"lineage/internal/ingest"
	"lineage/internal/legacy"
	"lineage/internal/logging"
	"lineage/internal/notifications"
	"lineage/internal/store"
)

func newMigrateLegacyCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-legacy <records.json> [actor]",
		Short: "Migrate legacy family-group records into the person store",
		Long: `Migrate-legacy reads a JSON array of legacy genealogy records, expands
each family group into one person record per individual name, and writes
the results through the batch ingestion pipeline. Shared geography and
source details are copied onto every expanded person; the family name is
preserved as the ancestral house name.`,
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

			records, err := legacy.LoadRecords(args[0])
			if err != nil {
				_ = notifier.NotifyError(cmd.Context(), err, "legacy migration")
				return err
			}

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			_ = notifier.NotifyImportStarted(cmd.Context(), args[0], len(records))

			pipeline := ingest.New(st, logger,
				ingest.WithChunkSize(cfg.Ingest.ChunkSize),
				ingest.WithChunkDelay(time.Duration(cfg.Ingest.BatchDelaySeconds)*time.Second),
			)
			report := legacy.Migrate(cmd.Context(), records, pipeline, actor, logger)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderMigrateReport(report, cfg.Ingest.ErrorDisplayLimit))
			verdict := fmt.Sprintf("Created %d of %d persons", report.Created, report.Individuals)
			fmt.Fprintln(out, renderVerdict(report.Clean(), verdict, shouldColorize(out)))
			_ = notifier.NotifyImportCompleted(cmd.Context(), report.Created, report.Failed, time.Since(started))

			if !report.Clean() {
				return fmt.Errorf("%d of %d individuals failed to migrate", report.Failed, report.Individuals)
			}
			return nil
		},
	}
}
