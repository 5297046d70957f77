package app

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/schoolgis/schoolsync/internal/schools"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
)

func (c *cli) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run a sync phase once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	directory := &cobra.Command{
		Use:   "directory",
		Short: "Add the district's schools missing from the directory",
		Long: `Fetch the directory entries of every object id listed for the district that is not
stored yet, in batches, from the GIS portal.

Example:
  schoolsync sync directory --config config.yaml --state 09 --district 0901`,
		RunE: c.runSyncDirectory,
	}
	addRegionFlags(directory)

	details := &cobra.Command{
		Use:   "details",
		Short: "Fetch detail records from the statistics service",
		Long: `Fetch and store the detail record of every school in the district, or of the
given codes only. Schools already complete for the year are skipped and failures are
recorded in the skip ledger.

Examples:
  schoolsync sync details --config config.yaml --state 09 --district 0901 --year 11
  schoolsync sync details --config config.yaml --codes 09010100101,09010100102`,
		RunE: c.runSyncDetails,
	}
	addRegionFlags(details)
	details.Flags().Int("year", 0, "Academic year id (defaults to sync.yearId)")
	details.Flags().StringSlice("codes", nil, "Sync only these school codes")
	details.Flags().Int("chunk-size", 0, "Schools fetched concurrently (defaults to sync.chunkSize)")
	details.Flags().Bool("strict", false, "Reject payloads with a missing school name or block")

	cmd.AddCommand(directory, details)
	return cmd
}

func addRegionFlags(cmd *cobra.Command) {
	cmd.Flags().String("state", "", "State code (stcode11)")
	cmd.Flags().String("district", "", "District code (dtcode11)")
}

func regionFromFlags(cmd *cobra.Command) schools.Region {
	state, _ := cmd.Flags().GetString("state")
	district, _ := cmd.Flags().GetString("district")
	return schools.NewRegion(state, district)
}

func (c *cli) runSyncDirectory(cmd *cobra.Command, _ []string) error {
	region := regionFromFlags(cmd)
	if err := region.Validate(); err != nil {
		return err
	}

	cfg, logCloser, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	s, err := c.openPipeline(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.manager.SyncDirectory(cmd.Context(), region)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %d directory entries for %s (run %s)\n",
		result.Added, region, result.RunID)
	return err
}

func (c *cli) runSyncDetails(cmd *cobra.Command, _ []string) error {
	cfg, logCloser, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	req := pkgsync.DetailRequest{
		Region:    regionFromFlags(cmd),
		YearID:    cfg.Sync.GetYearID(),
		ChunkSize: cfg.Sync.GetChunkSize(),
		Strict:    cfg.Sync.Strict,
	}
	flags := cmd.Flags()
	if flags.Changed("year") {
		req.YearID, _ = flags.GetInt("year")
	}
	if flags.Changed("chunk-size") {
		req.ChunkSize, _ = flags.GetInt("chunk-size")
	}
	if flags.Changed("strict") {
		req.Strict, _ = flags.GetBool("strict")
	}
	req.Identifiers, _ = flags.GetStringSlice("codes")

	if len(req.Identifiers) == 0 {
		if err := req.Region.Validate(); err != nil {
			return fmt.Errorf("--codes or a region is required: %w", err)
		}
	}

	s, err := c.openPipeline(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer s.close()

	result, err := s.manager.SyncDetails(cmd.Context(), req)
	if result != nil {
		if werr := writeDetailResult(cmd.OutOrStdout(), result); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func writeDetailResult(w io.Writer, result *pkgsync.DetailResult) error {
	if _, err := fmt.Fprintf(w, "Year %s: %d processed, %d skipped, %d failed (run %s)\n",
		result.YearLabel, result.Processed, result.Skipped, result.Failed, result.RunID); err != nil {
		return err
	}
	if len(result.Failures) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Code", "Reason")
	for _, f := range result.Failures {
		if err := table.Append([]string{f.Identifier, f.Reason}); err != nil {
			return err
		}
	}
	return table.Render()
}
