package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/schoolgis/schoolsync/internal/store"
)

func (c *cli) newSkippedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skipped",
		Short: "Inspect the skip ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List skipped schools, newest first",
		RunE:  c.runSkippedList,
	}
	addRegionFlags(list)
	list.Flags().Int("page", 1, "Page number")
	list.Flags().Int("limit", store.DefaultPageSize, "Rows per page")

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Count skipped schools by district, year and reason",
		RunE:  c.runSkippedSummary,
	}

	cmd.AddCommand(list, summary)
	return cmd
}

func (c *cli) runSkippedList(cmd *cobra.Command, _ []string) error {
	cfg, logCloser, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	s, err := c.openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer s.close()

	region := regionFromFlags(cmd)
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	result, err := s.store.List(cmd.Context(), store.SkipFilter{
		StateCode:    region.StateCode,
		DistrictCode: region.DistrictCode,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list skipped schools: %w", err)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Code", "Year", "State", "District", "Reason", "Recorded")
	for _, rec := range result.Records {
		if err := table.Append([]string{
			rec.Identifier, rec.YearLabel, rec.StateCode, rec.DistrictCode, rec.Reason,
			rec.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Page %d, %d of %d records\n", result.Page, len(result.Records), result.Total)
	return err
}

func (c *cli) runSkippedSummary(cmd *cobra.Command, _ []string) error {
	cfg, logCloser, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	s, err := c.openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer s.close()

	rows, err := s.store.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to summarize skipped schools: %w", err)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("State", "District", "Year", "Reason", "Count")
	for _, row := range rows {
		if err := table.Append([]string{
			row.StateCode, row.DistrictCode, row.YearLabel, row.Reason, strconv.FormatInt(row.Count, 10),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
