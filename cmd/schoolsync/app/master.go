package app

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schoolgis/schoolsync/internal/schools"
)

func (c *cli) newMasterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master",
		Short: "Manage the object id reference list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Load object ids from a CSV file",
		Long: `Load the object id reference list from a CSV file with the columns
object_id, stcode11 and dtcode11. A header row is optional. Rows already present
are left unchanged.

Example:
  schoolsync master import --config config.yaml --file master_object.csv`,
		RunE: c.runMasterImport,
	}
	importCmd.Flags().String("file", "", "CSV file to import (- for stdin)")
	_ = importCmd.MarkFlagRequired("file")

	cmd.AddCommand(importCmd)
	return cmd
}

func (c *cli) runMasterImport(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}

	objects, err := readMasterObjects(in)
	if err != nil {
		return err
	}

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

	added, err := s.store.ImportMasterObjects(cmd.Context(), objects)
	if err != nil {
		return fmt.Errorf("failed to import object ids: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d object ids\n", added, len(objects))
	return err
}

// readMasterObjects parses object_id,stcode11,dtcode11 rows, skipping a header row.
func readMasterObjects(r io.Reader) ([]schools.MasterObjectID, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var objects []schools.MasterObjectID
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read object ids: %w", err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "object_id") {
			continue
		}

		obj := schools.MasterObjectID{
			ObjectID:     strings.TrimSpace(record[0]),
			StateCode:    strings.TrimSpace(record[1]),
			DistrictCode: strings.TrimSpace(record[2]),
		}
		if obj.ObjectID == "" || obj.StateCode == "" || obj.DistrictCode == "" {
			return nil, fmt.Errorf("line %d: object_id, stcode11 and dtcode11 are required", line)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}
