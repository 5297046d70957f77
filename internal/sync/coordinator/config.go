package coordinator

import (
	"time"

	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/schools"
)

// schedule is what the coordinator runs on every tick.
type schedule struct {
	interval  time.Duration
	regions   []schools.Region
	yearID    int
	chunkSize int
	strict    bool
}

// scheduleFromConfig reads the sync section. Regions with a missing code are dropped.
func scheduleFromConfig(cfg *config.Config) schedule {
	s := schedule{
		interval:  cfg.Sync.GetInterval(),
		yearID:    cfg.Sync.GetYearID(),
		chunkSize: cfg.Sync.GetChunkSize(),
		strict:    cfg.Sync.Strict,
	}
	for _, r := range cfg.Regions() {
		region := schools.NewRegion(r.StateCode, r.DistrictCode)
		if region.Validate() != nil {
			continue
		}
		s.regions = append(s.regions, region)
	}
	return s
}

func (s schedule) enabled() bool {
	return s.interval > 0 && len(s.regions) > 0
}
