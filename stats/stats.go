package stats

import (
	"encoding/json"
	"fmt"
	"os"
)

const OUTPUT_PERMISSIONS = 0644

// RunStats represents the statistics output of one run
type RunStats struct {
	CountersBySource map[string]*SourceStats `json:"countersBySource"`
	TotalSourceCount int                     `json:"totalSourceCount"`
	TotalValuesRead  int                     `json:"totalValuesRead"`
	TotalValuesKept  int                     `json:"totalValuesKept"`
	TotalPopped      int                     `json:"totalPopped"`
	TotalRemaining   int                     `json:"totalRemaining"`
}

// SourceStats represents statistics for a single source
type SourceStats struct {
	ValuesRead      int `json:"valuesRead"`
	ValuesKept      int `json:"valuesKept"`
	ValuesPopped    int `json:"valuesPopped"`
	ValuesRemaining int `json:"valuesRemaining"`
}

// NewRunStats creates a new RunStats instance with initialized maps
func NewRunStats() *RunStats {
	return &RunStats{
		CountersBySource: make(map[string]*SourceStats),
	}
}

// AddSource records the counters of one source, replacing earlier counters for the same name
func (rs *RunStats) AddSource(name string, sourceStats SourceStats) {
	counters := sourceStats
	rs.CountersBySource[name] = &counters
}

// Finalize calculates the totals from the per source counters
func (rs *RunStats) Finalize() {
	rs.TotalSourceCount = len(rs.CountersBySource)
	rs.TotalValuesRead, rs.TotalValuesKept, rs.TotalPopped, rs.TotalRemaining = 0, 0, 0, 0
	for _, counters := range rs.CountersBySource {
		rs.TotalValuesRead += counters.ValuesRead
		rs.TotalValuesKept += counters.ValuesKept
		rs.TotalPopped += counters.ValuesPopped
		rs.TotalRemaining += counters.ValuesRemaining
	}
}

// WriteFile writes the statistics as indented json
func (rs *RunStats) WriteFile(outputPath string) error {
	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}
	err = os.WriteFile(outputPath, data, OUTPUT_PERMISSIONS)
	if err != nil {
		return fmt.Errorf("failed to write stats to '%v': %v", outputPath, err)
	}
	return nil
}
