// Package dataset builds and persists the per-day merged comment artifact.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"daily-goals-pipeline/types"
)

// Path returns the dataset location for a civil date.
func Path(outputDir, date string) string {
	return filepath.Join(outputDir, fmt.Sprintf("comments_%s.json", date))
}

// Build assembles the day's dataset and its derived stats.
func Build(date, morningVideoID, nightVideoID string, comments []types.UserComment) *types.Dataset {
	stats := types.Stats{TotalUsers: len(comments)}
	for _, c := range comments {
		switch {
		case c.HasBoth():
			stats.BothCommented++
		case c.MorningGoal != nil:
			stats.MorningOnly++
		default:
			stats.NightOnly++
		}
	}

	return &types.Dataset{
		Date:           date,
		MorningVideoID: morningVideoID,
		NightVideoID:   nightVideoID,
		Comments:       comments,
		Stats:          stats,
	}
}

// Save writes the dataset as indented JSON. The file only appears once the
// full document is marshaled; a failed run leaves no partial artifact.
func Save(path string, ds *types.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}

// Load reads a previously saved dataset.
func Load(path string) (*types.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ds types.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return &ds, nil
}
