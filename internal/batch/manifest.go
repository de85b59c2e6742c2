package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame    int        `json:"frame"`
	Time     float32    `json:"time"`
	Image    string     `json:"image"`
	IKTarget [3]float32 `json:"ik_target"`
	Pixels   int        `json:"triangle_pixels"`
}

// WriteManifest writes the successful results as a JSON array to path,
// creating the parent directory if needed.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Frame:    r.Frame,
			Time:     r.Time,
			Image:    r.Image,
			IKTarget: r.Target,
			Pixels:   r.Pixels,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
