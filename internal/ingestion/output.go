package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteOutput writes the extracted text and metadata next to each other in outDir
// as <base>.txt and <base>.meta.json.
func WriteOutput(outDir, base string, result *Result) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	textPath := filepath.Join(outDir, base+".txt")
	if err := os.WriteFile(textPath, []byte(result.Text), 0644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	metaJSON, err := result.Metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, base+".meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
