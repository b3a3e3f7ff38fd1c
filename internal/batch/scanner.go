package batch

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ListJobs returns the job files waiting in the inbox directory. Files
// already routed into outcome subdirectories are not matched.
func ListJobs(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scan batch dir %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}
