package reorder

import (
	"encoding/json"
	"fmt"
	"os"
)

// Job is one re-order request read from a batch file.
type Job struct {
	OrderNumber string   `json:"orderNumber"`
	RefundID    string   `json:"refundId"`
	Skus        []string `json:"skus"`
}

func ReadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file %s: %w", path, err)
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decode job file %s: %w", path, err)
	}
	if job.OrderNumber == "" {
		return nil, fmt.Errorf("job file %s: missing orderNumber", path)
	}
	if job.RefundID == "" {
		return nil, fmt.Errorf("job file %s: missing refundId", path)
	}
	if len(job.Skus) == 0 {
		return nil, fmt.Errorf("job file %s: missing skus", path)
	}
	return &job, nil
}
