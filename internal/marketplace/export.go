package marketplace

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Export files are produced by the marketplace backend and may carry more
// fields than the scoring engine knows about. Records are decoded loosely:
// unknown keys are ignored and scalar types are coerced where possible.

// LoadCandidates reads a candidate export file. Both a bare JSON array and an
// object with an "items" key are accepted.
func LoadCandidates(path string) (*Candidates, error) {
	records, err := loadRecords(path)
	if err != nil {
		return nil, fmt.Errorf("loading candidates from %q: %w", path, err)
	}

	var items []*Candidate
	if err := decodeRecords(records, &items); err != nil {
		return nil, fmt.Errorf("decoding candidates from %q: %w", path, err)
	}

	return &Candidates{Items: items}, nil
}

// LoadJobs reads a job posting export file.
func LoadJobs(path string) (*Jobs, error) {
	records, err := loadRecords(path)
	if err != nil {
		return nil, fmt.Errorf("loading jobs from %q: %w", path, err)
	}

	var items []*Job
	if err := decodeRecords(records, &items); err != nil {
		return nil, fmt.Errorf("decoding jobs from %q: %w", path, err)
	}

	return &Jobs{Items: items}, nil
}

// LoadCandidate reads a file containing a single candidate record.
func LoadCandidate(path string) (*Candidate, error) {
	record, err := loadRecord(path)
	if err != nil {
		return nil, fmt.Errorf("loading candidate from %q: %w", path, err)
	}

	var candidate Candidate
	if err := decodeRecords(record, &candidate); err != nil {
		return nil, fmt.Errorf("decoding candidate from %q: %w", path, err)
	}

	return &candidate, nil
}

// LoadJob reads a file containing a single job record.
func LoadJob(path string) (*Job, error) {
	record, err := loadRecord(path)
	if err != nil {
		return nil, fmt.Errorf("loading job from %q: %w", path, err)
	}

	var job Job
	if err := decodeRecords(record, &job); err != nil {
		return nil, fmt.Errorf("decoding job from %q: %w", path, err)
	}

	return &job, nil
}

func loadRecords(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parsing export file: %w", err)
	}

	return wrapped.Items, nil
}

func loadRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing record file: %w", err)
	}

	return record, nil
}

func decodeRecords(input, output any) error {
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
