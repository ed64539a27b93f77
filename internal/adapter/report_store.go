package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "diamondkit.dev/pkg/diamondkit/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore writes and reads run reports. The format follows the file
// extension: .yaml/.yml is YAML, anything else JSON.
type ReportStore interface {
	SaveReport(path m.Path, report any) error
	LoadReport(path m.Path, report any) error
}

// FileReportStore is the filesystem ReportStore.
type FileReportStore struct{}

// NewFileReportStore constructs a FileReportStore.
func NewFileReportStore() *FileReportStore {
	return &FileReportStore{}
}

// SaveReport encodes report and writes it, creating parent directories.
func (s *FileReportStore) SaveReport(path m.Path, report any) error {
	var (
		data []byte
		err  error
	)

	if isYAML(path) {
		data, err = yaml.Marshal(report)
	} else {
		data, err = json.MarshalIndent(report, "", "  ")
		data = append(data, '\n')
	}

	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil { //nolint:gosec // reports are meant to be shared
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// LoadReport decodes a report previously written by SaveReport.
func (s *FileReportStore) LoadReport(path m.Path, report any) error {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, report)
	} else {
		err = json.Unmarshal(data, report)
	}

	if err != nil {
		return fmt.Errorf("decode report: %w", err)
	}

	return nil
}

func isYAML(path m.Path) bool {
	ext := strings.ToLower(filepath.Ext(string(path)))
	return ext == ".yaml" || ext == ".yml"
}
