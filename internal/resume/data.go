// Copyright Punit Mishra, 2026. All rights reserved.

// Package resume builds a self-contained HTML resume document from
// structured data and optionally rasterizes it to PDF.
package resume

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"

	"github.com/punitmishra/publish-engine/pkg/types"
)

var validate = validator.New()

// LoadData reads and validates the resume data file. Validation failures
// name the offending field so the YAML is easy to fix.
func LoadData(path string) (types.ResumeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("reading resume data %s: %w", path, err)
	}

	var rd types.ResumeData
	if err := yaml.Unmarshal(data, &rd); err != nil {
		return types.ResumeData{}, fmt.Errorf("decoding resume data: %w", err)
	}

	if err := validate.Struct(rd); err != nil {
		return types.ResumeData{}, fmt.Errorf("validating resume data: %w", err)
	}
	return rd, nil
}
