package testlink

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed records.schema.json
var recordsSchemaJSON []byte

var (
	recordsSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// Loader reads a records manifest exported from TestLink.
type Loader interface {
	Load(pth string) (*Report, error)
}

type loader struct{}

// NewLoader ...
func NewLoader() Loader {
	return loader{}
}

// Load reads a JSON or YAML records manifest, validates it against the
// embedded schema and decodes it. Records without an execution status default
// to Not Run.
func (loader) Load(pth string) (*Report, error) {
	data, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return nil, fmt.Errorf("read records manifest: %w", err)
	}

	switch strings.ToLower(filepath.Ext(pth)) {
	case ".yml", ".yaml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("records manifest (%s): %w", pth, err)
		}
	}

	if err := validateRecords(data); err != nil {
		return nil, fmt.Errorf("records manifest (%s): %w", pth, err)
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode records manifest (%s): %w", pth, err)
	}

	for _, testCase := range report.TestCases {
		if testCase.ExecutionStatus == "" {
			testCase.ExecutionStatus = StatusNotRun
		}
	}

	return &report, nil
}

// compileRecordsSchema compiles the embedded schema once.
func compileRecordsSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(recordsSchemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal records schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("records.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add records schema resource: %w", err)
			return
		}

		recordsSchema, compileErr = compiler.Compile("records.schema.json")
	})

	return compileErr
}

func validateRecords(data []byte) error {
	if err := compileRecordsSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := recordsSchema.Validate(v); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert YAML to JSON: %w", err)
	}

	return out, nil
}
