package testlink

// ExecutionStatus is a TestLink execution status wire code.
type ExecutionStatus string

const (
	StatusNotRun  ExecutionStatus = "n"
	StatusPassed  ExecutionStatus = "p"
	StatusFailed  ExecutionStatus = "f"
	StatusBlocked ExecutionStatus = "b"
)

// Name returns the human readable label of the status code.
func (s ExecutionStatus) Name() string {
	switch s {
	case StatusNotRun:
		return "Not Run"
	case StatusPassed:
		return "Passed"
	case StatusFailed:
		return "Failed"
	case StatusBlocked:
		return "Blocked"
	}
	return "Unknown"
}

// CustomField is a named value attached to a test-case record in TestLink.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TestCase is a test-case record registered in TestLink.
type TestCase struct {
	ID              int             `json:"id"`
	VersionID       int             `json:"versionId"`
	Name            string          `json:"name"`
	ExecutionStatus ExecutionStatus `json:"executionStatus"`
	CustomFields    []CustomField   `json:"customFields,omitempty"`
}

// CustomFieldValue returns the value of the first custom field with the given
// name. Custom field names are unique within a record in TestLink, so the
// first hit is the only hit.
func (c *TestCase) CustomFieldValue(name string) (string, bool) {
	for _, field := range c.CustomFields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// Build ...
type Build struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TestPlan ...
type TestPlan struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Report is the known set of test-case records together with the plan and
// build their executions belong to.
type Report struct {
	TestPlan  TestPlan    `json:"testPlan"`
	Build     Build       `json:"build"`
	TestCases []*TestCase `json:"testCases"`
}

// Attachment is a file attached to a test-case execution.
type Attachment struct {
	FileName    string `json:"fileName"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize"`
	Content     string `json:"content"`
}

// TestResult is one test-case execution prepared for upload: the matched
// record, the build and plan it ran in, free-text notes and an optional
// report-file attachment. Several results can reference the same record when
// multiple report files mention its class.
type TestResult struct {
	TestCase     *TestCase   `json:"testCase"`
	Build        Build       `json:"build"`
	TestPlan     TestPlan    `json:"testPlan"`
	Notes        string      `json:"notes"`
	Attachment   *Attachment `json:"attachment,omitempty"`
	SourceReport string      `json:"sourceReport"`
}
