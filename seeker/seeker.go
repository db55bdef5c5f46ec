package seeker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testlink-result-export/attachment"
	"github.com/bitrise-steplib/steps-testlink-result-export/junitxml"
	"github.com/bitrise-steplib/steps-testlink-result-export/scanner"
	"github.com/bitrise-steplib/steps-testlink-result-export/testlink"
)

// ErrorKind classifies unrecoverable seek failures.
type ErrorKind int

const (
	// KindScanIO marks an I/O fault while discovering report files.
	KindScanIO ErrorKind = iota
	// KindInternal marks an unexpected fault during report processing.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindScanIO:
		return "scan"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// SeekError aborts a seek. Parse problems of individual report files never
// surface as a SeekError, those are logged and the file is skipped.
type SeekError struct {
	Kind ErrorKind
	Err  error
}

func (e *SeekError) Error() string {
	return fmt.Sprintf("seek JUnit results (%s): %s", e.Kind, e.Err)
}

func (e *SeekError) Unwrap() error {
	return e.Err
}

// SeekParams ...
type SeekParams struct {
	Report         *testlink.Report
	KeyCustomField string
	ReportRootDir  string
	IncludePattern string
}

// Found is the outcome of a seek: the prepared execution results and the
// report files that produced at least one of them, in discovery order.
type Found struct {
	Results     []testlink.TestResult
	ReportPaths []string
}

// Seeker matches JUnit report files to the registered test-case records.
type Seeker interface {
	Seek(params SeekParams) (Found, error)
}

type junitSeeker struct {
	parser            junitxml.Parser
	scanner           scanner.Scanner
	attachmentBuilder attachment.Builder
	logger            log.Logger
}

// NewJUnitSeeker ...
func NewJUnitSeeker(parser junitxml.Parser, scanner scanner.Scanner, attachmentBuilder attachment.Builder, logger log.Logger) Seeker {
	return &junitSeeker{
		parser:            parser,
		scanner:           scanner,
		attachmentBuilder: attachmentBuilder,
		logger:            logger,
	}
}

// Seek scans the report root for files matching the include pattern and
// prepares a test result for every reported case whose class name equals the
// key custom field value of a registered record. The first matching record
// wins. Files that fail to parse are logged and skipped.
func (s *junitSeeker) Seek(params SeekParams) (found Found, err error) {
	if strings.TrimSpace(params.IncludePattern) == "" {
		s.logger.Printf("Empty JUnit report include pattern. Skipping JUnit results.")
		return Found{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			found = Found{}
			err = &SeekError{Kind: KindInternal, Err: fmt.Errorf("unexpected failure while processing reports: %v", r)}
		}
	}()

	reportPaths, err := s.scanner.Scan(params.ReportRootDir, params.IncludePattern)
	if err != nil {
		return Found{}, &SeekError{Kind: KindScanIO, Err: err}
	}

	s.logger.Printf("Found %d JUnit report file(s).", len(reportPaths))

	for _, relPth := range reportPaths {
		pth := filepath.Join(params.ReportRootDir, filepath.FromSlash(relPth))
		s.logger.Printf("Processing %s.", relPth)

		suite, err := s.parser.Parse(pth)
		if err != nil {
			var parseErr *junitxml.ParseError
			if errors.As(err, &parseErr) {
				s.logger.Warnf("Skipping report: %s", parseErr)
				continue
			}
			return Found{}, &SeekError{Kind: KindInternal, Err: err}
		}

		s.logger.Debugf("Inspecting suite %s (%d test case(s)) from %s.", suite.Name, len(suite.TestCases), relPth)

		matchedAny := false
		for _, testCase := range suite.TestCases {
			result, matched := s.match(testCase, params, pth)
			if !matched {
				continue
			}

			found.Results = append(found.Results, result)
			matchedAny = true
		}

		if matchedAny {
			found.ReportPaths = append(found.ReportPaths, pth)
		}
	}

	s.logger.Printf("Found %d test result(s).", len(found.Results))

	return found, nil
}

// match looks up the record registered for the case's class name, derives the
// execution status, mutates the record and prepares the result. A case with
// no class name or no registered record contributes nothing.
func (s *junitSeeker) match(testCase junitxml.TestCase, params SeekParams, reportPth string) (testlink.TestResult, bool) {
	if testCase.ClassName == "" {
		return testlink.TestResult{}, false
	}

	record := findRecord(params.Report.TestCases, params.KeyCustomField, testCase.ClassName)
	if record == nil {
		s.logger.Debugf("No record registered for test case %s (%s).", testCase.Name, testCase.ClassName)
		return testlink.TestResult{}, false
	}

	status := testlink.StatusPassed
	if len(testCase.Failures)+len(testCase.Errors) > 0 {
		status = testlink.StatusFailed
	}
	record.ExecutionStatus = status

	result := testlink.TestResult{
		TestCase:     record,
		Build:        params.Report.Build,
		TestPlan:     params.Report.TestPlan,
		Notes:        executionNotes(testCase),
		SourceReport: reportPth,
	}

	reportAttachment, err := s.attachmentBuilder.Build(record.VersionID, reportPth)
	if err != nil {
		s.logger.Warnf("Failed to attach JUnit report to test case %s: %s", record.Name, err)
		result.Notes += "\n\nFailed to attach the JUnit report to this execution: " + err.Error()
	} else {
		result.Attachment = &reportAttachment
	}

	s.logger.Debugf("Matched test case %s (%s) to record %d with status %s.", testCase.Name, testCase.ClassName, record.ID, status.Name())

	return result, true
}

func findRecord(records []*testlink.TestCase, keyField, className string) *testlink.TestCase {
	for _, record := range records {
		if value, found := record.CustomFieldValue(keyField); found && value == className {
			return record
		}
	}
	return nil
}

// executionNotes renders the notes block uploaded with the execution.
func executionNotes(testCase junitxml.TestCase) string {
	var notes strings.Builder
	notes.WriteString("name: " + testCase.Name + "\n")
	notes.WriteString("classname: " + testCase.ClassName + "\n")
	notes.WriteString(fmt.Sprintf("errors: %d\n", len(testCase.Errors)))
	notes.WriteString(fmt.Sprintf("failures: %d\n", len(testCase.Failures)))
	notes.WriteString("time: " + testCase.Time + "\n")

	return notes.String()
}
