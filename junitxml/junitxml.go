package junitxml

import (
	"encoding/xml"
	"fmt"

	"github.com/bitrise-io/go-utils/fileutil"
)

// Suite is one JUnit report: a named suite with its test cases and the
// aggregate counters the report carries. A testsuites wrapper document is
// flattened into a single Suite.
type Suite struct {
	XMLName   xml.Name   `xml:"testsuite"`
	Name      string     `xml:"name,attr"`
	Tests     int        `xml:"tests,attr"`
	Failures  int        `xml:"failures,attr"`
	Errors    int        `xml:"errors,attr"`
	Time      string     `xml:"time,attr"`
	TestCases []TestCase `xml:"testcase"`
}

// TestCase is one executed test case of a suite. Time values stay strings,
// the reported value passes through to the execution notes untouched.
type TestCase struct {
	Name      string    `xml:"name,attr"`
	ClassName string    `xml:"classname,attr"`
	Time      string    `xml:"time,attr"`
	Failures  []Failure `xml:"failure"`
	Errors    []Failure `xml:"error"`
	Skipped   *Skipped  `xml:"skipped"`
}

// Failure is a failure or error element of a test case.
type Failure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Content string `xml:",chardata"`
}

// Skipped ...
type Skipped struct {
	Message string `xml:"message,attr"`
}

type testSuites struct {
	XMLName xml.Name `xml:"testsuites"`
	Name    string   `xml:"name,attr"`
	Suites  []Suite  `xml:"testsuite"`
}

// ParseError marks a report file that could not be read or decoded. Seeking
// logs it and carries on with the next file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse JUnit report (%s): %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads one JUnit-style XML report file.
type Parser interface {
	Parse(pth string) (*Suite, error)
}

type parser struct{}

// NewParser ...
func NewParser() Parser {
	return parser{}
}

// Parse decodes the report at pth. Both a testsuite root and a testsuites
// wrapper root are accepted. Every failure comes back as a *ParseError.
func (parser) Parse(pth string) (*Suite, error) {
	data, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return nil, &ParseError{Path: pth, Err: err}
	}

	suite, err := parseReport(data)
	if err != nil {
		return nil, &ParseError{Path: pth, Err: err}
	}

	return suite, nil
}

func parseReport(data []byte) (*Suite, error) {
	var wrapper testSuites
	if err := xml.Unmarshal(data, &wrapper); err == nil {
		return flatten(wrapper), nil
	}

	var suite Suite
	if err := xml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("not a JUnit report: %w", err)
	}

	return &suite, nil
}

// flatten merges the suites of a testsuites wrapper into one suite: cases
// concatenated in document order, counters summed.
func flatten(wrapper testSuites) *Suite {
	merged := Suite{Name: wrapper.Name}

	for _, suite := range wrapper.Suites {
		merged.Tests += suite.Tests
		merged.Failures += suite.Failures
		merged.Errors += suite.Errors
		merged.TestCases = append(merged.TestCases, suite.TestCases...)
	}

	if merged.Name == "" && len(wrapper.Suites) > 0 {
		merged.Name = wrapper.Suites[0].Name
	}

	return &merged
}
