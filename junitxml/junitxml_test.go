package junitxml

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleSuiteReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="com.acme.FooTest" tests="3" failures="1" errors="0" time="0.042">
  <testcase name="testFoo" classname="com.acme.FooTest" time="0.012"/>
  <testcase name="testBar" classname="com.acme.FooTest" time="0.020">
    <failure message="expected true" type="AssertionError">at com.acme.FooTest.testBar(FooTest.java:42)</failure>
  </testcase>
  <testcase name="testBaz" classname="com.acme.FooTest" time="0.010">
    <skipped message="not on CI"/>
  </testcase>
</testsuite>`

const wrappedSuitesReport = `<?xml version="1.0" encoding="UTF-8"?>
<testsuites tests="3" failures="1" errors="1">
  <testsuite name="com.acme.FooTest" tests="2" failures="1" errors="0" time="0.8">
    <testcase name="testFoo" classname="com.acme.FooTest" time="0.5"/>
    <testcase name="testBar" classname="com.acme.FooTest" time="0.3">
      <failure message="boom"/>
    </testcase>
  </testsuite>
  <testsuite name="com.acme.BarTest" tests="1" failures="0" errors="1" time="0.1">
    <testcase name="testQux" classname="com.acme.BarTest" time="0.1">
      <error message="io error" type="IOException">stack</error>
    </testcase>
  </testsuite>
</testsuites>`

func Test_GivenSingleSuiteReport_WhenParse_ThenReturnsSuite(t *testing.T) {
	// Given
	pth := writeReport(t, "TEST-com.acme.FooTest.xml", singleSuiteReport)

	// When
	suite, err := NewParser().Parse(pth)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "com.acme.FooTest", suite.Name)
	assert.Equal(t, 3, suite.Tests)
	assert.Equal(t, 1, suite.Failures)
	assert.Equal(t, 0, suite.Errors)
	require.Len(t, suite.TestCases, 3)

	passed := suite.TestCases[0]
	assert.Equal(t, "testFoo", passed.Name)
	assert.Equal(t, "com.acme.FooTest", passed.ClassName)
	assert.Equal(t, "0.012", passed.Time)
	assert.Empty(t, passed.Failures)
	assert.Empty(t, passed.Errors)
	assert.Nil(t, passed.Skipped)

	failed := suite.TestCases[1]
	require.Len(t, failed.Failures, 1)
	assert.Equal(t, "expected true", failed.Failures[0].Message)
	assert.Equal(t, "AssertionError", failed.Failures[0].Type)
	assert.Contains(t, failed.Failures[0].Content, "FooTest.java:42")

	skipped := suite.TestCases[2]
	require.NotNil(t, skipped.Skipped)
	assert.Equal(t, "not on CI", skipped.Skipped.Message)
}

func Test_GivenWrappedSuitesReport_WhenParse_ThenFlattensSuites(t *testing.T) {
	// Given
	pth := writeReport(t, "report.xml", wrappedSuitesReport)

	// When
	suite, err := NewParser().Parse(pth)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "com.acme.FooTest", suite.Name)
	assert.Equal(t, 3, suite.Tests)
	assert.Equal(t, 1, suite.Failures)
	assert.Equal(t, 1, suite.Errors)
	require.Len(t, suite.TestCases, 3)
	assert.Equal(t, "testQux", suite.TestCases[2].Name)
	require.Len(t, suite.TestCases[2].Errors, 1)
	assert.Equal(t, "IOException", suite.TestCases[2].Errors[0].Type)
}

func Test_GivenNamedWrapper_WhenParse_ThenKeepsWrapperName(t *testing.T) {
	// Given
	pth := writeReport(t, "report.xml", `<testsuites name="nightly">
  <testsuite name="com.acme.FooTest" tests="1">
    <testcase name="testFoo" classname="com.acme.FooTest"/>
  </testsuite>
</testsuites>`)

	// When
	suite, err := NewParser().Parse(pth)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "nightly", suite.Name)
}

func Test_GivenMalformedXML_WhenParse_ThenReturnsParseError(t *testing.T) {
	// Given
	pth := writeReport(t, "broken.xml", `<testsuite name="x"><testcase`)

	// When
	suite, err := NewParser().Parse(pth)

	// Then
	require.Error(t, err)
	assert.Nil(t, suite)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, pth, parseErr.Path)
}

func Test_GivenUnexpectedRootElement_WhenParse_ThenReturnsParseError(t *testing.T) {
	// Given
	pth := writeReport(t, "other.xml", `<coverage line-rate="0.9"/>`)

	// When
	_, err := NewParser().Parse(pth)

	// Then
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func Test_GivenMissingFile_WhenParse_ThenReturnsParseError(t *testing.T) {
	// When
	_, err := NewParser().Parse(filepath.Join(t.TempDir(), "nonexistent.xml"))

	// Then
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

// Helpers

func writeReport(t *testing.T, name, content string) string {
	pth := filepath.Join(t.TempDir(), name)
	err := fileutil.NewFileManager().Write(pth, content, 0777)
	require.NoError(t, err)

	return pth
}
