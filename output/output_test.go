package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testlink-result-export/output/mocks"
	"github.com/bitrise-steplib/steps-testlink-result-export/testaddon"
	"github.com/bitrise-steplib/steps-testlink-result-export/testlink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	seekResultKey  = "BITRISE_TESTLINK_EXPORT_RESULT"
	resultCountKey = "BITRISE_TESTLINK_RESULT_COUNT"
)

type testingMocks struct {
	envRepository     *mocks.Repository
	testAddonExporter *mocks.Exporter
}

func Test_GivenSuccessfulSeek_WhenExportingSeekRunResult_ThenSetsEnvVariableToSuccess(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	exporter.ExportSeekRunResult(false)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", seekResultKey, "succeeded")
}

func Test_GivenFailedSeek_WhenExportingSeekRunResult_ThenSetsEnvVariableToFailure(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()

	// When
	exporter.ExportSeekRunResult(true)

	// Then
	mocks.envRepository.AssertCalled(t, "Set", seekResultKey, "failed")
}

func Test_GivenTestResults_WhenExportingPayload_ThenWritesPayloadAndSetsResultCount(t *testing.T) {
	// Given
	deployDir := t.TempDir()
	report := testReport()
	results := []testlink.TestResult{
		{
			TestCase: report.TestCases[0],
			Build:    report.Build,
			TestPlan: report.TestPlan,
			Notes:    "name: testLogin\nclassname: com.acme.FooTest\nerrors: 0\nfailures: 0\ntime: 0.012\n",
		},
	}

	exporter, mocks := createSutAndMocks()

	// When
	pth, err := exporter.ExportTestResultsPayload(deployDir, report, results)

	// Then
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(deployDir, "testlink_results.json"), pth)
	assert.True(t, isPathExists(pth))

	payload := decodePayload(t, pth)
	assert.Equal(t, "Regression", payload.TestPlan.Name)
	assert.Equal(t, "nightly-842", payload.Build.Name)
	assert.Len(t, payload.Results, 1)
	assert.Equal(t, results[0].Notes, payload.Results[0].Notes)

	mocks.envRepository.AssertCalled(t, "Set", resultCountKey, "1")
}

func Test_GivenNoTestResults_WhenExportingPayload_ThenWritesEmptyResultsList(t *testing.T) {
	// Given
	deployDir := t.TempDir()

	exporter, mocks := createSutAndMocks()

	// When
	pth, err := exporter.ExportTestResultsPayload(deployDir, testReport(), nil)

	// Then
	assert.NoError(t, err)

	payload := decodePayload(t, pth)
	assert.NotNil(t, payload.Results)
	assert.Empty(t, payload.Results)

	mocks.envRepository.AssertCalled(t, "Set", resultCountKey, "0")
}

func Test_GivenNoReportPaths_WhenExportingReportArchive_ThenSkips(t *testing.T) {
	// Given
	deployDir := t.TempDir()

	exporter, _ := createSutAndMocks()

	// When
	err := exporter.ExportReportArchive(deployDir, nil)

	// Then
	assert.NoError(t, err)
	assert.False(t, isPathExists(filepath.Join(deployDir, "junit_reports.zip")))
}

func Test_GivenReportPaths_WhenExportingReportArchive_ThenCreatesArchiveInDeployDir(t *testing.T) {
	// Given
	deployDir := t.TempDir()
	reportPaths := prepareReportFiles(t)

	exporter, _ := createSutAndMocks()

	// When
	_ = exporter.ExportReportArchive(deployDir, reportPaths)

	// Then
	assert.True(t, isPathExists(filepath.Join(deployDir, "junit_reports.zip")))
}

func Test_GivenTestAddonDirSet_WhenExportingReportsForTestAddon_ThenCopiesReports(t *testing.T) {
	// Given
	addonDir := t.TempDir()
	reportPaths := []string{"/_tmp/reports/TEST-com.acme.FooTest.xml"}

	exporter, mocks := createSutAndMocks()
	mocks.envRepository.On("Get", configs.BitrisePerStepTestResultDirEnvKey).Return(addonDir)
	mocks.testAddonExporter.On("CopyAndSaveMetadata", mock.Anything).Return(nil)

	// When
	err := exporter.ExportReportsForTestAddon(reportPaths, "r842")

	// Then
	assert.NoError(t, err)
	mocks.testAddonExporter.AssertCalled(t, "CopyAndSaveMetadata", testaddon.AddonCopy{
		SourceReportPaths:     reportPaths,
		TargetAddonPath:       addonDir,
		TargetAddonBundleName: "r842",
	})
}

func Test_GivenTestAddonDirNotSet_WhenExportingReportsForTestAddon_ThenSkips(t *testing.T) {
	// Given
	exporter, mocks := createSutAndMocks()
	mocks.envRepository.On("Get", configs.BitrisePerStepTestResultDirEnvKey).Return("")

	// When
	err := exporter.ExportReportsForTestAddon([]string{"/_tmp/reports/TEST-com.acme.FooTest.xml"}, "r842")

	// Then
	assert.NoError(t, err)
	mocks.testAddonExporter.AssertNumberOfCalls(t, "CopyAndSaveMetadata", 0)
}

// Helpers

func createSutAndMocks() (Exporter, testingMocks) {
	envRepository := new(mocks.Repository)
	envRepository.On("Set", mock.Anything, mock.Anything).Return(nil)

	testAddonExporter := new(mocks.Exporter)

	outputExporter := export.NewExporter(command.NewFactory(env.NewRepository()))
	exporter := NewExporter(envRepository, log.NewLogger(), outputExporter, testAddonExporter)

	return exporter, testingMocks{
		envRepository:     envRepository,
		testAddonExporter: testAddonExporter,
	}
}

func testReport() *testlink.Report {
	return &testlink.Report{
		TestPlan: testlink.TestPlan{ID: 12, Name: "Regression"},
		Build:    testlink.Build{ID: 3, Name: "nightly-842"},
		TestCases: []*testlink.TestCase{
			{
				ID:              101,
				VersionID:       1001,
				Name:            "Login works",
				ExecutionStatus: testlink.StatusPassed,
				CustomFields: []testlink.CustomField{
					{Name: "automated-tests", Value: "com.acme.FooTest"},
				},
			},
		},
	}
}

func prepareReportFiles(t *testing.T) []string {
	reportDir := filepath.Join(t.TempDir(), "reports")

	var reportPaths []string
	for _, name := range []string{"TEST-com.acme.FooTest.xml", "TEST-com.acme.BarTest.xml"} {
		pth := filepath.Join(reportDir, name)
		err := fileutil.NewFileManager().Write(pth, "<testsuite/>", 0777)
		require.NoError(t, err)

		reportPaths = append(reportPaths, pth)
	}

	return reportPaths
}

func decodePayload(t *testing.T, pth string) resultsPayload {
	bytes, err := os.ReadFile(pth)
	require.NoError(t, err)

	var payload resultsPayload
	require.NoError(t, json.Unmarshal(bytes, &payload))

	return payload
}

func isPathExists(path string) bool {
	isExist, _ := pathutil.NewPathChecker().IsPathExists(path)
	return isExist
}
