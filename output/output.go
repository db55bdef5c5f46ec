package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testlink-result-export/testaddon"
	"github.com/bitrise-steplib/steps-testlink-result-export/testlink"
)

const (
	exportResultEnvKey   = "BITRISE_TESTLINK_EXPORT_RESULT"
	resultsPathEnvKey    = "BITRISE_TESTLINK_RESULTS_PATH"
	resultCountEnvKey    = "BITRISE_TESTLINK_RESULT_COUNT"
	reportsZipPathEnvKey = "BITRISE_TESTLINK_REPORTS_ZIP_PATH"

	resultsFileName    = "testlink_results.json"
	reportsZipFileName = "junit_reports.zip"
)

// Exporter ...
type Exporter interface {
	ExportSeekRunResult(failed bool)
	ExportTestResultsPayload(deployDir string, report *testlink.Report, results []testlink.TestResult) (string, error)
	ExportReportArchive(deployDir string, reportPaths []string) error
	ExportReportsForTestAddon(reportPaths []string, buildName string) error
}

type exporter struct {
	envRepository     env.Repository
	logger            log.Logger
	outputExporter    export.Exporter
	testAddonExporter testaddon.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter export.Exporter, testAddonExporter testaddon.Exporter) Exporter {
	return &exporter{
		envRepository:     envRepository,
		logger:            logger,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func (e exporter) ExportSeekRunResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(exportResultEnvKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", exportResultEnvKey, err)
	}
}

type resultsPayload struct {
	TestPlan testlink.TestPlan     `json:"testPlan"`
	Build    testlink.Build        `json:"build"`
	Results  []testlink.TestResult `json:"results"`
}

func (e exporter) ExportTestResultsPayload(deployDir string, report *testlink.Report, results []testlink.TestResult) (string, error) {
	payload := resultsPayload{
		TestPlan: report.TestPlan,
		Build:    report.Build,
		Results:  results,
	}
	if payload.Results == nil {
		payload.Results = []testlink.TestResult{}
	}

	bytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode test results: %w", err)
	}

	pth := filepath.Join(deployDir, resultsFileName)
	if err := fileutil.WriteBytesToFile(pth, bytes); err != nil {
		return "", fmt.Errorf("failed to write test results to (%s): %w", pth, err)
	}

	if err := e.outputExporter.ExportOutputFile(resultsPathEnvKey, pth, pth); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", resultsPathEnvKey, err)
	}
	if err := e.envRepository.Set(resultCountEnvKey, strconv.Itoa(len(results))); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", resultCountEnvKey, err)
	}

	return pth, nil
}

func (e exporter) ExportReportArchive(deployDir string, reportPaths []string) error {
	if len(reportPaths) == 0 {
		e.logger.Printf("No JUnit report files matched, skipping the report archive.")
		return nil
	}

	zipPath := filepath.Join(deployDir, reportsZipFileName)
	if err := e.outputExporter.ExportOutputFilesZip(reportsZipPathEnvKey, reportPaths, zipPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", reportsZipPathEnvKey, err)
	}

	return nil
}

func (e exporter) ExportReportsForTestAddon(reportPaths []string, buildName string) error {
	addonResultPath := e.envRepository.Get(configs.BitrisePerStepTestResultDirEnvKey)
	if len(addonResultPath) == 0 {
		e.logger.Debugf("The test addon is not activated, skipping the report export.")
		return nil
	}
	if len(reportPaths) == 0 {
		return nil
	}

	e.logger.Println()
	e.logger.Infof("Exporting JUnit report files for the test addon")

	if err := e.testAddonExporter.CopyAndSaveMetadata(testaddon.AddonCopy{
		SourceReportPaths:     reportPaths,
		TargetAddonPath:       addonResultPath,
		TargetAddonBundleName: buildName,
	}); err != nil {
		return fmt.Errorf("failed to export JUnit report files for the test addon: %w", err)
	}

	return nil
}
