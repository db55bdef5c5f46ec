package testaddon

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GivenNormalBundleName_WhenExport_ThenCreatesOutputStructure(t *testing.T) {
	runTest(t, "Bitrise", "Bitrise")
}

func Test_GivenBundleNameWithSpecialCharacters_WhenExport_ThenReplacesSpecialCharacters(t *testing.T) {
	runTest(t, "W/eir/d:Na::me/", "W-eir-d-Na--me-")
}

func runTest(t *testing.T, bundleName string, expectedBundleName string) {
	// Given
	reportPaths, outputDir := prepareArtifacts(t)

	exporter := NewExporter(NewTestAddon(log.NewLogger()))

	// When
	err := exporter.CopyAndSaveMetadata(AddonCopy{
		SourceReportPaths:     reportPaths,
		TargetAddonPath:       outputDir,
		TargetAddonBundleName: bundleName,
	})

	// Then
	assert.NoError(t, err)
	assert.True(t, isOutputStructureCorrectWithExpectedBundleName(outputDir, expectedBundleName))
}

func prepareArtifacts(t *testing.T) ([]string, string) {
	tempDir := t.TempDir()

	reportDir := filepath.Join(tempDir, "reports")

	var reportPaths []string
	for _, name := range []string{"TEST-com.acme.FooTest.xml", "TEST-com.acme.BarTest.xml"} {
		reportFile := filepath.Join(reportDir, name)
		err := fileutil.NewFileManager().Write(reportFile, "<testsuite/>", 0777)
		require.NoError(t, err)
		require.FileExists(t, reportFile)

		reportPaths = append(reportPaths, reportFile)
	}

	outputDir := filepath.Join(tempDir, "output")

	return reportPaths, outputDir
}

func isOutputStructureCorrectWithExpectedBundleName(outputDir string, bundleName string) bool {
	jsonPath := filepath.Join(outputDir, bundleName, "test-info.json")
	expectedPaths := []string{
		filepath.Join(outputDir, bundleName),
		filepath.Join(outputDir, bundleName, "TEST-com.acme.FooTest.xml"),
		filepath.Join(outputDir, bundleName, "TEST-com.acme.BarTest.xml"),
		jsonPath,
	}

	for _, path := range expectedPaths {
		if isPathExists(path) == false {
			return false
		}
	}

	return exportedBundleNameFromFile(jsonPath) == bundleName
}

func exportedBundleNameFromFile(path string) string {
	type testBundle struct {
		BundleName string `json:"test-name"`
	}

	jsonFile, _ := os.Open(path)

	defer jsonFile.Close()

	bytes, _ := io.ReadAll(jsonFile)

	var bundle testBundle
	_ = json.Unmarshal(bytes, &bundle)

	return bundle.BundleName
}

func isPathExists(path string) bool {
	isExist, _ := pathutil.NewPathChecker().IsPathExists(path)
	return isExist
}
