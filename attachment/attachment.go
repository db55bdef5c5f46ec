package attachment

import (
	"encoding/base64"
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-steplib/steps-testlink-result-export/testlink"
)

// Builder turns a report file into a TestLink execution attachment.
type Builder interface {
	Build(versionID int, reportPth string) (testlink.Attachment, error)
}

type builder struct{}

// NewBuilder ...
func NewBuilder() Builder {
	return builder{}
}

// Build reads the report file and wraps it as a base64 encoded attachment.
// versionID identifies the test-case version the execution belongs to;
// TestLink takes it alongside the upload, the attachment itself does not
// carry it.
func (builder) Build(versionID int, reportPth string) (testlink.Attachment, error) {
	data, err := fileutil.ReadBytesFromFile(reportPth)
	if err != nil {
		return testlink.Attachment{}, fmt.Errorf("read report file: %w", err)
	}

	name := filepath.Base(reportPth)

	return testlink.Attachment{
		FileName:    name,
		Title:       name,
		Description: "JUnit report file " + name,
		FileType:    "text/xml",
		FileSize:    int64(len(data)),
		Content:     base64.StdEncoding.EncodeToString(data),
	}, nil
}
