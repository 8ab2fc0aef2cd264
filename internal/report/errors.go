package report

import "errors"

var (
	// ErrFontLoad indicates the configured font files could not be used.
	ErrFontLoad = errors.New("report: font load failed")

	// ErrWrite indicates the document could not be rendered or written.
	ErrWrite = errors.New("report: write failed")
)

// Status is the short message shown after an export attempt.
func Status(err error) string {
	if err == nil {
		return "saved"
	}
	return "failed: " + err.Error()
}
