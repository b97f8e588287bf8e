// Package skillsheet extracts skill tokens from Excel workbooks and
// generates a two-column review workbook for the client to fill in.
package skillsheet

import (
	"path/filepath"
	"strings"

	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/review"
)

// Default display names used in the share message.
const (
	DefaultClient = "Client"
	DefaultSender = "Your Name"
)

// Options configures one processing run.
type Options struct {
	// Sheet names the worksheet to process. Empty means every sheet is
	// scanned for skills and the first sheet provides the known column.
	Sheet string
	// Output is the destination path of the review workbook. Empty means
	// the input filename with a "_review.xlsx" suffix, beside the input.
	Output string
	// Client is the client display name for the share message.
	Client string
	// Sender is the sender display name for the share message.
	Sender string
	// Style controls the review workbook presentation.
	Style review.Style
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		Client: DefaultClient,
		Sender: DefaultSender,
		Style:  review.DefaultStyle(),
	}
}

// OutputPath resolves the destination for the review workbook generated
// from inputPath.
func (o Options) OutputPath(inputPath string) string {
	if o.Output != "" {
		return o.Output
	}
	return ReviewName(inputPath)
}

// ReviewName derives the default review workbook path for an input
// path: the same directory and base name with a "_review.xlsx" suffix.
func ReviewName(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+"_review.xlsx")
}
