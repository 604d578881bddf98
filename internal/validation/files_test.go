package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/screening-engine/internal/types"
)

func fileQuestion(cfg *types.FileConfig) types.Question {
	return types.Question{
		ID:     "q1",
		Type:   types.QuestionFileUpload,
		Config: types.QuestionConfig{Files: cfg},
	}
}

func pdfFile(name string, size int64) types.FileMetadata {
	return types.FileMetadata{
		URL:      "https://cdn.example.com/" + name,
		Filename: name,
		Size:     size,
		Type:     "application/pdf",
	}
}

func TestValidateFileUpload_Accepted(t *testing.T) {
	q := fileQuestion(&types.FileConfig{
		MaxSize:      ptr(int64(5 * bytesPerMB)),
		AllowedTypes: []string{"pdf", "docx"},
		MaxFiles:     ptr(2),
	})
	ans := types.FilesAnswer{Files: []types.FileMetadata{pdfFile("cv.pdf", 1024)}}
	assert.Nil(t, ValidateAnswer(&q, ans))
}

func TestValidateFileUpload_MissingURLOrFilename(t *testing.T) {
	q := fileQuestion(nil)

	verr := ValidateAnswer(&q, types.FilesAnswer{Files: []types.FileMetadata{{Filename: "cv.pdf"}}})

	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "upload URL and filename")
}

func TestValidateFileUpload_OverSizeLimitReportsMB(t *testing.T) {
	q := fileQuestion(&types.FileConfig{MaxSize: ptr(int64(5 * bytesPerMB))})
	ans := types.FilesAnswer{Files: []types.FileMetadata{pdfFile("cv.pdf", 6*bytesPerMB)}}

	verr := ValidateAnswer(&q, ans)

	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "5 MB")
	assert.Contains(t, verr.Message, "cv.pdf")
}

func TestValidateFileUpload_DisallowedExtension(t *testing.T) {
	q := fileQuestion(&types.FileConfig{AllowedTypes: []string{"pdf"}})
	ans := types.FilesAnswer{Files: []types.FileMetadata{pdfFile("cv.exe", 10)}}

	verr := ValidateAnswer(&q, ans)

	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "exe")
}

func TestValidateFileUpload_ExtensionCheckIgnoresCaseAndDots(t *testing.T) {
	q := fileQuestion(&types.FileConfig{AllowedTypes: []string{".PDF"}})
	ans := types.FilesAnswer{Files: []types.FileMetadata{pdfFile("CV.Pdf", 10)}}
	assert.Nil(t, ValidateAnswer(&q, ans))
}

func TestValidateFileUpload_TooManyFiles(t *testing.T) {
	q := fileQuestion(&types.FileConfig{MaxFiles: ptr(1)})
	ans := types.FilesAnswer{Files: []types.FileMetadata{pdfFile("a.pdf", 1), pdfFile("b.pdf", 1)}}

	verr := ValidateAnswer(&q, ans)

	require.NotNil(t, verr)
	assert.Contains(t, verr.Message, "At most 1 files")
}
