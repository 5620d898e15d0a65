package file

import (
	"bytes"
	"context"
	"fmt"

	"github.com/attendhq/attendance-backend-go/internal/pkg/storage"
)

// FileService wraps object storage with payslip-specific path conventions.
type FileService interface {
	// UploadPayslip stores a rendered payslip document and returns its URL.
	UploadPayslip(ctx context.Context, employeeID string, period string, doc []byte, contentType string) (string, error)
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &FileServiceImpl{storage: fileStorage}
}

// UploadPayslip implements FileService. Payslips live under a fixed
// payslips/{employee}/{period} layout so re-generation overwrites nothing
// and retrieval needs no lookup table.
func (s *FileServiceImpl) UploadPayslip(ctx context.Context, employeeID string, period string, doc []byte, contentType string) (string, error) {
	path := fmt.Sprintf("payslips/%s/%s.html", employeeID, period)

	stored, err := s.storage.Upload(ctx, bytes.NewReader(doc), path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload payslip: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored)
	if err != nil {
		return "", fmt.Errorf("failed to get payslip URL: %w", err)
	}

	return url, nil
}
