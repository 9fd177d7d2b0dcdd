package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/infras/s3"
	"innsync/shared/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=./report.go -destination=../mocks/report_mock.go -package=mocks

// ReportRow is the denormalized projection of one successfully staged booking.
type ReportRow struct {
	BookingID    int64
	ExternalID   string
	CheckIn      string
	CheckOut     string
	Status       string
	RoomNumber   string
	RoomFloor    string
	RoomTypeName string
	RoomTypeDesc string
	Guests       string
}

// ReportWriter maintains the tabular snapshot of the bookings processed so far.
// Flush rewrites the artifact in full so it always reflects a consistent prefix of
// the run.
type ReportWriter interface {
	Append(row ReportRow)
	Flush(ctx context.Context) error
	Reset()
}

type csvReportWriter struct {
	cfg *config.Config
	s3  s3.S3

	mu   sync.Mutex
	rows []ReportRow
}

func NewReportWriter(cfg *config.Config, s3Client s3.S3) ReportWriter {
	return &csvReportWriter{
		cfg: cfg,
		s3:  s3Client,
	}
}

func (w *csvReportWriter) Append(row ReportRow) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.rows = append(w.rows, row)
}

func (w *csvReportWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.rows = nil
}

func (w *csvReportWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	rows := make([]ReportRow, len(w.rows))
	copy(rows, w.rows)
	w.mu.Unlock()

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	header := []string{"Booking ID", "External ID", "Check-in", "Check-out", "Status", "Room Number", "Room Floor", "RoomType Name", "RoomType Desc", "Guests"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.BookingID),
			row.ExternalID,
			row.CheckIn,
			row.CheckOut,
			row.Status,
			row.RoomNumber,
			row.RoomFloor,
			row.RoomTypeName,
			row.RoomTypeDesc,
			row.Guests,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report rows: %w", err)
	}

	path := w.cfg.Report.Path

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	if bucket := w.cfg.Report.S3Bucket; bucket != "" && w.s3 != nil {
		err := w.s3.UploadBytes(ctx, bucket, w.cfg.Report.S3Prefix, filepath.Base(path), constant.ContentTypeCSV, buffer.Bytes())
		if err != nil {
			// The local artifact is authoritative; a failed mirror is not fatal.
			log.Warn().Err(err).Str("bucket", bucket).Msg("failed to mirror report snapshot to S3")
		}
	}

	return nil
}
