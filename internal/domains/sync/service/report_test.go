package service_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"innsync/config"
	s3Mocks "innsync/infras/s3/mocks"
	"innsync/internal/domains/sync/service"
)

func reportConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Report.Path = filepath.Join(t.TempDir(), "bookings.csv")

	return cfg
}

func readReport(t *testing.T, path string) [][]string {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	return records
}

func TestReportWriter_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("writes header and rows", func(t *testing.T) {
		cfg := reportConfig(t)
		writer := service.NewReportWriter(cfg, nil)

		writer.Append(service.ReportRow{
			BookingID:    1001,
			ExternalID:   "EXT-1001",
			CheckIn:      "2025-03-01",
			CheckOut:     "2025-03-05",
			Status:       "confirmed",
			RoomNumber:   "201A",
			RoomFloor:    "2",
			RoomTypeName: "Deluxe",
			RoomTypeDesc: "Sea view",
			Guests:       "John Doe; Jane Doe",
		})

		require.NoError(t, writer.Flush(ctx))

		records := readReport(t, cfg.Report.Path)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"Booking ID", "External ID", "Check-in", "Check-out", "Status", "Room Number", "Room Floor", "RoomType Name", "RoomType Desc", "Guests"}, records[0])
		assert.Equal(t, "1001", records[1][0])
		assert.Equal(t, "John Doe; Jane Doe", records[1][9])
	})

	t.Run("each flush rewrites the whole artifact", func(t *testing.T) {
		cfg := reportConfig(t)
		writer := service.NewReportWriter(cfg, nil)

		writer.Append(service.ReportRow{BookingID: 1})
		require.NoError(t, writer.Flush(ctx))

		writer.Append(service.ReportRow{BookingID: 2})
		require.NoError(t, writer.Flush(ctx))

		records := readReport(t, cfg.Report.Path)
		assert.Len(t, records, 3)
	})

	t.Run("reset drops accumulated rows", func(t *testing.T) {
		cfg := reportConfig(t)
		writer := service.NewReportWriter(cfg, nil)

		writer.Append(service.ReportRow{BookingID: 1})
		writer.Reset()
		require.NoError(t, writer.Flush(ctx))

		records := readReport(t, cfg.Report.Path)
		assert.Len(t, records, 1)
	})

	t.Run("mirrors snapshot to S3 when bucket configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := reportConfig(t)
		cfg.Report.S3Bucket = "reports-bucket"
		cfg.Report.S3Prefix = "reports"

		mockS3 := s3Mocks.NewMockS3(ctrl)
		mockS3.EXPECT().
			UploadBytes(gomock.Any(), "reports-bucket", "reports", "bookings.csv", "text/csv", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _, _ string, data []byte) error {
				assert.True(t, strings.HasPrefix(string(data), "Booking ID"))

				return nil
			})

		writer := service.NewReportWriter(cfg, mockS3)
		writer.Append(service.ReportRow{BookingID: 1})

		require.NoError(t, writer.Flush(ctx))
	})
}
