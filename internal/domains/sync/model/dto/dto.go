package dto

import (
	"innsync/internal/domains/sync/model"
	"innsync/shared"
	"innsync/shared/constant"
	"innsync/shared/timezone"
)

// RunRequest triggers a sync run. Since bounds which upstream records count as
// changed; empty means the configured default window.
type RunRequest struct {
	Since string `json:"since" validate:"omitempty"`
}

type RunQueuedResponse struct {
	Message string `json:"message"`
	Since   string `json:"since,omitempty"`
}

// RunSummary reports run-level counters. Per-record outcomes live in the audit log.
type RunSummary struct {
	RunID      string `json:"run_id"`
	Since      string `json:"since"`
	Discovered int    `json:"discovered"`
	Synced     int    `json:"synced"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
}

type SyncLogResponse struct {
	ID           int64  `json:"id"`
	ResourceType string `json:"resource_type"`
	ResourceID   int64  `json:"resource_id"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	CreatedAt    string `json:"created_at"`
}

func (r *SyncLogResponse) FromModel(entry model.SyncLog) {
	r.ID = entry.ID
	r.ResourceType = entry.ResourceType
	r.ResourceID = entry.ResourceID
	r.Status = entry.Status
	r.Message = entry.Message
	r.CreatedAt = timezone.Format(entry.CreatedAt, constant.DateFormat)
}

type GetSyncLogsResponse struct {
	Logs       []SyncLogResponse `json:"logs"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
}

func (r *GetSyncLogsResponse) FromModels(models []model.SyncLog, total, limit int) {
	r.Logs = make([]SyncLogResponse, 0, len(models))

	for _, entry := range models {
		response := SyncLogResponse{}
		response.FromModel(entry)

		r.Logs = append(r.Logs, response)
	}

	r.Total = total
	r.TotalPages = shared.CalculateTotalPage(total, limit)
}
