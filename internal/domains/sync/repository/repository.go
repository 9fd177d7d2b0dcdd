package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innsync/infras/otel"
	"innsync/infras/postgres"
	"innsync/internal/domains/sync/model"
	"innsync/shared/constant"
	gDto "innsync/shared/dto"
	gRepo "innsync/shared/repository"
	"innsync/shared/timezone"
)

// SyncLog persists the append-only audit trail. Append is best-effort: a failed
// audit write must never fail the sync run it describes.
type SyncLog interface {
	Append(ctx context.Context, resourceType string, resourceID int64, status, message string)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SyncLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.SyncLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) SyncLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SyncLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Append(ctx context.Context, resourceType string, resourceID int64, status, message string) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sync_log.Append")
	defer scope.End()

	entry := model.SyncLog{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Status:       status,
		Message:      message,
		CreatedAt:    timezone.Now(),
	}

	// id is serial; insert the audited columns only.
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s, %s) VALUES (:resource_type, :resource_id, :status, :message, :created_at)",
		model.TableName, model.FieldResourceType, model.FieldResourceID, model.FieldStatus, model.FieldMessage, model.FieldCreatedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, entry); err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("resource_type", resourceType).
			Int64("resource_id", resourceID).
			Str("status", status).
			Msg("failed to write sync log entry")
	}
}
