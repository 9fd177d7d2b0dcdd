package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"innsync/infras/otel"
	"innsync/infras/postgres"
	"innsync/internal/domains/roomtype/model"
	gDto "innsync/shared/dto"
	gRepo "innsync/shared/repository"
)

type RoomType interface {
	UpsertBulk(ctx context.Context, models []model.RoomType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) UpsertBulk(ctx context.Context, models []model.RoomType) error {
	return repo.Repository.UpsertBulk(ctx, models, model.UpdateColumns()) //nolint:wrapcheck
}
