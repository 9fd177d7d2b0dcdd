package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"innsync/infras/otel"
	"innsync/infras/postgres"
	"innsync/internal/domains/guest/model"
	gDto "innsync/shared/dto"
	gRepo "innsync/shared/repository"
)

type Guest interface {
	UpsertBulk(ctx context.Context, models []model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) UpsertBulk(ctx context.Context, models []model.Guest) error {
	return repo.Repository.UpsertBulk(ctx, models, model.UpdateColumns()) //nolint:wrapcheck
}
