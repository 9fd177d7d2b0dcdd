package sync

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innsync/config"
	"innsync/infras/kafka"
	"innsync/infras/otel"
	"innsync/internal/domains/sync/model"
	"innsync/internal/domains/sync/model/dto"
	"innsync/internal/domains/sync/service"
	"innsync/shared/constant"
	gDto "innsync/shared/dto"
	"innsync/shared/validator"
	"innsync/transport/http/response"
)

type Handler struct {
	cfg     *config.Config
	service service.Sync
	kafka   kafka.Client
	otel    otel.Otel
}

func New(cfg *config.Config, service service.Sync, kafkaClient kafka.Client, otel otel.Otel) Handler {
	return Handler{
		cfg:     cfg,
		service: service,
		kafka:   kafkaClient,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sync", func(routerGroup chi.Router) {
		routerGroup.Post("/run", handler.RunSync)
		routerGroup.Get("/logs", handler.GetSyncLogs)
	})
}

// RunSync dispatches a sync run. The response only acknowledges dispatch; record
// outcomes are observable through the sync logs and the report artifact.
func (handler *Handler) RunSync(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunSync")
	defer scope.End()

	req := dto.RunRequest{}

	if request.ContentLength > 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate sync request body")

			response.WithError(writer, err)

			return
		}
	}

	if handler.cfg.Kafka.Enable {
		message := kafka.Message{Key: "sync", Value: req}

		if err := handler.kafka.SendMessages(ctx, handler.cfg.Kafka.SyncTopic, message); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to queue sync run")

			response.WithError(writer, err)

			return
		}
	} else {
		go func() {
			c := context.WithoutCancel(ctx)

			if _, err := handler.service.Run(c, req.Since); err != nil {
				log.Error().Err(err).Msg("background sync run failed")
			}
		}()
	}

	scope.AddEvent("Booking sync queued")

	response.WithJSON(writer, http.StatusAccepted, dto.RunQueuedResponse{
		Message: "Booking sync has been queued",
		Since:   req.Since,
	})
}

// GetSyncLogs lists audit entries, filterable by resource type and status.
func (handler *Handler) GetSyncLogs(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSyncLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	if queryParams.SortBy == constant.DefaultValueSortBy {
		queryParams.SortBy = model.FieldCreatedAt
	}

	resourceType := request.URL.Query().Get(model.FieldResourceType)
	status := request.URL.Query().Get(model.FieldStatus)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if resourceType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldResourceType,
			Operator: gDto.FilterOperatorEq,
			Value:    resourceType,
			Table:    model.TableName,
		})
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.Logs(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sync logs")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
