package sync

import (
	"context"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"innsync/config"
	"innsync/infras/kafka"
	"innsync/infras/otel"
	"innsync/internal/domains/sync/model/dto"
	"innsync/internal/domains/sync/service"
	"innsync/shared/constant"
)

// Worker consumes queued sync requests and runs the engine. Per-record outcomes
// stay in the audit log; the queue only learns whether the run was dispatched.
type Worker struct {
	cfg     *config.Config
	kafka   kafka.Client
	service service.Sync
	otel    otel.Otel
}

func New(cfg *config.Config, kafkaClient kafka.Client, service service.Sync, otel otel.Otel) *Worker {
	return &Worker{
		cfg:     cfg,
		kafka:   kafkaClient,
		service: service,
		otel:    otel,
	}
}

func (w *Worker) Start(ctx context.Context) {
	if !w.cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, sync worker not started")

		return
	}

	log.Info().Str("topic", w.cfg.Kafka.SyncTopic).Msg("Starting sync worker")

	go w.kafka.Consume(ctx, w.cfg.Kafka.ConsumerGroup, w.cfg.Kafka.SyncTopic, w.handle)
}

func (w *Worker) handle(message kafkaGo.Message) {
	ctx, scope := w.otel.NewScope(context.Background(), constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".sync.handle")
	defer scope.End()

	decoded, err := kafka.DecodeKafkaMessage[dto.RunRequest](message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode sync request message")

		return
	}

	req, ok := decoded.Value.(dto.RunRequest)
	if !ok {
		log.Error().Msg("unexpected sync request payload")

		return
	}

	summary, err := w.service.Run(ctx, req.Since)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("since", req.Since).Msg("sync run failed")

		return
	}

	log.Info().
		Str("run_id", summary.RunID).
		Int("discovered", summary.Discovered).
		Int("synced", summary.Synced).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Background sync finished")
}
