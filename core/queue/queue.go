package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"meetup-planner/core/config"
	"meetup-planner/core/constants"
	"meetup-planner/core/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer is the producer side used by services.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload any) error
}

type Client struct {
	client   *asynq.Client
	maxRetry int
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.QueueDB,
	}
}

func NewClient(rcfg config.RedisConfig, qcfg config.QueueConfig) *Client {
	return &Client{
		client:   asynq.NewClient(redisOpt(rcfg)),
		maxRetry: qcfg.MaxRetry,
	}
}

func (c *Client) Enqueue(ctx context.Context, taskType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	info, err := c.client.EnqueueContext(ctx, asynq.NewTask(taskType, raw),
		asynq.MaxRetry(c.maxRetry),
		asynq.Queue(constants.QueueDefault),
	)
	if err != nil {
		logger.Error("Queue:Enqueue", "error", err, "type", taskType)
		return err
	}

	logger.Debug("Queue:Enqueue:Queued", "type", taskType, "id", info.ID)
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Worker runs registered handlers in the background.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewWorker(rcfg config.RedisConfig, qcfg config.QueueConfig) *Worker {
	concurrency := qcfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := asynq.NewServer(redisOpt(rcfg), asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			constants.QueueDefault: 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Queue:Worker:TaskFailed", "type", task.Type(), "error", err)
		}),
	})

	return &Worker{srv: srv, mux: asynq.NewServeMux()}
}

func (w *Worker) Handle(taskType string, h func(ctx context.Context, payload []byte) error) {
	w.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		return h(ctx, t.Payload())
	})
}

// Start does not block.
func (w *Worker) Start() error {
	logger.Info("Queue:Worker:Starting")
	return w.srv.Start(w.mux)
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
