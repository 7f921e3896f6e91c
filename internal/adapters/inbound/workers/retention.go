package workers

import (
	"context"
	"log"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/usecases"
)

// TodoRetentionWorker is a runnable that periodically purges soft-deleted
// todos past the retention window.
type TodoRetentionWorker struct {
	PurgeTodosUseCase   usecases.PurgeTodos `resolve:""`
	Logger              *log.Logger         `resolve:""`
	Interval            time.Duration       `config:"TODO_PURGE_INTERVAL" default:"1h"`
	RetentionDays       int                 `config:"TODO_RETENTION_DAYS" default:"30"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic purge of expired soft-deleted todos.
func (op TodoRetentionWorker) Run(ctx context.Context) error {
	op.Logger.Println("TodoRetentionWorker: running...")
	ticker := time.NewTicker(op.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			purged, err := op.PurgeTodosUseCase.Execute(ctx, op.RetentionDays)
			if err != nil {
				op.Logger.Printf("error purging todos: %v", err)
			} else if purged > 0 {
				op.Logger.Printf("TodoRetentionWorker: purged %d todos", purged)
			}
			if op.workerExecutionChan != nil {
				op.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			op.Logger.Println("TodoRetentionWorker: stopping...")
			return nil
		}
	}
}
