package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"delivery-service/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками. Неположительный TTL означает однократный запуск при старте.
	TTL() time.Duration

	Do(context.Context) error

	// Info имя задачи для логов и метрик.
	Info() string
}

// Worker запускает задачи по расписанию до отмены контекста.
type Worker struct {
	log   handlerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New выполняет каждую задачу один раз синхронно и только после этого
// ставит их на расписание. Ошибка или паника первого запуска возвращается
// вызывающему, расписание при этом не стартует.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}

	if err := worker.warmUp(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		if task.TTL() <= 0 {
			log.Warn("task has no TTL, periodic execution disabled",
				logger.NewField("task", task.Info()),
			)
			continue
		}

		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.schedule(ctx, task)
		}()
	}

	return worker, nil
}

// Wait блокируется, пока не остановятся все запущенные циклы.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) warmUp(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("task %s init panic: %v", task.Info(), r)
					w.log.Error("Task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()

			w.log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return w.observe(groupCtx, task)
		})
	}
	return group.Wait()
}

func (w *Worker) schedule(ctx context.Context, task Task) {
	ticker := time.NewTicker(task.TTL())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runSafely(ctx, task)
		}
	}
}

func (w *Worker) runSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			TaskRunsTotal.WithLabelValues(task.Info(), resultPanic).Inc()
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := w.observe(ctx, task); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}

func (w *Worker) observe(ctx context.Context, task Task) error {
	start := time.Now()
	err := task.Do(ctx)

	result := resultSuccess
	if err != nil {
		result = resultError
	}
	TaskDuration.WithLabelValues(task.Info()).Observe(time.Since(start).Seconds())
	TaskRunsTotal.WithLabelValues(task.Info(), result).Inc()
	return err
}
