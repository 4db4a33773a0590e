package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"delivery-service/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Pool выполняет короткие задачи на фиксированном числе горутин.
//
// Submit никогда не блокирует вызывающего: при заполненной очереди задача
// отклоняется. Close перестает принимать задачи и дожидается выполнения
// уже поставленных в очередь.
type Pool struct {
	log   handlerLogger
	ctx   context.Context
	tasks chan func(ctx context.Context)
	group errgroup.Group

	mu     sync.RWMutex
	closed bool
}

// NewPool запускает workers горутин. Задачи получают ctx, а не контекст того,
// кто их поставил, поэтому завершение запроса их не отменяет.
func NewPool(ctx context.Context, log handlerLogger, workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{
		log:   log,
		ctx:   ctx,
		tasks: make(chan func(ctx context.Context), queueSize),
	}

	for i := 0; i < workers; i++ {
		p.group.Go(func() error {
			for task := range p.tasks {
				p.executeTaskSafely(task)
			}
			return nil
		})
	}

	return p
}

// Submit ставит задачу в очередь и возвращает false, если очередь заполнена
// или пул закрыт.
func (p *Pool) Submit(task func(ctx context.Context)) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}

	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

func (p *Pool) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- p.group.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("pool close: %w", ctx.Err())
	}
}

func (p *Pool) executeTaskSafely(task func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("Pool task panic",
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	task(p.ctx)
}
