package notifications

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"gig_escrow/internal/domain/entities"
	"gig_escrow/internal/usecase/interfaces"
)

const publishTimeout = 5 * time.Second

// Publisher delivers one notification to its recipient's channel.
type Publisher interface {
	Publish(ctx context.Context, n entities.Notification) error
}

type Options struct {
	QueueSize    int
	Workers      int
	MaxRetries   int
	RetryBackoff time.Duration
}

// Stats counts what happened to every notification handed to Send.
type Stats struct {
	Delivered int64
	Failed    int64
	Dropped   int64
}

// Dispatcher is a bounded in-process queue drained by a fixed worker pool.
//
// Send never blocks: when the queue is full, or the dispatcher is stopped, the
// notification is dropped and logged. Failed publishes are retried with linear
// backoff up to MaxRetries, then dropped.
type Dispatcher struct {
	publisher Publisher
	opts      Options

	mu      sync.RWMutex
	queue   chan entities.Notification
	running bool
	wg      sync.WaitGroup

	delivered atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

var _ interfaces.INotifier = (*Dispatcher)(nil)

func NewDispatcher(publisher Publisher, opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Dispatcher{publisher: publisher, opts: opts}
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		log.Printf("[notify][dispatcher] already running")
		return
	}
	d.queue = make(chan entities.Notification, d.opts.QueueSize)
	d.running = true

	log.Printf("[notify][dispatcher] starting workers=%d queue_size=%d max_retries=%d", d.opts.Workers, d.opts.QueueSize, d.opts.MaxRetries)
	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(i, d.queue)
	}
}

// Stop closes the queue and waits for the workers to drain what is already queued.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	log.Printf("[notify][dispatcher] stopped delivered=%d failed=%d dropped=%d", d.delivered.Load(), d.failed.Load(), d.dropped.Load())
}

func (d *Dispatcher) Send(_ context.Context, n entities.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.running {
		d.dropped.Add(1)
		log.Printf("[notify][dispatcher] dropped (not running) to_user_id=%s hire_request_id=%s", n.ToUserID, n.HireRequestID)
		return
	}
	select {
	case d.queue <- n:
	default:
		d.dropped.Add(1)
		log.Printf("[notify][dispatcher] dropped (queue full) to_user_id=%s hire_request_id=%s", n.ToUserID, n.HireRequestID)
	}
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Delivered: d.delivered.Load(),
		Failed:    d.failed.Load(),
		Dropped:   d.dropped.Load(),
	}
}

func (d *Dispatcher) worker(id int, queue <-chan entities.Notification) {
	defer d.wg.Done()
	for n := range queue {
		d.deliver(id, n)
	}
}

func (d *Dispatcher) deliver(workerID int, n entities.Notification) {
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := d.publisher.Publish(ctx, n)
		cancel()
		if err == nil {
			d.delivered.Add(1)
			return
		}
		if attempt >= d.opts.MaxRetries {
			d.failed.Add(1)
			log.Printf("[notify][worker-%d] giving up to_user_id=%s hire_request_id=%s attempts=%d err=%v", workerID, n.ToUserID, n.HireRequestID, attempt+1, err)
			return
		}
		log.Printf("[notify][worker-%d] publish failed to_user_id=%s attempt=%d err=%v", workerID, n.ToUserID, attempt+1, err)
		time.Sleep(d.opts.RetryBackoff * time.Duration(attempt+1))
	}
}
