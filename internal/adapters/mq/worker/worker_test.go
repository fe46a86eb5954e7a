package worker_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/devalpoteam/instascore-engine/internal/adapters/mq/queue"
	"github.com/devalpoteam/instascore-engine/internal/adapters/mq/worker"
	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

var errRejected = errors.New("row rejected")

// acceptAll passes every row through validation.
type acceptAll struct{}

func (acceptAll) Validate(ctx context.Context, row model.ScoreRow) error { return nil }

// rejectAll fails every row.
type rejectAll struct{}

func (rejectAll) Validate(ctx context.Context, row model.ScoreRow) error { return errRejected }

// recordingApplier collects applied rows.
type recordingApplier struct {
	mu   sync.Mutex
	rows []model.ScoreRow
	err  error
}

func (a *recordingApplier) ApplyRow(ctx context.Context, row model.ScoreRow) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return false, a.err
	}
	a.rows = append(a.rows, row)
	return true, nil
}

func (a *recordingApplier) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.rows)
}

func submission(id string) model.Submission {
	return model.Submission{
		SubmissionID: id,
		Row: model.ScoreRow{
			AthleteName: "Ana Perez",
			TeamName:    "Club Andino",
			Subdivision: "Juvenil Nivel 3",
			Apparatus:   "Viga",
			Value:       8.6,
		},
	}
}

func waitFor(cond func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestWorker(t *testing.T) {
	Convey("Given a worker on a submission queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(100))
		applier := &recordingApplier{}

		Convey("When processing valid submissions", func() {
			w := worker.NewWorker(q, acceptAll{}, applier)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go w.Run(ctx)

			So(q.Enqueue(ctx, submission("sub-1")), ShouldBeTrue)
			So(q.Enqueue(ctx, submission("sub-2")), ShouldBeTrue)

			Convey("Then all rows reach the applier", func() {
				So(waitFor(func() bool { return applier.count() == 2 }, time.Second), ShouldBeTrue)
			})
		})

		Convey("When validation rejects a submission", func() {
			w := worker.NewWorker(q, rejectAll{}, applier)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go w.Run(ctx)

			So(q.Enqueue(ctx, submission("sub-1")), ShouldBeTrue)

			Convey("Then the row never reaches the applier", func() {
				So(waitFor(func() bool { return q.Len(ctx) == 0 }, time.Second), ShouldBeTrue)
				time.Sleep(20 * time.Millisecond)
				So(applier.count(), ShouldEqual, 0)
			})
		})

		Convey("When the applier fails", func() {
			applier.err = errors.New("store unavailable")
			w := worker.NewWorker(q, acceptAll{}, applier)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go w.Run(ctx)

			So(q.Enqueue(ctx, submission("sub-1")), ShouldBeTrue)

			Convey("Then the worker keeps running", func() {
				So(waitFor(func() bool { return q.Len(ctx) == 0 }, time.Second), ShouldBeTrue)
				So(q.Enqueue(ctx, submission("sub-2")), ShouldBeTrue)
				So(waitFor(func() bool { return q.Len(ctx) == 0 }, time.Second), ShouldBeTrue)
			})
		})

		Convey("When shutting down a worker", func() {
			w := worker.NewWorker(q, acceptAll{}, applier)
			ctx := context.Background()
			go w.Run(ctx)

			shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()

			So(w.Shutdown(shutdownCtx), ShouldBeNil)
		})
	})
}

func TestPool(t *testing.T) {
	Convey("Given a worker pool", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(1000))
		applier := &recordingApplier{}

		Convey("When starting the pool and enqueuing many submissions", func() {
			p := worker.NewPool(4, q, acceptAll{}, applier)
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			p.Start(ctx)

			const numSubmissions = 200
			for i := 0; i < numSubmissions; i++ {
				So(q.Enqueue(ctx, submission(fmt.Sprintf("sub-%d", i))), ShouldBeTrue)
			}

			Convey("Then every submission is processed exactly once", func() {
				So(waitFor(func() bool { return applier.count() == numSubmissions }, 5*time.Second), ShouldBeTrue)
			})

			Convey("And stopping the pool returns promptly", func() {
				So(waitFor(func() bool { return applier.count() == numSubmissions }, 5*time.Second), ShouldBeTrue)
				p.Stop()
			})
		})

		Convey("When created with a non-positive worker count", func() {
			p := worker.NewPool(0, q, acceptAll{}, applier)

			So(p, ShouldNotBeNil)
		})
	})
}
