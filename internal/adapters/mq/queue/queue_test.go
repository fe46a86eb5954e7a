package queue_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/devalpoteam/instascore-engine/internal/adapters/mq/queue"
	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

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

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a new InMemoryQueue", t, func() {
		Convey("When creating a queue with default options", func() {
			q := queue.NewInMemoryQueue()

			So(q, ShouldNotBeNil)
			So(q.Len(context.Background()), ShouldEqual, 0)
			So(q.IsClosed(), ShouldBeFalse)
		})

		Convey("When enqueuing submissions", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(10))

			Convey("And the queue has capacity", func() {
				ok := q.Enqueue(context.Background(), submission("sub-1"))

				So(ok, ShouldBeTrue)
				So(q.Len(context.Background()), ShouldEqual, 1)
			})

			Convey("And the queue is full", func() {
				for i := 0; i < 10; i++ {
					So(q.Enqueue(context.Background(), submission(fmt.Sprintf("sub-%d", i))), ShouldBeTrue)
				}

				ok := q.Enqueue(context.Background(), submission("overflow"))

				Convey("Then the enqueue fails without blocking", func() {
					So(ok, ShouldBeFalse)
					So(q.Len(context.Background()), ShouldEqual, 10)
				})
			})

			Convey("And the queue is closed", func() {
				So(q.Close(), ShouldBeNil)

				ok := q.Enqueue(context.Background(), submission("sub-1"))

				So(ok, ShouldBeFalse)
				So(q.IsClosed(), ShouldBeTrue)
			})
		})

		Convey("When dequeuing submissions", func() {
			q := queue.NewInMemoryQueue(queue.WithCapacity(10))

			Convey("And submissions are queued", func() {
				ids := []string{"sub-1", "sub-2", "sub-3"}
				for _, id := range ids {
					So(q.Enqueue(context.Background(), submission(id)), ShouldBeTrue)
				}

				out := q.Dequeue(context.Background())

				Convey("Then they arrive in FIFO order", func() {
					for _, id := range ids {
						select {
						case s := <-out:
							So(s.SubmissionID, ShouldEqual, id)
						case <-time.After(time.Second):
							So("timed out waiting for submission", ShouldBeEmpty)
						}
					}
				})
			})

			Convey("And the queue is closed after draining", func() {
				So(q.Enqueue(context.Background(), submission("sub-1")), ShouldBeTrue)
				out := q.Dequeue(context.Background())

				<-out
				So(q.Close(), ShouldBeNil)

				Convey("Then the dequeue channel closes", func() {
					select {
					case _, open := <-out:
						So(open, ShouldBeFalse)
					case <-time.After(time.Second):
						So("timed out waiting for channel close", ShouldBeEmpty)
					}
				})
			})

			Convey("And the consumer context is cancelled", func() {
				ctx, cancel := context.WithCancel(context.Background())
				out := q.Dequeue(ctx)
				cancel()

				So(q.Enqueue(context.Background(), submission("sub-1")), ShouldBeTrue)

				// give the pump goroutine time to observe the cancellation
				time.Sleep(50 * time.Millisecond)

				Convey("Then the dequeue channel closes without delivering", func() {
					select {
					case _, open := <-out:
						So(open, ShouldBeFalse)
					case <-time.After(time.Second):
						So("timed out waiting for channel close", ShouldBeEmpty)
					}
				})
			})
		})

		Convey("When closing twice", func() {
			q := queue.NewInMemoryQueue()

			So(q.Close(), ShouldBeNil)
			So(q.Close(), ShouldBeNil)
			So(q.IsClosed(), ShouldBeTrue)
		})
	})
}
