package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/devalpoteam/instascore-engine/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInMemoryDeduper(t *testing.T) {
	Convey("Given a new InMemoryDeduper", t, func() {
		Convey("When creating a deduper with default options", func() {
			d := dedupe.NewInMemoryDeduper()

			So(d, ShouldNotBeNil)
			So(d.Size(), ShouldEqual, 0)
		})

		Convey("When recording submissions", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the submission is new", func() {
				seen := d.SeenAndRecord(context.Background(), "sub-1")

				So(seen, ShouldBeFalse)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And the submission was already seen", func() {
				d.SeenAndRecord(context.Background(), "sub-1")

				seen := d.SeenAndRecord(context.Background(), "sub-1")

				So(seen, ShouldBeTrue)
				So(d.Size(), ShouldEqual, 1)
			})

			Convey("And multiple submissions are recorded", func() {
				ids := []string{"sub-1", "sub-2", "sub-3", "sub-4"}
				for _, id := range ids {
					So(d.SeenAndRecord(context.Background(), id), ShouldBeFalse)
				}

				So(d.Size(), ShouldEqual, int64(len(ids)))
				for _, id := range ids {
					So(d.SeenAndRecord(context.Background(), id), ShouldBeTrue)
				}
			})
		})

		Convey("When unrecording submissions", func() {
			d := dedupe.NewInMemoryDeduper()

			Convey("And the submission exists", func() {
				d.SeenAndRecord(context.Background(), "sub-1")
				d.Unrecord(context.Background(), "sub-1")

				So(d.Size(), ShouldEqual, 0)
				So(d.SeenAndRecord(context.Background(), "sub-1"), ShouldBeFalse)
			})

			Convey("And the submission doesn't exist", func() {
				d.Unrecord(context.Background(), "nonexistent")

				So(d.Size(), ShouldEqual, 0)
			})
		})

		Convey("When the deduper is bounded and at capacity", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(3))

			for _, id := range []string{"sub-1", "sub-2", "sub-3"} {
				So(d.SeenAndRecord(context.Background(), id), ShouldBeFalse)
			}
			So(d.Size(), ShouldEqual, 3)

			Convey("And a new submission arrives", func() {
				seen := d.SeenAndRecord(context.Background(), "sub-4")

				Convey("Then the oldest entry is evicted", func() {
					So(seen, ShouldBeFalse)
					So(d.Size(), ShouldEqual, 3)

					// sub-1 was evicted so it records fresh
					So(d.SeenAndRecord(context.Background(), "sub-1"), ShouldBeFalse)
					So(d.Size(), ShouldEqual, 3)
				})
			})

			Convey("And an unrecorded ID left a stale eviction slot", func() {
				d.Unrecord(context.Background(), "sub-2")
				So(d.Size(), ShouldEqual, 2)

				So(d.SeenAndRecord(context.Background(), "sub-4"), ShouldBeFalse) // refills, no eviction
				So(d.SeenAndRecord(context.Background(), "sub-5"), ShouldBeFalse) // evicts sub-1
				So(d.SeenAndRecord(context.Background(), "sub-6"), ShouldBeFalse) // skips stale sub-2, evicts sub-3

				Convey("Then eviction skips the stale slot and stays bounded", func() {
					So(d.Size(), ShouldEqual, 3)
					So(d.SeenAndRecord(context.Background(), "sub-4"), ShouldBeTrue)
					So(d.SeenAndRecord(context.Background(), "sub-5"), ShouldBeTrue)
					So(d.Size(), ShouldEqual, 3)
				})
			})
		})

		Convey("When the deduper is unbounded", func() {
			d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(0))

			const numIDs = 1000
			for i := 0; i < numIDs; i++ {
				So(d.SeenAndRecord(context.Background(), fmt.Sprintf("sub-%d", i)), ShouldBeFalse)
			}

			So(d.Size(), ShouldEqual, int64(numIDs))
		})
	})
}

func TestDedupeConcurrency(t *testing.T) {
	Convey("Given a deduper with concurrent access", t, func() {
		d := dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(10_000))
		const numGoroutines = 10
		const idsPerGoroutine = 100

		Convey("When multiple goroutines record submissions concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					for j := 0; j < idsPerGoroutine; j++ {
						d.SeenAndRecord(context.Background(), fmt.Sprintf("sub-%d-%d", id, j))
					}
				}(i)
			}
			wg.Wait()

			Convey("Then all submissions are recorded exactly once", func() {
				So(d.Size(), ShouldEqual, int64(numGoroutines*idsPerGoroutine))
			})
		})
	})
}
