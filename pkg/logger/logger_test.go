package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/devalpoteam/instascore-engine/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given the logging facade", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When getting the global logger", func() {
			l := logger.Get()

			So(l, ShouldNotBeNil)
		})

		Convey("When logging at every level", func() {
			l := logger.Get()
			ctx := context.Background()

			So(func() {
				l.Debug(ctx, "debug message", logger.String("k", "v"))
				l.Info(ctx, "info message", logger.Int("n", 1))
				l.Warn(ctx, "warn message", logger.Bool("flag", true))
				l.Error(ctx, "error message", logger.Error(errors.New("boom")))
			}, ShouldNotPanic)
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("worker")

			So(named, ShouldNotBeNil)
			So(func() { named.Info(context.Background(), "named message") }, ShouldNotPanic)
		})

		Convey("When setting the level from a string", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("info"), ShouldBeNil)
			So(logger.SetLevelString("warn"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString("error"), ShouldBeNil)
			So(logger.SetLevelString("ERROR"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)

			So(logger.SetLevelString("verbose"), ShouldNotBeNil)

			logger.SetLevel(slog.LevelInfo)
		})

		Convey("When constructing fields", func() {
			So(logger.String("k", "v").Key, ShouldEqual, "k")
			So(logger.Int("n", 3).Value, ShouldEqual, 3)
			So(logger.Float64("f", 1.5).Value, ShouldEqual, 1.5)
			So(logger.Any("a", []int{1}).Key, ShouldEqual, "a")
			So(logger.Error(errors.New("boom")).Key, ShouldEqual, "error")
		})
	})
}
