package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/devalpoteam/instascore-engine/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the configuration loader", t, func() {
		ctx := context.Background()

		// Convey re-runs this block for every leaf; clear overrides a
		// previous branch may have set.
		for _, key := range []string{
			"INSTASCORE_CONFIG",
			"INSTASCORE_ADDR",
			"INSTASCORE_LOG_LEVEL",
			"INSTASCORE_MAX_SUGGESTIONS",
			"INSTASCORE_SEARCH_THRESHOLD",
			"INSTASCORE_TEAM_CONTRIBUTING_COUNT",
		} {
			So(os.Unsetenv(key), ShouldBeNil)
		}

		Convey("When no file or environment overrides exist", func() {
			cfg, err := config.Load(ctx)

			Convey("Then defaults are returned", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.QueueSize, ShouldEqual, 10_000)
				So(cfg.DedupeSize, ShouldEqual, 50_000)
				So(cfg.SearchThreshold, ShouldAlmostEqual, 0.2)
				So(cfg.MaxSearchLimit, ShouldEqual, 100)
				So(cfg.MaxSuggestions, ShouldEqual, 5)
				So(cfg.TeamContributingCount, ShouldEqual, 3)
				So(cfg.StandingsRebuildDelayMS, ShouldEqual, 300)
				So(cfg.SeedDemoData, ShouldBeTrue)
				So(cfg.WorkerCount, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When environment variables override defaults", func() {
			t.Setenv("INSTASCORE_ADDR", ":7070")
			t.Setenv("INSTASCORE_LOG_LEVEL", "debug")
			t.Setenv("INSTASCORE_MAX_SUGGESTIONS", "8")

			cfg, err := config.Load(ctx)

			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.MaxSuggestions, ShouldEqual, 8)
		})

		Convey("When a YAML file is supplied", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			content := "addr: \":6060\"\nsearch_threshold: 0.3\nteam_contributing_count: 2\n"
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			t.Setenv("INSTASCORE_CONFIG", path)

			cfg, err := config.Load(ctx)

			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.SearchThreshold, ShouldAlmostEqual, 0.3)
			So(cfg.TeamContributingCount, ShouldEqual, 2)
		})

		Convey("When environment overrides the file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			So(os.WriteFile(path, []byte("addr: \":6060\"\n"), 0o600), ShouldBeNil)
			t.Setenv("INSTASCORE_CONFIG", path)
			t.Setenv("INSTASCORE_ADDR", ":5050")

			cfg, err := config.Load(ctx)

			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
		})

		Convey("When the config file does not exist", func() {
			t.Setenv("INSTASCORE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			So(err, ShouldNotBeNil)
		})

		Convey("When validation fails", func() {
			Convey("And the threshold is out of range", func() {
				t.Setenv("INSTASCORE_SEARCH_THRESHOLD", "1.5")

				_, err := config.Load(ctx)

				So(err, ShouldEqual, config.ErrInvalidThreshold)
			})

			Convey("And the contributing count is below one", func() {
				t.Setenv("INSTASCORE_TEAM_CONTRIBUTING_COUNT", "0")

				_, err := config.Load(ctx)

				So(err, ShouldEqual, config.ErrInvalidContributingCount)
			})
		})
	})
}
