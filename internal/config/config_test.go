package config_test

import (
	"testing"

	"github.com/okian/reel/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Subject, convey.ShouldEqual, "Nicolas Cage")
			convey.So(cfg.DatasetPath, convey.ShouldEqual, "imdb-movies-dataset.csv")
			convey.So(cfg.TopN, convey.ShouldEqual, 5)
			convey.So(cfg.DurationMaxBins, convey.ShouldEqual, 30)
			convey.So(cfg.Motifs, convey.ShouldResemble, []string{
				"Action", "Adventure", "Comedy", "Drama",
				"Thriller", "Crime", "Fantasy", "Family",
			})
		})
	})
}
