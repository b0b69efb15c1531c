package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	service "github.com/okian/reel/internal/app"
	"github.com/okian/reel/internal/datagen"
	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// writeDataset generates a synthetic CSV and returns its path.
func writeDataset(t *testing.T, subject string, count int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	g := datagen.New(
		datagen.WithSeed(42),
		datagen.WithCount(count),
		datagen.WithSubject(subject),
	)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close() //nolint:errcheck // test fixture
	if err := datagen.WriteCSV(f, g.Rows()); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithSubject("Someone Else"),
			service.WithTopN(3),
			service.WithMaxBins(10),
			service.WithExcludedTitles([]string{"Skip"}),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_Start(t *testing.T) {
	Convey("Given a service pointed at a valid dataset", t, func() {
		path := writeDataset(t, "Nicolas Cage", 40)
		svc := service.New(service.WithDatasetPath(path))
		defer svc.Stop()

		Convey("When starting", func() {
			err := svc.Start(context.Background())

			Convey("Then it starts and reports film counts", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["films"], ShouldBeGreaterThan, 0)
			})
		})
	})

	Convey("Given a service pointed at a missing dataset", t, func() {
		svc := service.New(service.WithDatasetPath("/no/such/file.csv"))

		Convey("Then starting fails before anything serves", func() {
			So(svc.Start(context.Background()), ShouldNotBeNil)
		})
	})
}

func TestService_Report(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		path := writeDataset(t, "Nicolas Cage", 50)
		svc := service.New(service.WithDatasetPath(path))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		bounds, err := svc.Bounds(ctx)
		So(err, ShouldBeNil)

		Convey("When computing over the full extent", func() {
			sel := model.Selection{YearMin: bounds.YearMin, YearMax: bounds.YearMax, Motif: model.MotifAll}
			rep, err := svc.Report(ctx, sel)

			Convey("Then the report covers every film", func() {
				So(err, ShouldBeNil)
				stats := svc.GetStats()
				So(rep.Total, ShouldEqual, stats["films"])
			})

			Convey("Then top-N tables respect the default cap", func() {
				So(len(rep.Genres), ShouldBeLessThanOrEqualTo, 5)
				So(len(rep.TopRated), ShouldBeLessThanOrEqualTo, 5)
				So(len(rep.Directors), ShouldBeLessThanOrEqualTo, 5)
				So(len(rep.CoStars), ShouldBeLessThanOrEqualTo, 5)
			})

			Convey("Then the subject never shows up as a co-star", func() {
				for _, a := range rep.CoStars {
					So(a.Actor, ShouldNotEqual, "Nicolas Cage")
				}
			})
		})

		Convey("When the selection matches nothing", func() {
			sel := model.Selection{YearMin: 1800, YearMax: 1801, Motif: model.MotifAll}
			rep, err := svc.Report(ctx, sel)

			Convey("Then the report is empty and stats are undefined", func() {
				So(err, ShouldBeNil)
				So(rep.Total, ShouldEqual, 0)
				So(rep.RatingStats.Defined, ShouldBeFalse)
				So(rep.DurationStats.Defined, ShouldBeFalse)
			})
		})
	})
}

func TestService_Filmography(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service with exclusions", t, func() {
		path := writeDataset(t, "Nicolas Cage", 30)
		svc := service.New(service.WithDatasetPath(path))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		bounds, err := svc.Bounds(ctx)
		So(err, ShouldBeNil)
		sel := model.Selection{YearMin: bounds.YearMin, YearMax: bounds.YearMax, Motif: model.MotifAll}

		Convey("When fetching the filmography", func() {
			cards, err := svc.Filmography(ctx, sel)

			Convey("Then every cell has a poster", func() {
				So(err, ShouldBeNil)
				So(cards, ShouldNotBeEmpty)
				for _, c := range cards {
					So(c.Poster, ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestService_Bounds(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		path := writeDataset(t, "Nicolas Cage", 50)
		svc := service.New(service.WithDatasetPath(path))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When reading the bounds", func() {
			bounds, err := svc.Bounds(ctx)

			Convey("Then the year extent is ordered and motifs are sorted", func() {
				So(err, ShouldBeNil)
				So(bounds.YearMin, ShouldBeLessThanOrEqualTo, bounds.YearMax)
				So(bounds.Motifs, ShouldNotBeEmpty)
				for i := 1; i < len(bounds.Motifs); i++ {
					So(bounds.Motifs[i-1], ShouldBeLessThan, bounds.Motifs[i])
				}
			})
		})
	})
}

func TestService_Reload(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		path := writeDataset(t, "Nicolas Cage", 20)
		svc := service.New(service.WithDatasetPath(path))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		before := svc.GetStats()["films"]

		Convey("When reloading an unchanged file", func() {
			err := svc.Reload(ctx)

			Convey("Then the cache swap is invisible", func() {
				So(err, ShouldBeNil)
				So(svc.GetStats()["films"], ShouldEqual, before)
			})
		})
	})
}
