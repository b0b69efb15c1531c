package report_test

import (
	"math"
	"testing"

	"github.com/okian/reel/internal/domain/model"
	"github.com/okian/reel/internal/domain/report"
	. "github.com/smartystreets/goconvey/convey"
)

func film(title string, year int, rating, duration float64, genre, director, cast string) model.Film {
	return model.Film{
		MovieRecord: model.MovieRecord{
			Title:    title,
			Rating:   rating,
			Duration: duration,
			Genre:    genre,
			Director: director,
			Cast:     cast,
		},
		YearInt: year,
	}
}

func TestTopGenres(t *testing.T) {
	Convey("Given films whose genre lists overlap", t, func() {
		films := []model.Film{
			film("A", 2000, 7, 100, "Drama, Action", "", ""),
			film("B", 2001, 7, 100, "Drama, Thriller", "", ""),
			film("C", 2002, 7, 100, "Comedy", "", ""),
		}

		Convey("When taking the top five", func() {
			top := report.TopGenres(films, 5)

			Convey("Then counts reflect the flattened multiset", func() {
				So(top[0].Genre, ShouldEqual, "Drama")
				So(top[0].Count, ShouldEqual, 2)
			})

			Convey("Then ties break by first encounter in the flattened sequence", func() {
				So(top, ShouldHaveLength, 4)
				So(top[1].Genre, ShouldEqual, "Action")
				So(top[2].Genre, ShouldEqual, "Thriller")
				So(top[3].Genre, ShouldEqual, "Comedy")
			})
		})

		Convey("When the limit is below the distinct label count", func() {
			top := report.TopGenres(films, 2)

			Convey("Then only the limit survives", func() {
				So(top, ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given no films", t, func() {
		So(report.TopGenres(nil, 5), ShouldBeEmpty)
	})
}

func TestRatingDist(t *testing.T) {
	Convey("Given films grouped by exact rating value", t, func() {
		films := []model.Film{
			film("A", 2000, 6.5, 100, "", "", ""),
			film("B", 2001, 6.5, 100, "", "", ""),
			film("C", 2002, 8.1, 100, "", "", ""),
			film("D", 2003, math.NaN(), 100, "", "", ""),
		}

		dist := report.RatingDist(films)

		Convey("Then identical values share a row and missing ratings are dropped", func() {
			So(dist, ShouldHaveLength, 2)
			So(dist[0].Rating, ShouldEqual, 6.5)
			So(dist[0].Count, ShouldEqual, 2)
			So(dist[1].Rating, ShouldEqual, 8.1)
			So(dist[1].Count, ShouldEqual, 1)
		})
	})
}

func TestDurationHist(t *testing.T) {
	Convey("Given an empty subset", t, func() {
		So(report.DurationHist(nil, 30), ShouldBeEmpty)
	})

	Convey("Given a single distinct runtime", t, func() {
		films := []model.Film{
			film("A", 2000, 7, 98, "", "", ""),
			film("B", 2001, 7, 98, "", "", ""),
		}
		bins := report.DurationHist(films, 30)

		Convey("Then one bin holds everything", func() {
			So(bins, ShouldHaveLength, 1)
			So(bins[0].Low, ShouldEqual, 98)
			So(bins[0].High, ShouldEqual, 98)
			So(bins[0].Count, ShouldEqual, 2)
		})
	})

	Convey("Given a spread of runtimes", t, func() {
		films := []model.Film{
			film("A", 2000, 7, 90, "", "", ""),
			film("B", 2001, 7, 120, "", "", ""),
			film("C", 2002, 7, 150, "", "", ""),
			film("D", 2003, 7, math.NaN(), "", "", ""),
		}
		bins := report.DurationHist(films, 30)

		Convey("Then bins are equal width over the observed extent", func() {
			So(bins, ShouldHaveLength, 30)
			So(bins[0].Low, ShouldEqual, 90)
			So(bins[len(bins)-1].High, ShouldEqual, 150)
			width := bins[0].High - bins[0].Low
			So(width, ShouldAlmostEqual, 2.0)
		})

		Convey("Then every valued film lands in exactly one bin", func() {
			total := 0
			for _, b := range bins {
				total += b.Count
			}
			So(total, ShouldEqual, 3)
		})

		Convey("Then the maximum value lands in the closing bin", func() {
			So(bins[len(bins)-1].Count, ShouldEqual, 1)
		})
	})
}

func TestSummaryStats(t *testing.T) {
	Convey("Given films with ratings and durations", t, func() {
		films := []model.Film{
			film("A", 2000, 6.0, 90, "", "", ""),
			film("B", 2001, 9.0, 150, "", "", ""),
		}

		Convey("Then rating stats cover mean, min, and max", func() {
			s := report.RatingStats(films)
			So(s.Defined, ShouldBeTrue)
			So(s.Mean, ShouldAlmostEqual, 7.5)
			So(s.Min, ShouldEqual, 6.0)
			So(s.Max, ShouldEqual, 9.0)
		})

		Convey("Then duration stats do the same", func() {
			s := report.DurationStats(films)
			So(s.Defined, ShouldBeTrue)
			So(s.Mean, ShouldAlmostEqual, 120)
		})
	})

	Convey("Given only missing values", t, func() {
		films := []model.Film{
			film("A", 2000, math.NaN(), math.NaN(), "", "", ""),
		}

		Convey("Then stats are undefined rather than zero", func() {
			So(report.RatingStats(films).Defined, ShouldBeFalse)
			So(report.DurationStats(films).Defined, ShouldBeFalse)
		})
	})
}

func TestTopRated(t *testing.T) {
	Convey("Given more films than the limit", t, func() {
		films := []model.Film{
			film("First Tie", 2000, 8.0, 100, "Drama", "", ""),
			film("Low", 2001, 5.0, 100, "Drama", "", ""),
			film("Second Tie", 2002, 8.0, 100, "Drama", "", ""),
			film("High", 2003, 9.0, 100, "Drama", "", ""),
		}

		top := report.TopRated(films, 3)

		Convey("Then the highest ratings win", func() {
			So(top, ShouldHaveLength, 3)
			So(top[0].Title, ShouldEqual, "High")
		})

		Convey("Then ties keep their original dataset order", func() {
			So(top[1].Title, ShouldEqual, "First Tie")
			So(top[2].Title, ShouldEqual, "Second Tie")
		})
	})

	Convey("Given films without ratings", t, func() {
		films := []model.Film{film("A", 2000, math.NaN(), 100, "", "", "")}

		Convey("Then they never place", func() {
			So(report.TopRated(films, 5), ShouldBeEmpty)
		})
	})
}

func TestTopDirectors(t *testing.T) {
	Convey("Given films with and without directors", t, func() {
		films := []model.Film{
			film("A", 2000, 7, 100, "", "Mara Ellison", ""),
			film("B", 2001, 7, 100, "", "Mara Ellison", ""),
			film("C", 2002, 7, 100, "", "Victor Roane", ""),
			film("D", 2003, 7, 100, "", "", ""),
		}

		top := report.TopDirectors(films, 5)

		Convey("Then counts are per director and missing directors are excluded", func() {
			So(top, ShouldHaveLength, 2)
			So(top[0].Director, ShouldEqual, "Mara Ellison")
			So(top[0].Count, ShouldEqual, 2)
			So(top[1].Director, ShouldEqual, "Victor Roane")
		})
	})
}

func TestTopCoStars(t *testing.T) {
	Convey("Given casts that all include the subject", t, func() {
		films := []model.Film{
			film("A", 2000, 7, 100, "", "", "Nicolas Cage, John Travolta, Rosa Delgado"),
			film("B", 2001, 7, 100, "", "", "Nicolas Cage, John Travolta"),
			film("C", 2002, 7, 100, "", "", ""),
		}

		top := report.TopCoStars(films, "Nicolas Cage", 5)

		Convey("Then the subject never appears", func() {
			for _, a := range top {
				So(a.Actor, ShouldNotEqual, "Nicolas Cage")
			}
		})

		Convey("Then collaborators rank by shared film count", func() {
			So(top, ShouldHaveLength, 2)
			So(top[0].Actor, ShouldEqual, "John Travolta")
			So(top[0].Count, ShouldEqual, 2)
			So(top[1].Actor, ShouldEqual, "Rosa Delgado")
		})
	})
}

func TestYearly(t *testing.T) {
	Convey("Given films across years", t, func() {
		films := []model.Film{
			film("A", 1999, 7, 100, "", "", ""),
			film("B", 1999, 7, 100, "", "", ""),
			film("C", 2005, 7, 100, "", "", ""),
		}

		counts := report.Yearly(films)

		Convey("Then each year carries its row count", func() {
			So(counts, ShouldHaveLength, 2)
			byYear := map[int]int{}
			for _, c := range counts {
				byYear[c.Year] = c.Count
			}
			So(byYear[1999], ShouldEqual, 2)
			So(byYear[2005], ShouldEqual, 1)
		})
	})
}
