package standings_test

import (
	"testing"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleRows() []model.ScoreRow {
	return []model.ScoreRow{
		{AthleteName: "Ana Perez", TeamName: "Club Andino", Subdivision: "Juvenil Nivel 3", Apparatus: "Viga", Value: 8.6, ApparatusRank: 2},
		{AthleteName: "Ana Perez", TeamName: "Club Andino", Subdivision: "Juvenil Nivel 3", Apparatus: "Suelo", Value: 8.7, ApparatusRank: 1},
		{AthleteName: "Valentina Rojas", TeamName: "Gimnasia Elite", Subdivision: "Juvenil Nivel 3", Apparatus: "Viga", Value: 9.1, ApparatusRank: 1},
		{AthleteName: "Valentina Rojas", TeamName: "Gimnasia Elite", Subdivision: "Juvenil Nivel 3", Apparatus: "Suelo", Value: 8.1, ApparatusRank: 2},
		{AthleteName: "Sofia Lagos", TeamName: "Club Andino", Subdivision: "Juvenil Nivel 3", Apparatus: "Viga", Value: 7.9, ApparatusRank: 3},
	}
}

func TestAggregate(t *testing.T) {
	Convey("Given a list of judged score rows", t, func() {
		rows := sampleRows()

		Convey("When aggregating them", func() {
			results := standings.Aggregate(rows)

			Convey("Then the apparatus set is distinct and sorted", func() {
				So(results.Apparatuses, ShouldResemble, []string{"Suelo", "Viga"})
			})

			Convey("Then rows group into one composite per athlete", func() {
				So(len(results.Athletes), ShouldEqual, 3)
			})

			Convey("Then the all-around total sums the rows present", func() {
				first := results.Athletes[0]
				So(first.AthleteName, ShouldEqual, "Ana Perez")
				So(first.AllAround, ShouldAlmostEqual, 17.3)
				So(first.Scores["Viga"], ShouldAlmostEqual, 8.6)
				So(first.Scores["Suelo"], ShouldAlmostEqual, 8.7)
				So(first.Positions["Viga"], ShouldEqual, 2)
				So(first.Positions["Suelo"], ShouldEqual, 1)
			})

			Convey("Then a missing apparatus contributes nothing", func() {
				last := results.Athletes[2]
				So(last.AthleteName, ShouldEqual, "Sofia Lagos")
				So(last.AllAround, ShouldAlmostEqual, 7.9)
				_, hasSuelo := last.Scores["Suelo"]
				So(hasSuelo, ShouldBeFalse)
			})

			Convey("Then overall ranks are dense and ordered by total", func() {
				So(results.Athletes[0].OverallRank, ShouldEqual, 1)
				So(results.Athletes[1].OverallRank, ShouldEqual, 2)
				So(results.Athletes[2].OverallRank, ShouldEqual, 3)
				So(results.Athletes[0].AllAround, ShouldBeGreaterThanOrEqualTo, results.Athletes[1].AllAround)
				So(results.Athletes[1].AllAround, ShouldBeGreaterThanOrEqualTo, results.Athletes[2].AllAround)
			})
		})

		Convey("When athletes share a name across subdivisions", func() {
			extra := append(rows, model.ScoreRow{
				AthleteName: "Ana Perez", TeamName: "Club Andino", Subdivision: "Adulta Nivel 5",
				Apparatus: "Viga", Value: 9.0, ApparatusRank: 1,
			})
			results := standings.Aggregate(extra)

			Convey("Then each subdivision gets its own composite", func() {
				So(len(results.Athletes), ShouldEqual, 4)
			})
		})

		Convey("When totals tie", func() {
			tied := []model.ScoreRow{
				{AthleteName: "A", TeamName: "T1", Subdivision: "S", Apparatus: "Viga", Value: 8.0},
				{AthleteName: "B", TeamName: "T2", Subdivision: "S", Apparatus: "Viga", Value: 8.0},
			}
			results := standings.Aggregate(tied)

			Convey("Then ranks stay consecutive in input order", func() {
				So(results.Athletes[0].AthleteName, ShouldEqual, "A")
				So(results.Athletes[0].OverallRank, ShouldEqual, 1)
				So(results.Athletes[1].AthleteName, ShouldEqual, "B")
				So(results.Athletes[1].OverallRank, ShouldEqual, 2)
			})
		})

		Convey("When the input is empty", func() {
			results := standings.Aggregate(nil)

			So(results.Apparatuses, ShouldBeEmpty)
			So(results.Athletes, ShouldBeEmpty)
		})
	})
}

func TestForApparatus(t *testing.T) {
	Convey("Given aggregated athlete composites", t, func() {
		athletes := standings.Aggregate(sampleRows()).Athletes

		Convey("When filtering by an apparatus everyone competed on", func() {
			out := standings.ForApparatus(athletes, "Viga")

			Convey("Then ordering follows the judged per-apparatus rank", func() {
				So(len(out), ShouldEqual, 3)
				So(out[0].AthleteName, ShouldEqual, "Valentina Rojas")
				So(out[1].AthleteName, ShouldEqual, "Ana Perez")
				So(out[2].AthleteName, ShouldEqual, "Sofia Lagos")
			})
		})

		Convey("When filtering by an apparatus some athletes missed", func() {
			out := standings.ForApparatus(athletes, "Suelo")

			Convey("Then athletes without a score are excluded", func() {
				So(len(out), ShouldEqual, 2)
				So(out[0].AthleteName, ShouldEqual, "Ana Perez")
				So(out[1].AthleteName, ShouldEqual, "Valentina Rojas")
			})
		})

		Convey("When filtering by an unknown apparatus", func() {
			So(standings.ForApparatus(athletes, "Salto"), ShouldBeEmpty)
		})
	})
}
