package search_test

import (
	"testing"

	"github.com/devalpoteam/instascore-engine/internal/domain/model"
	"github.com/devalpoteam/instascore-engine/internal/domain/search"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSuggest(t *testing.T) {
	Convey("Given a search engine and an athlete directory", t, func() {
		e := search.New()
		records := []model.Athlete{
			{
				Name:          "Ana Perez",
				Club:          "Club Andino",
				Category:      "Juvenil",
				Level:         "Nivel 3",
				LastEventName: "Copa Primavera",
			},
			{
				Name:     "Ana Paz",
				Club:     "Club Andino",
				Category: "Infantil",
				Level:    "Nivel 2",
			},
			{
				Name: "María José Muñoz",
				Club: "Gimnasia Elite",
			},
		}

		Convey("When suggesting for a short prefix", func() {
			out := e.Suggest(records, "an", 5)

			Convey("Then matching literals keep first-encountered order", func() {
				// "an" also hits inside "Infantil Nivel 2".
					So(out, ShouldResemble, []string{"Ana Perez", "Club Andino", "Ana Paz", "Infantil Nivel 2"})
			})
		})

		Convey("When the cap is smaller than the match count", func() {
			out := e.Suggest(records, "an", 2)

			So(out, ShouldResemble, []string{"Ana Perez", "Club Andino"})
		})

		Convey("When the query folds to fewer than two runes", func() {
			So(e.Suggest(records, "a", 5), ShouldBeNil)
			So(e.Suggest(records, "", 5), ShouldBeNil)
			So(e.Suggest(records, " á ", 5), ShouldBeNil)
		})

		Convey("When the cap is non-positive", func() {
			So(e.Suggest(records, "ana", 0), ShouldBeNil)
			So(e.Suggest(records, "ana", -1), ShouldBeNil)
		})

		Convey("When the query carries accents", func() {
			out := e.Suggest(records, "maría jo", 5)

			Convey("Then matching is accent-insensitive but literals are returned verbatim", func() {
				So(out, ShouldResemble, []string{"María José Muñoz"})
			})
		})

		Convey("When the query spans category and level", func() {
			out := e.Suggest(records, "juvenil ni", 5)

			So(out, ShouldResemble, []string{"Juvenil Nivel 3"})
		})

		Convey("When duplicate field values exist", func() {
			out := e.Suggest(records, "andino", 5)

			Convey("Then the literal appears once", func() {
				So(out, ShouldResemble, []string{"Club Andino"})
			})
		})

		Convey("When nothing matches", func() {
			So(e.Suggest(records, "zzzz", 5), ShouldBeNil)
		})
	})
}
