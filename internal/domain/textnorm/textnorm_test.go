package textnorm_test

import (
	"testing"

	"github.com/devalpoteam/instascore-engine/internal/domain/textnorm"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFold(t *testing.T) {
	Convey("Given the text folding function", t, func() {
		Convey("When folding mixed-case text", func() {
			So(textnorm.Fold("Ana Perez"), ShouldEqual, "ana perez")
			So(textnorm.Fold("GIMNASIA"), ShouldEqual, "gimnasia")
		})

		Convey("When folding accented text", func() {
			So(textnorm.Fold("María José"), ShouldEqual, "maria jose")
			So(textnorm.Fold("Muñoz"), ShouldEqual, "munoz")
			So(textnorm.Fold("Asimétricas"), ShouldEqual, "asimetricas")
			So(textnorm.Fold("CAMPEÓN"), ShouldEqual, "campeon")
		})

		Convey("When folding hyphens and underscores", func() {
			So(textnorm.Fold("nivel-3"), ShouldEqual, "nivel 3")
			So(textnorm.Fold("club_deportivo"), ShouldEqual, "club deportivo")
			So(textnorm.Fold("a--b__c"), ShouldEqual, "a b c")
		})

		Convey("When folding runs of whitespace", func() {
			So(textnorm.Fold("ana   perez"), ShouldEqual, "ana perez")
			So(textnorm.Fold("ana \t perez"), ShouldEqual, "ana perez")
			So(textnorm.Fold("  ana perez  "), ShouldEqual, "ana perez")
		})

		Convey("When folding empty and blank input", func() {
			So(textnorm.Fold(""), ShouldEqual, "")
			So(textnorm.Fold("   "), ShouldEqual, "")
			So(textnorm.Fold("-_-"), ShouldEqual, "")
		})

		Convey("When folding already-folded text", func() {
			inputs := []string{"ana perez", "maria jose", "nivel 3", ""}
			for _, in := range inputs {
				So(textnorm.Fold(in), ShouldEqual, in)
			}
		})

		Convey("Then folding is idempotent", func() {
			inputs := []string{
				"María-José  ÑÚÑEZ",
				"Club_Deportivo   Águilas",
				"  Viga--de_equilibrio  ",
			}
			for _, in := range inputs {
				once := textnorm.Fold(in)
				So(textnorm.Fold(once), ShouldEqual, once)
			}
		})
	})
}

func TestWords(t *testing.T) {
	Convey("Given the word splitting helper", t, func() {
		Convey("When splitting a normal phrase", func() {
			So(textnorm.Words("María-José Pérez"), ShouldResemble, []string{"maria", "jose", "perez"})
		})

		Convey("When splitting blank input", func() {
			So(textnorm.Words(""), ShouldBeEmpty)
			So(textnorm.Words("   "), ShouldBeEmpty)
		})
	})
}
