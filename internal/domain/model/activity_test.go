package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewActivity(t *testing.T) {
	Convey("Given activity attributes", t, func() {
		a := NewActivity(
			"Chess Club",
			"Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM",
			12,
			"michael@mergington.edu", "daniel@mergington.edu",
		)

		Convey("Then the activity should carry them", func() {
			So(a.Name, ShouldEqual, "Chess Club")
			So(a.MaxParticipants, ShouldEqual, 12)
			So(a.Roster.Len(), ShouldEqual, 2)
		})

		Convey("When taking the public view", func() {
			v := a.View()

			Convey("Then all four fields should be populated", func() {
				So(v.Description, ShouldEqual, a.Description)
				So(v.Schedule, ShouldEqual, a.Schedule)
				So(v.MaxParticipants, ShouldEqual, 12)
				So(v.Participants, ShouldResemble, []string{"michael@mergington.edu", "daniel@mergington.edu"})
			})

			Convey("And mutating the view should not touch the roster", func() {
				v.Participants[0] = "tampered@mergington.edu"
				So(a.Roster.Contains("michael@mergington.edu"), ShouldBeTrue)
			})
		})
	})
}
