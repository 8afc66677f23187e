package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mergington/activities/internal/domain/model"
)

func TestMemoryCatalogSeed(t *testing.T) {
	Convey("Given a catalog with the built-in seed", t, func() {
		ctx := context.Background()
		c := NewMemoryCatalog(ctx)

		Convey("Then it should hold the nine Mergington activities", func() {
			So(c.Count(ctx), ShouldEqual, 9)

			list := c.List(ctx)
			So(list, ShouldContainKey, "Chess Club")
			So(list, ShouldContainKey, "Science Club")

			chess := list["Chess Club"]
			So(chess.Description, ShouldEqual, "Learn strategies and compete in chess tournaments")
			So(chess.Schedule, ShouldEqual, "Fridays, 3:30 PM - 5:00 PM")
			So(chess.MaxParticipants, ShouldEqual, 12)
			So(chess.Participants, ShouldResemble, []string{"michael@mergington.edu", "daniel@mergington.edu"})
		})

		Convey("And the enrollment total should match the seed", func() {
			So(c.ParticipantCount(ctx), ShouldEqual, 15)
		})
	})

	Convey("Given a catalog with a custom seed", t, func() {
		ctx := context.Background()
		c := NewMemoryCatalog(ctx, WithSeed([]*model.Activity{
			model.NewActivity("Robotics", "Build robots", "Mondays", 10, "zoe@x.edu"),
		}))

		Convey("Then only the custom activities should exist", func() {
			So(c.Count(ctx), ShouldEqual, 1)
			So(c.List(ctx), ShouldContainKey, "Robotics")
		})
	})
}

func TestMemoryCatalogSignup(t *testing.T) {
	Convey("Given a seeded catalog", t, func() {
		ctx := context.Background()
		c := NewMemoryCatalog(ctx)

		Convey("When signing up a new email", func() {
			err := c.Signup(ctx, "Chess Club", "new@x.edu")

			Convey("Then it should succeed and append to the roster", func() {
				So(err, ShouldBeNil)
				got := c.List(ctx)["Chess Club"].Participants
				So(got, ShouldResemble, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@x.edu"})
			})
		})

		Convey("When signing up an already enrolled email", func() {
			err := c.Signup(ctx, "Chess Club", "michael@mergington.edu")

			Convey("Then it should report a conflict without duplicating", func() {
				So(errors.Is(err, ErrAlreadySignedUp), ShouldBeTrue)
				So(len(c.List(ctx)["Chess Club"].Participants), ShouldEqual, 2)
			})
		})

		Convey("When signing up for an unknown activity", func() {
			err := c.Signup(ctx, "Knitting Circle", "new@x.edu")

			Convey("Then it should report not found", func() {
				So(errors.Is(err, ErrActivityNotFound), ShouldBeTrue)
			})
		})

		Convey("When signing up past the advisory capacity", func() {
			// Chess Club caps at 12; capacity is advisory only.
			for i := 0; i < 15; i++ {
				So(c.Signup(ctx, "Chess Club", fmt.Sprintf("extra%d@x.edu", i)), ShouldBeNil)
			}

			Convey("Then every signup should still be accepted", func() {
				So(len(c.List(ctx)["Chess Club"].Participants), ShouldEqual, 17)
			})
		})
	})
}

func TestMemoryCatalogRemove(t *testing.T) {
	Convey("Given a seeded catalog", t, func() {
		ctx := context.Background()
		c := NewMemoryCatalog(ctx)

		Convey("When removing an enrolled email", func() {
			err := c.Remove(ctx, "Chess Club", "michael@mergington.edu")

			Convey("Then it should succeed and shrink the roster by one", func() {
				So(err, ShouldBeNil)
				got := c.List(ctx)["Chess Club"].Participants
				So(got, ShouldResemble, []string{"daniel@mergington.edu"})
			})
		})

		Convey("When removing an email that is not enrolled", func() {
			err := c.Remove(ctx, "Chess Club", "stranger@x.edu")

			Convey("Then it should be rejected and leave the roster unchanged", func() {
				So(errors.Is(err, ErrNotSignedUp), ShouldBeTrue)
				So(len(c.List(ctx)["Chess Club"].Participants), ShouldEqual, 2)
			})
		})

		Convey("When removing from an unknown activity", func() {
			err := c.Remove(ctx, "Knitting Circle", "michael@mergington.edu")

			Convey("Then it should report not found", func() {
				So(errors.Is(err, ErrActivityNotFound), ShouldBeTrue)
			})
		})

		Convey("When signing up and then removing the same email", func() {
			before := c.List(ctx)["Drama Club"].Participants
			So(c.Signup(ctx, "Drama Club", "temp@x.edu"), ShouldBeNil)
			So(c.Remove(ctx, "Drama Club", "temp@x.edu"), ShouldBeNil)

			Convey("Then the roster should return to its original state", func() {
				So(c.List(ctx)["Drama Club"].Participants, ShouldResemble, before)
			})
		})
	})
}

func TestMemoryCatalogConcurrentAccess(t *testing.T) {
	Convey("Given a seeded catalog under concurrent load", t, func() {
		ctx := context.Background()
		c := NewMemoryCatalog(ctx)

		const workers = 16
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(n int) {
				defer wg.Done()
				email := fmt.Sprintf("worker%d@x.edu", n)
				_ = c.Signup(ctx, "Gym Class", email)
				_ = c.List(ctx)
				_ = c.Remove(ctx, "Gym Class", email)
			}(i)
		}
		wg.Wait()

		Convey("Then the roster should be back to the seed state", func() {
			So(c.List(ctx)["Gym Class"].Participants, ShouldResemble, []string{"john@mergington.edu", "olivia@mergington.edu"})
		})
	})
}
