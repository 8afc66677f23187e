package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultSeed(t *testing.T) {
	Convey("Given the built-in seed", t, func() {
		seed := DefaultSeed()

		Convey("Then it should contain nine uniquely named activities", func() {
			So(len(seed), ShouldEqual, 9)
			names := make(map[string]bool, len(seed))
			for _, a := range seed {
				names[a.Name] = true
			}
			So(len(names), ShouldEqual, 9)
		})

		Convey("And every activity should have a positive capacity", func() {
			for _, a := range seed {
				So(a.MaxParticipants, ShouldBeGreaterThan, 0)
			}
		})
	})
}

func TestLoadSeedFile(t *testing.T) {
	Convey("Given a YAML seed file", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		yaml := `activities:
  Robotics Club:
    description: Build and program robots
    schedule: Tuesdays, 4:00 PM - 5:30 PM
    max_participants: 10
    participants:
      - zoe@mergington.edu
`
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			seed, err := LoadSeedFile(ctx, path)

			Convey("Then the activities should be parsed", func() {
				So(err, ShouldBeNil)
				So(len(seed), ShouldEqual, 1)
				So(seed[0].Name, ShouldEqual, "Robotics Club")
				So(seed[0].MaxParticipants, ShouldEqual, 10)
				So(seed[0].Roster.Emails(), ShouldResemble, []string{"zoe@mergington.edu"})
			})
		})
	})

	Convey("Given an invalid seed file", t, func() {
		ctx := context.Background()
		dir := t.TempDir()

		Convey("When the file is missing", func() {
			_, err := LoadSeedFile(ctx, filepath.Join(dir, "missing.yaml"))

			Convey("Then it should report an invalid seed", func() {
				So(errors.Is(err, ErrInvalidSeed), ShouldBeTrue)
			})
		})

		Convey("When the file has no activities", func() {
			path := filepath.Join(dir, "empty.yaml")
			So(os.WriteFile(path, []byte("activities: {}\n"), 0o600), ShouldBeNil)
			_, err := LoadSeedFile(ctx, path)

			Convey("Then it should report an invalid seed", func() {
				So(errors.Is(err, ErrInvalidSeed), ShouldBeTrue)
			})
		})

		Convey("When an activity has no capacity", func() {
			path := filepath.Join(dir, "nocap.yaml")
			yaml := "activities:\n  Chess Club:\n    description: d\n    schedule: s\n"
			So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
			_, err := LoadSeedFile(ctx, path)

			Convey("Then it should report an invalid seed", func() {
				So(errors.Is(err, ErrInvalidSeed), ShouldBeTrue)
			})
		})
	})
}
