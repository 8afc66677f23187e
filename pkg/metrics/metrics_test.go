package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating a manager with options", func() {
			m := NewManager(
				WithRegistry(reg),
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{1, 10, 100}),
			)

			Convey("Then the manager should reflect the options", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "testns")
				So(m.subsystem, ShouldEqual, "testsub")
				So(m.histogramBuckets, ShouldResemble, []float64{1, 10, 100})
			})

			Convey("And the collectors should be registered", func() {
				mfs, err := reg.Gather()
				So(err, ShouldBeNil)
				So(len(mfs), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When creating a manager with empty options", func() {
			m := NewManager(
				WithRegistry(prometheus.NewRegistry()),
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
			)

			Convey("Then defaults should be kept", func() {
				So(m.namespace, ShouldEqual, "mhs")
				So(m.subsystem, ShouldEqual, "activities")
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then recording helpers should not panic", func() {
			So(func() {
				RecordSignup()
				RecordSignupConflict()
				RecordRemoval()
				RecordRemovalRejected()
				RecordCatalogLookup()
				UpdateCatalogActivities(9)
				UpdateCatalogParticipants(15)
				RecordHTTPRequest("activities", "GET", "200")
				RecordHTTPRequestDuration("activities", "GET", "200", 1.5)
				RecordErrorByEndpoint("signup", "POST", "not_found")
				RecordErrorByType("not_found", "medium")
				RecordErrorLatency("http", "not_found", 0.4)
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(8)
				RecordSystemGCPauseTime(0.1)
			}, ShouldNotPanic)
		})

		Convey("And the custom registry should be exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
