package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no config file or env overrides", t, func() {
		ctx := context.Background()

		Convey("When loading", func() {
			cfg, err := Load(ctx)

			Convey("Then defaults should be returned", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8000")
				So(cfg.LogLevel, ShouldEqual, "info")
			})
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		ctx := context.Background()
		t.Setenv("MHS_ADDR", ":9000")
		t.Setenv("MHS_LOG_LEVEL", "debug")
		t.Setenv("MHS_SEED_FILE", "catalog.yaml")

		Convey("When loading", func() {
			cfg, err := Load(ctx)

			Convey("Then env values should win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9000")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.SeedFile, ShouldEqual, "catalog.yaml")
			})
		})
	})
}

func TestLoadFileLayer(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		yaml := "addr: \":7070\"\nlog_level: warn\n"
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		t.Setenv("MHS_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := Load(ctx)

			Convey("Then file values should apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "warn")
			})
		})

		Convey("When env overrides the file", func() {
			t.Setenv("MHS_ADDR", ":7071")
			cfg, err := Load(ctx)

			Convey("Then env should win", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7071")
			})
		})
	})
}

func TestLoadErrors(t *testing.T) {
	Convey("Given a missing config file", t, func() {
		ctx := context.Background()
		t.Setenv("MHS_CONFIG", "/nonexistent/config.yaml")

		Convey("When loading", func() {
			_, err := Load(ctx)

			Convey("Then a load error should be reported", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
			})
		})
	})
}

func TestLoadInvalidOverride(t *testing.T) {
	Convey("Given an invalid override", t, func() {
		ctx := context.Background()
		t.Setenv("MHS_READ_TIMEOUT_SEC", "-1")

		Convey("When loading", func() {
			_, err := Load(ctx)

			Convey("Then validation should fail", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
