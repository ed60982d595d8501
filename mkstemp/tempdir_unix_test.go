//go:build unix && !android

package mkstemp // import "blitznote.com/src/tmpfile/mkstemp"

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTempDir(t *testing.T) {
	for _, key := range tempDirEnv {
		t.Setenv(key, "")
	}

	Convey("TempDir", t, func() {
		Convey("falls back to /tmp", func() {
			So(TempDir(), ShouldEqual, "/tmp")
		})

		Convey("honours the variables in order", func() {
			t.Setenv("TEMPDIR", "/from-tempdir")
			So(TempDir(), ShouldEqual, "/from-tempdir")
			t.Setenv("TEMP", "/from-temp")
			So(TempDir(), ShouldEqual, "/from-temp")
			t.Setenv("TMP", "/from-tmp")
			So(TempDir(), ShouldEqual, "/from-tmp")
			t.Setenv("TMPDIR", "/from-tmpdir")
			So(TempDir(), ShouldEqual, "/from-tmpdir")
		})

		Reset(func() {
			for _, key := range tempDirEnv {
				t.Setenv(key, "")
			}
		})
	})
}
