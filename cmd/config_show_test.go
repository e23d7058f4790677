package cmd

import (
	"strings"
	"testing"

	"osprofile/internal/config"
)

func TestRunConfigShow(t *testing.T) {
	t.Run("config exists", func(t *testing.T) {
		defer saveCmdVars(t)()
		setupTestConfig(t, &config.Config{OS: "darwin", ExtraPaths: []string{"/opt/bin"}})
		buf := captureOutput(t)

		if err := runConfigShow(nil, nil); err != nil {
			t.Fatalf("runConfigShow: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "os: darwin") {
			t.Errorf("output missing os override:\n%s", out)
		}
		if !strings.Contains(out, "/opt/bin") {
			t.Errorf("output missing extra path:\n%s", out)
		}
	})

	t.Run("config missing", func(t *testing.T) {
		defer saveCmdVars(t)()
		t.Setenv("HOME", t.TempDir())
		buf := captureOutput(t)

		if err := runConfigShow(nil, nil); err != nil {
			t.Fatalf("runConfigShow: %v", err)
		}
		if !strings.Contains(buf.String(), "autodetected") {
			t.Errorf("output = %q, want autodetect notice", buf.String())
		}
	})
}
