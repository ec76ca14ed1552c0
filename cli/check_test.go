package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/qazcut/barber/core"
)

// setupSiteDir chdirs into a temp dir holding a minimal template tree.
func setupSiteDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	_ = os.MkdirAll(filepath.Join(tmpDir, "templates"), 0755)
	_ = os.MkdirAll(filepath.Join(tmpDir, "components"), 0755)

	layout := `{{ define "layout" }}<html><body>{{ template "content" . }}</body></html>{{ end }}`
	_ = os.WriteFile(filepath.Join(tmpDir, "templates", "layout.html"), []byte(layout), 0644)

	home := `{{ define "content" }}{{ range .Services }}<p>{{ .Title }}</p>{{ end }}{{ end }}`
	_ = os.WriteFile(filepath.Join(tmpDir, "templates", "home.html"), []byte(home), 0644)

	errPage := `{{ define "content" }}<h1>{{ .Status }}</h1>{{ end }}`
	_ = os.WriteFile(filepath.Join(tmpDir, "templates", "error.html"), []byte(errPage), 0644)

	origDir, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	return tmpDir
}

func checkApp() *cli.App {
	return &cli.App{Commands: []*cli.Command{CheckCommand}}
}

func TestCheckCommand_PassesOnValidSite(t *testing.T) {
	setupSiteDir(t)

	overrideLoadConfig(core.Config{SiteName: "QazCut", OutputDir: t.TempDir()}, func() {
		var runErr error
		output := captureOutput(func() {
			runErr = checkApp().Run([]string{"barber", "check"})
		})

		if runErr != nil {
			t.Fatalf("expected check to pass, got: %v\n%s", runErr, output)
		}
		if !strings.Contains(output, "All checks passed") {
			t.Errorf("expected success summary, got: %s", output)
		}
	})
}

func TestCheckCommand_FailsWithoutTemplates(t *testing.T) {
	tmpDir := setupSiteDir(t)
	_ = os.RemoveAll(filepath.Join(tmpDir, "templates"))

	overrideLoadConfig(core.Config{SiteName: "QazCut", OutputDir: t.TempDir()}, func() {
		var runErr error
		captureOutput(func() {
			runErr = checkApp().Run([]string{"barber", "check"})
		})

		if runErr == nil {
			t.Fatal("expected check to fail without templates")
		}
	})
}

func TestCheckHomeContent_AcceptsSiteContent(t *testing.T) {
	if err := checkHomeContent(core.Config{SiteName: "QazCut"}); err != nil {
		t.Errorf("expected site content to validate, got: %v", err)
	}
}

func TestCheckRoutes_CompilesTable(t *testing.T) {
	if err := checkRoutes(core.Config{SiteName: "QazCut", OutputDir: t.TempDir()}); err != nil {
		t.Errorf("expected route table to compile, got: %v", err)
	}
}
