package cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/qazcut/barber/core"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the route table, templates, and page content",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig("barber.config.yml")
		failed := false

		report := func(subject string, err error) {
			if err != nil {
				failed = true
				fmt.Printf("❌ %s: %v\n", subject, err)
			} else {
				fmt.Printf("✅ %s\n", subject)
			}
		}

		report("route table", checkRoutes(config))
		report("home content", checkHomeContent(config))
		report("templates", checkTemplates(config))

		if failed {
			return fmt.Errorf("check failed")
		}

		fmt.Println("✨ All checks passed.")
		return nil
	},
}

func checkRoutes(config core.Config) error {
	_, err := core.NewRouter(config, core.RuntimeContext{Env: "dev"})
	return err
}

func checkHomeContent(config core.Config) error {
	home := core.NewHomePage(config)

	if home.LoggedIn {
		return fmt.Errorf("LoggedIn must default to false")
	}

	for i, s := range home.Services {
		if s.Title == "" || s.Description == "" || s.Price == "" || s.Image == "" {
			return fmt.Errorf("service %d has empty fields", i)
		}
	}
	for i, s := range home.Stats {
		if s.Value == "" || s.Label == "" {
			return fmt.Errorf("stat %d has empty fields", i)
		}
	}
	for i, l := range home.FooterLinks {
		if l.Label == "" || l.Href == "" {
			return fmt.Errorf("footer link %d has empty fields", i)
		}
	}

	return nil
}

// checkTemplates renders every declared page against its real view-model.
func checkTemplates(config core.Config) error {
	renderer := core.NewRenderer("dev", config.OutputDir)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	if err != nil {
		return err
	}

	for _, spec := range core.SiteRoutes(config) {
		var data any
		if spec.Data != nil {
			result, err := spec.Data(req, map[string]string{})
			if err != nil {
				return fmt.Errorf("%s: %w", spec.Path, err)
			}
			data = result
		}
		if err := renderer.RenderPage(io.Discard, spec.Template, data); err != nil {
			return fmt.Errorf("%s: %w", spec.Path, err)
		}
	}

	errData := map[string]any{"SiteName": config.SiteName, "Status": 404, "Message": "Not Found"}
	if err := renderer.RenderPage(io.Discard, "error.html", errData); err != nil {
		return fmt.Errorf("error page: %w", err)
	}

	return nil
}
