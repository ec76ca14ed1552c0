package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/qazcut/barber/core"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print site structure and cache summary",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig("barber.config.yml")

		fmt.Println("🏠 Site:", config.SiteName)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🔁 Cache Enabled:", config.CacheEnabled)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println()

		componentCount := 0
		filepath.Walk("components", func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && strings.HasSuffix(path, ".html") {
				componentCount++
			}
			return nil
		})

		cacheCount := 0
		filepath.Walk(config.OutputDir, func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && strings.HasSuffix(path, ".html") {
				cacheCount++
			}
			return nil
		})

		fmt.Println("🗂️  Routes Declared:", len(core.SiteRoutes(config)))
		fmt.Println("🔌 API Endpoints:", len(core.SiteAPIRoutes(config)))
		fmt.Println("📦 Components Found:", componentCount)
		fmt.Println("💾 Cached Pages:", cacheCount)

		return nil
	},
}
