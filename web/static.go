package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

//go:embed static
var staticFiles embed.FS

// faviconSVG is the EH mark on the active trigger colour
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#3B00B9"/><text x="250" y="320" font-family="Arial,sans-serif" font-weight="900" font-size="220" fill="white" text-anchor="middle">EH</text></svg>`

// assetTypes lists the content type of every kind of file under static/
var assetTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".js":  "application/javascript; charset=utf-8",
}

// SetupStaticFiles serves the page stylesheet and scripts from the binary.
// The page requests them with a ?v= version, so they are cached for a year.
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		name := c.Request().Path()[len("/static/"):]

		contentType := getContentType(name)
		if contentType == "" {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		content, err := fs.ReadFile(staticFS, name)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		c.Response().SetHeader("Content-Type", contentType)
		c.Response().SetHeader("Cache-Control", "public, max-age=31536000, immutable")
		return c.Bytes(content)
	})
}

// getContentType returns the content type for a served asset, "" for anything else
func getContentType(name string) string {
	return assetTypes[path.Ext(name)]
}
