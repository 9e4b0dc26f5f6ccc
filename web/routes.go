package web

import (
	"errors"
	"net/http"

	"eduhub/visit"
	"eduhub/web/api"
	"eduhub/web/pages/courses"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, registry *visit.Registry, mounts *RateLimiter) {
	views := api.NewViews(registry)

	// Every page load mounts a fresh view, so page loads are rate limited
	s.Get("/", mounts.Limit(func(ctx rweb.Context) error {
		v, err := registry.Mount()
		if err != nil {
			if errors.Is(err, visit.ErrTooManyViews) || errors.Is(err, visit.ErrRegistryClosed) {
				logger.Info("View not mounted", "reason", err.Error())
				ctx.SetStatus(http.StatusServiceUnavailable)
				return ctx.WriteHTML("<h1>Course listing is busy, try again shortly</h1>")
			}
			logger.LogErr(err, "failed to mount view")
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML("<h1>Course listing unavailable</h1>")
		}

		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		ctx.Response().SetHeader("Cache-Control", "no-store")
		page := courses.Page{ViewID: v.ID, Token: v.Token, State: v.Current()}
		return ctx.WriteHTML(page.Render())
	}))

	s.Get("/health", views.Health)

	// View lifecycle and events
	s.Post("/api/v1/views/:id/events", views.PostEvent)
	s.Delete("/api/v1/views/:id", views.DeleteView)

	// Catalog
	s.Get("/api/v1/courses", api.ListCourses)
	s.Get("/api/v1/filter-options", api.GetFilterOptions)
}
