package api

import (
	"net/http"

	"eduhub/filterbar"
	"eduhub/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// ListCourses handles GET /api/v1/courses
// Returns the whole catalog; filtering happens in the mounted views.
func ListCourses(ctx rweb.Context) error {
	courses, err := models.ListCourses()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list courses"), "database error")
		return writeError(ctx, http.StatusInternalServerError, "database error")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return writeSuccess(ctx, http.StatusOK, courses)
}

// DimensionOptions describes one filterable dimension
type DimensionOptions struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

// FilterOptions is the payload of GET /api/v1/filter-options
type FilterOptions struct {
	Dimensions []DimensionOptions `json:"dimensions"`
	Sort       []string           `json:"sort"`
}

// BuildFilterOptions lists the fixed vocabularies in render order
func BuildFilterOptions() FilterOptions {
	fo := FilterOptions{}
	for _, d := range filterbar.Dimensions {
		fo.Dimensions = append(fo.Dimensions, DimensionOptions{
			ID:      d.String(),
			Title:   d.Title(),
			Options: d.Options(),
		})
	}
	for _, s := range filterbar.SortOptions {
		fo.Sort = append(fo.Sort, string(s))
	}
	return fo
}

// GetFilterOptions handles GET /api/v1/filter-options
func GetFilterOptions(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, BuildFilterOptions())
}
