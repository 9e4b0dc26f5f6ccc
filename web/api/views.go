package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"eduhub/models"
	"eduhub/visit"
	"eduhub/web/pages/courses"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// TokenHeader carries the view token on every view request
const TokenHeader = "X-View-Token"

// EventResponse is returned after each event: the regions to swap by element id,
// the new item count and, after the mobile actions, the anchor to scroll to.
type EventResponse struct {
	Fragments map[string]string `json:"fragments"`
	Count     int               `json:"count"`
	Anchor    string            `json:"anchor,omitempty"`
}

// Views serves the per-page view endpoints
type Views struct {
	registry *visit.Registry
}

// NewViews creates the view handlers over registry
func NewViews(registry *visit.Registry) *Views {
	return &Views{registry: registry}
}

// PostEvent handles POST /api/v1/views/:id/events
// The body is one event, JSON by default or msgpack when the client says so
// through Content-Type or X-Body-Encoding.
func (v *Views) PostEvent(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	view, err := v.registry.Get(id, ctx.Request().Header(TokenHeader))
	if err != nil {
		return writeViewError(ctx, err)
	}

	event, err := DecodeEvent(ctx.Request().Body(),
		ctx.Request().Header("Content-Type"), ctx.Request().Header("X-Body-Encoding"))
	if err != nil {
		logger.LogErr(err, "invalid event body", "view_id", id)
		return writeError(ctx, http.StatusBadRequest, "invalid event body")
	}

	result, err := view.Dispatch(event)
	if err != nil {
		return writeViewError(ctx, err)
	}
	logger.Debug("View event", "view_id", id, "type", event.Type, "count", result.Bar.NumberOfItems)

	return writeSuccess(ctx, http.StatusOK, EventResponse{
		Fragments: courses.Fragments(result),
		Count:     result.Bar.NumberOfItems,
		Anchor:    result.Anchor,
	})
}

// DeleteView handles DELETE /api/v1/views/:id
// The page calls it on unload so the view's click listener is released promptly.
func (v *Views) DeleteView(ctx rweb.Context) error {
	id := ctx.Request().Param("id")
	if err := v.registry.Unmount(id, ctx.Request().Header(TokenHeader)); err != nil {
		return writeViewError(ctx, err)
	}
	return writeSuccess(ctx, http.StatusOK, map[string]string{"id": id})
}

// Health handles GET /health
func (v *Views) Health(ctx rweb.Context) error {
	n, err := models.CountCourses()
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to count courses"), "health check")
		return writeError(ctx, http.StatusServiceUnavailable, "catalog unavailable")
	}
	return writeSuccess(ctx, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"courses": n,
		"views":   v.registry.Len(),
	})
}

// DecodeEvent reads one event from body
func DecodeEvent(body []byte, contentType, encoding string) (visit.Event, error) {
	var e visit.Event
	if isMsgpack(contentType, encoding) {
		if err := msgpack.Unmarshal(body, &e); err != nil {
			return e, serr.Wrap(err, "failed to msgpack decode event")
		}
		return e, nil
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return e, serr.Wrap(err, "failed to decode event JSON")
	}
	return e, nil
}

func isMsgpack(contentType, encoding string) bool {
	if strings.EqualFold(encoding, "msgpack") {
		return true
	}
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "application/msgpack") || strings.HasPrefix(ct, "application/x-msgpack")
}

// writeViewError maps view errors onto status codes
func writeViewError(ctx rweb.Context, err error) error {
	switch {
	case errors.Is(err, visit.ErrViewNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, visit.ErrInvalidToken):
		return writeError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, visit.ErrBadEvent):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	logger.LogErr(err, "view request failed")
	return writeError(ctx, http.StatusInternalServerError, "view request failed")
}
