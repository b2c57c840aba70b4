package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"activitysignup/internal/delivery/http/helpers"
	"activitysignup/internal/domain"
	"activitysignup/internal/telemetry"
)

// Error details returned to clients.
const (
	DetailActivityNotFound = "Activity not found"
	DetailAlreadySignedUp  = "Student already signed up for this activity"
	DetailNotSignedUp      = "Student is not signed up for this activity"
	DetailEmailRequired    = "email query parameter is required"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivities godoc
// @Summary List activities
// @Description Returns every activity keyed by name, with description, schedule, capacity and current participants.
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]domain.Activity
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	catalog, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, catalog)
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Adds the email to the activity's participant list.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "already signed up"
// @Failure 404 {object} helpers.ErrorResponse "activity not found"
// @Failure 422 {object} helpers.ErrorResponse "email missing"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities/{name}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, DetailEmailRequired)
		return
	}

	msg, err := c.Service.Signup(r.Context(), name, email)
	if err != nil {
		c.writeRosterError(w, r, "signup", err, DetailAlreadySignedUp)
		return
	}
	telemetry.RosterChangesTotal.WithLabelValues("signup", telemetry.OutcomeOK).Inc()
	helpers.WriteMessage(w, http.StatusOK, msg)
}

// Unregister godoc
// @Summary Unregister from an activity
// @Description Removes the email from the activity's participant list.
// @Tags activities
// @Produce json
// @Param name path string true "Activity name"
// @Param email path string true "Participant email"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.ErrorResponse "not signed up"
// @Failure 404 {object} helpers.ErrorResponse "activity not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /activities/{name}/participants/{email} [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.PathValue("email")

	msg, err := c.Service.Unregister(r.Context(), name, email)
	if err != nil {
		c.writeRosterError(w, r, "unregister", err, DetailNotSignedUp)
		return
	}
	telemetry.RosterChangesTotal.WithLabelValues("unregister", telemetry.OutcomeOK).Inc()
	helpers.WriteMessage(w, http.StatusOK, msg)
}

// writeRosterError maps registry errors to status codes. conflictDetail is the
// 400 message for the operation's membership conflict.
func (c *ActivityController) writeRosterError(w http.ResponseWriter, r *http.Request, op string, err error, conflictDetail string) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		telemetry.RosterChangesTotal.WithLabelValues(op, telemetry.OutcomeNotFound).Inc()
		helpers.WriteJSONError(w, http.StatusNotFound, DetailActivityNotFound)
	case errors.Is(err, domain.ErrAlreadySignedUp), errors.Is(err, domain.ErrNotSignedUp):
		telemetry.RosterChangesTotal.WithLabelValues(op, telemetry.OutcomeConflict).Inc()
		helpers.WriteJSONError(w, http.StatusBadRequest, conflictDetail)
	default:
		telemetry.RosterChangesTotal.WithLabelValues(op, telemetry.OutcomeError).Inc()
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
