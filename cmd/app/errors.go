package main

import (
	"fmt"
	"log/slog"
	"net/http"
)

const internalErrorMessage = "the server encountered a problem and could not process your request"

// writeError sends {"detail": detail}. If even that fails the client gets
// a bare 500.
func (app *application) writeError(w http.ResponseWriter, r *http.Request, status int, detail any) {
	if err := app.writeJSON(w, status, envelope{"detail": detail}); err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) logError(r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, err.Error(),
		slog.String("method", r.Method),
		slog.String("uri", r.URL.RequestURI()),
	)
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeError(w, r, http.StatusInternalServerError, internalErrorMessage)
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeError(w, r, http.StatusServiceUnavailable, "the service is temporarily unavailable")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeError(w, r, http.StatusBadRequest, err.Error())
}

// blogNotFoundResponse names the missing id so clients can tell which
// request missed.
func (app *application) blogNotFoundResponse(w http.ResponseWriter, r *http.Request, id int64) {
	app.writeError(w, r, http.StatusNotFound, fmt.Sprintf("blog with id %d not found", id))
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	app.writeError(w, r, http.StatusUnprocessableEntity, fields)
}

func (app *application) routeNotFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.writeError(w, r, http.StatusNotFound, "resource not found")
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
