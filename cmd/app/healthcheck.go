package main

import (
	"context"
	"net/http"
	"time"
)

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := app.store.Ping(ctx); err != nil {
		app.serviceUnavailableResponse(w, r, err)
		return
	}

	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.Environment,
			"version":     app.config.Version,
			"database":    app.store.DSN().Driver,
		},
	}

	if err := app.writeJSON(w, http.StatusOK, env); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
