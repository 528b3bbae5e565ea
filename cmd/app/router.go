package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.routeNotFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// blog service
	router.HandlerFunc(http.MethodGet, "/blog", app.getAllBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/blog", app.createBlogHandler)
	router.HandlerFunc(http.MethodPut, "/blog/:id", app.updateBlogHandler)
	router.HandlerFunc(http.MethodDelete, "/blog/:id", app.deleteBlogHandler)

	return app.recoverPanic(app.logRequest(router))
}
