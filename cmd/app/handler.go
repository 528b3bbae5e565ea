package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/blogist/internal/blogservice"
	"github.com/sushihentaime/blogist/internal/common"
)

// blogErrorResponse maps service errors for a request on blog id. An id
// of 0 means the request named no blog.
func (app *application) blogErrorResponse(w http.ResponseWriter, r *http.Request, id int64, err error) {
	var validationErr common.ValidationError

	switch {
	case errors.Is(err, blogservice.ErrRecordNotFound):
		app.blogNotFoundResponse(w, r, id)
	case errors.As(err, &validationErr):
		app.failedValidationResponse(w, r, validationErr.Errors)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.BlogInput

	err := app.readBlogInput(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	blog, err := app.blogService.CreateBlog(r.Context(), &input)
	if err != nil {
		app.blogErrorResponse(w, r, 0, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, blog)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readBlogID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input blogservice.BlogInput

	err = app.readBlogInput(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err = app.blogService.UpdateBlog(r.Context(), id, &input)
	if err != nil {
		app.blogErrorResponse(w, r, id, err)
		return
	}

	err = app.writeJSON(w, http.StatusAccepted, "instance updated")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBlogHandler answers 204 without a body; net/http rejects body
// writes on 204 responses.
func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readBlogID(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.blogService.DeleteBlog(r.Context(), id)
	if err != nil {
		app.blogErrorResponse(w, r, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
