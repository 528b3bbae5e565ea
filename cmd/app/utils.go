package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sushihentaime/blogist/internal/blogservice"
)

// maxBodyBytes caps blog create and update payloads.
const maxBodyBytes = 1 << 20

type envelope map[string]any

// writeJSON answers with data encoded as indented JSON. data may be a blog,
// a slice of blogs, a bare string or an envelope. Only encoding failures
// are reported; nothing has been written to w in that case.
func (app *application) writeJSON(w http.ResponseWriter, status int, data any) error {
	body, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))

	return nil
}

// readBlogInput decodes the request body into dst. Unknown fields are
// ignored; the returned error is safe to show to the client.
func (app *application) readBlogInput(w http.ResponseWriter, r *http.Request, dst *blogservice.BlogInput) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(dst); err != nil {
		return describeDecodeError(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON value")
	}

	return nil
}

func describeDecodeError(err error) error {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		maxBytesErr *http.MaxBytesError
	)

	switch {
	case errors.Is(err, io.EOF):
		return errors.New("request body must not be empty")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("request body contains badly-formed JSON")
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("request body contains badly-formed JSON (at character %d)", syntaxErr.Offset)
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return fmt.Errorf("request body contains an invalid value for the %q field", typeErr.Field)
	case errors.As(err, &typeErr):
		return fmt.Errorf("request body contains incorrect JSON type (at character %d)", typeErr.Offset)
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("request body must not be larger than %d bytes", maxBytesErr.Limit)
	default:
		return err
	}
}

// readBlogID parses the :id route parameter.
func (app *application) readBlogID(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID parameter %q", raw)
	}

	return id, nil
}
