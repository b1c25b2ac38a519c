package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-workflow-go/internal/handler/http/response"
)

// maxBodyBytes caps every JSON body the API accepts.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into v. An empty body leaves v untouched
// so that DTO validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	slog.Warn("request decode error", "path", r.URL.Path, "error", err)
	response.BadRequest(w, "Invalid request format", nil)
	return false
}
