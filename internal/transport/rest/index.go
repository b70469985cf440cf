package rest

import (
	"net/http"

	"github.com/heartmarshall/learninglog-backend/pkg/ctxutil"
)

type indexResponse struct {
	App           string `json:"app"`
	Version       string `json:"version"`
	Authenticated bool   `json:"authenticated"`
}

// Index handles GET /.
func Index(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, ok := ctxutil.UserIDFromCtx(r.Context())
		writeJSON(w, http.StatusOK, indexResponse{
			App:           "learninglog",
			Version:       version,
			Authenticated: ok,
		})
	}
}
