package httpserver

import (
	"encoding/json"
	"net/http"

	"hackathon/backend/libs/httpclient"
)

// Routes holds the handlers served by the auth service. Nil entries are not mounted.
type Routes struct {
	Signup http.HandlerFunc
	Signin http.HandlerFunc
	Health http.HandlerFunc
}

// NewRouter mounts each route behind a single-method guard.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	mount := func(pattern, verb string, h http.HandlerFunc) {
		if h != nil {
			mux.Handle(pattern, allowOnly(verb, h))
		}
	}
	mount("/auth/signup", http.MethodPost, routes.Signup)
	mount("/auth/signin", http.MethodPost, routes.Signin)
	mount("/health", http.MethodGet, routes.Health)
	return mux
}

func allowOnly(verb string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != verb {
			w.Header().Set("Allow", verb)
			writeErrorEnvelope(w, http.StatusMethodNotAllowed, "method "+r.Method+" not allowed")
			return
		}
		h(w, r)
	}
}

// writeErrorEnvelope answers with the {"error": ...} body clients decode on failure.
func writeErrorEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(httpclient.ErrorEnvelope{Error: message})
}
