package api

import (
	"net/http"

	"github.com/jobdeck/jobdeck/api/rest"
	"github.com/jobdeck/jobdeck/service"
	"github.com/jobdeck/jobdeck/store"
)

type JobdeckAPI struct {
	restHandler *rest.Handler
	authLimiter *ipLimiter
}

func NewJobdeckAPI(
	jobdeckStore store.JobdeckStore,
	jwtSecret []byte,
	encryptionSecret string,
) (*JobdeckAPI, error) {
	svc, err := service.NewService(jobdeckStore, jwtSecret, encryptionSecret)
	if err != nil {
		return nil, err
	}

	return &JobdeckAPI{
		restHandler: rest.NewHandler(svc),
		// Credential endpoints only; generous enough for a human, tight
		// enough to slow down brute force
		authLimiter: newIPLimiter(1, 10),
	}, nil
}

func (jobdeckAPI *JobdeckAPI) RegisterRoutes(mux *http.ServeMux) {
	// Health check endpoint (no auth required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/api/register", withCORS(jobdeckAPI.limitByIP(jobdeckAPI.restHandler.HandleRegister)))
	mux.HandleFunc("/api/login", withCORS(jobdeckAPI.limitByIP(jobdeckAPI.restHandler.HandleLogin)))
	mux.HandleFunc("/api/applications", withCORS(jobdeckAPI.restHandler.HandleApplications))
	mux.HandleFunc("/api/applications/{id}", withCORS(jobdeckAPI.restHandler.HandleApplicationById))
}

// The dashboard frontend is served from a different origin, so every API
// route answers preflight requests and sets permissive CORS headers.
func withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func (jobdeckAPI *JobdeckAPI) limitByIP(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !jobdeckAPI.authLimiter.allow(clientIP(r)) {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
