package middleware

import (
	"net/http"

	"github.com/hliu742/minichat/pkg/utils"
)

// CORS allows browser clients from any origin and answers preflight
// requests with 200 and an empty JSON object.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, User-ID")

		if r.Method == http.MethodOptions {
			utils.RespondJSON(w, http.StatusOK, map[string]string{})
			return
		}

		next.ServeHTTP(w, r)
	})
}
