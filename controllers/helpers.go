package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/franzhentze92/botanic-care-backend/middleware"
	"github.com/franzhentze92/botanic-care-backend/utils"
)

func claimsFromRequest(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	return claims, ok
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
