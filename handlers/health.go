/*
# Module: handlers/health.go
Health check and root endpoint handlers.

## Linked Modules
(None - simple handlers with no dependencies)

## Tags
http, health, api

## Exports
HandleHealth, HandleRoot

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/health.go" ;
    code:description "Health check and root endpoint handlers" ;
    code:exports :HandleHealth, :HandleRoot ;
    code:tags "http", "health", "api" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// HandleHealth handles GET /api/health
// Returns a simple health status response
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// HandleRoot handles GET /
// Returns a short service banner
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprint(w, "🌍 Divisional Secretariat office locator is running!")
}
