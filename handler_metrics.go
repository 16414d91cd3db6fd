package main

import (
	"fmt"
	"net/http"
)

var metricsTemplate = `<html>
  <body>
    <h1>Welcome, Chirpy Admin</h1>
    <p>Chirpy has been visited %d times!</p>
  </body>
</html>`

func (cfg *apiConfig) handlerDisplayMetrics(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(metricsTemplate, cfg.fileserverHits.Load())))
	return nil
}

func (cfg *apiConfig) handlerResetMetrics(w http.ResponseWriter, req *http.Request) error {
	hits := cfg.fileserverHits.Reset()
	cfg.log.Info("hit counter reset")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf("Hits: %d", hits)))
	return nil
}
