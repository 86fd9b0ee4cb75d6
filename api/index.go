package handler

import (
	"net/http"
	"sync"

	"homestay/config"
	"homestay/di"
	"homestay/shared/logger"
	httpTransport "homestay/transport/http"
)

var (
	server *httpTransport.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. The dependency graph is built on the first request and
// reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
