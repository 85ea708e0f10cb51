// Command corrserve serves the correlation routines over HTTP.
//
//	POST /v1/mean       {"x":[...]}
//	POST /v1/crosscorr  {"x":[...],"y":[...]}
//	POST /v1/lags       {"x":[...],"y":[...],"maxLag":n}
//	GET  /healthz
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/cwbudde/algo-corr/internal/binding"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           binding.NewRouter(),
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	log.Printf("corrserve listening on %s", *addr)
	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
