/*
main.go - Application entry point

PURPOSE:
  Starts the tenure expiry engine's HTTP facade. Handles configuration,
  dependency wiring, and graceful shutdown. The server is stateless:
  nothing survives a restart because nothing is stored.

CONFIGURATION:
  Flags, each overridable by environment (a .env file is honored when
  present):

  -port / PORT          HTTP server port (default: 8080)
  -locale / LOCALE      Display locale, "ko" or "en" (default: ko)
  -policy / POLICY_FILE JSON rule-table override file (default: none,
                        built-in 2025 tables)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for
  active requests, exit.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jeonbo/tenure-engine/api"
	"github.com/jeonbo/tenure-engine/factory"
	"github.com/jeonbo/tenure-engine/format"
)

func main() {
	// A .env file is optional; absence is the normal case.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8080), "HTTP server port")
	locale := flag.String("locale", envStr("LOCALE", "ko"), "display locale (ko, en)")
	policyFile := flag.String("policy", envStr("POLICY_FILE", ""), "JSON rule-table override file")
	flag.Parse()

	log := slog.With("component", "server")

	policy, err := factory.LoadPolicyFile(*policyFile)
	if err != nil {
		log.Error("failed to load policy file", "path", *policyFile, "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(policy, format.New(*locale))
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", server.Addr, "locale", *locale)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
