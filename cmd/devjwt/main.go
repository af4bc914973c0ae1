package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/nu-student-clubs/clubs-admin/internal/platform/auth/jwtverifier"
	"github.com/nu-student-clubs/clubs-admin/internal/platform/config"
)

// Tiny dev-only token issuer.
//
// It signs HS256 tokens with the same JWT_SECRET/JWT_ISSUER/JWT_AUDIENCE the
// api verifies, so clubsctl can be pointed at a backend running with
// AUTH_MODE=jwt:
//
//	devjwt -sub admin@nu.edu.eg            print one token
//	devjwt -serve -port 5556               GET /token?sub=admin@nu.edu.eg

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	sub := flag.String("sub", "", "subject to mint a token for")
	serve := flag.Bool("serve", false, "serve GET /token instead of printing one token")
	port := flag.String("port", "5556", "listen port for -serve")
	flag.Parse()

	cfg, err := config.LoadServer(*configFile)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if err := cfg.JWT.Validate(); err != nil {
		log.Fatalf("invalid jwt config: %v", err)
	}
	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	if !*serve {
		token, err := jwtverifier.Sign(cfg.JWT, strings.TrimSpace(*sub), time.Now().UTC(), ttl)
		if err != nil {
			log.Fatalf("mint token: %v", err)
		}
		fmt.Fprintln(os.Stdout, token)
		return
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Mint a JWT:
	//   GET /token?sub=admin@nu.edu.eg
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		sub := strings.TrimSpace(r.URL.Query().Get("sub"))
		if sub == "" {
			http.Error(w, "missing sub", http.StatusBadRequest)
			return
		}

		now := time.Now().UTC()
		token, err := jwtverifier.Sign(cfg.JWT, sub, now, ttl)
		if err != nil {
			http.Error(w, "failed to mint token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": token,
			"sub":   sub,
			"iss":   cfg.JWT.Issuer,
			"aud":   cfg.JWT.Audience,
			"exp":   now.Add(ttl).Unix(),
		})
	})

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("devjwt listening on :%s (iss=%s aud=%s ttl=%s)", *port, cfg.JWT.Issuer, cfg.JWT.Audience, ttl)
	log.Fatal(srv.ListenAndServe())
}
