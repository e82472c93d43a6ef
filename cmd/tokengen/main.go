// Command tokengen issues a bearer token for the certify endpoint.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"receipt-certifier/config"
	"receipt-certifier/internal/service"
)

func main() {
	subject := flag.String("subject", "", "client identifier to embed as the token subject")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("RCPT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is required (RCPT_JWT_SECRET)")
		os.Exit(1)
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	token, expiresAt, err := tokenSvc.Generate(*subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
}
