// Command tokengen mints a session token from credentials in the environment.
// Useful for smoke-testing client builds without standing up a backend.
//
// Set either VIDEO_API_KEY and VIDEO_API_SECRET, or VIDEO_APPLICATION_ID and
// VIDEO_PRIVATE_KEY_PATH. A .env file in the working directory is read if
// present.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/videokit/pkg/session"
	"github.com/dmitrymomot/videokit/pkg/token"
)

type config struct {
	APIKey         int    `env:"VIDEO_API_KEY"`
	APISecret      string `env:"VIDEO_API_SECRET"`
	ApplicationID  string `env:"VIDEO_APPLICATION_ID"`
	PrivateKeyPath string `env:"VIDEO_PRIVATE_KEY_PATH"`
}

func main() {
	sessionID := flag.String("session", "", "session id to mint a token for (required)")
	role := flag.String("role", "publisher", "token role: subscriber, publisher or moderator")
	ttl := flag.Duration("ttl", 0, "token lifetime; 0 uses the platform default")
	data := flag.String("data", "", "connection data attached to the token")
	legacy := flag.Bool("legacy", false, "emit the legacy T1== format instead of a JWT")
	flag.Parse()

	if *sessionID == "" {
		flag.Usage()
		os.Exit(2)
	}

	// The .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	sess, err := buildSession(cfg, *sessionID)
	if err != nil {
		log.Fatalf("build session: %v", err)
	}

	opts := token.Options{Role: token.Role(*role), Data: *data}
	if *ttl > 0 {
		opts.ExpireTime = time.Now().Add(*ttl).Unix()
	}

	gen := token.NewGenerator()
	var tok string
	if *legacy {
		tok, err = gen.GenerateLegacy(sess, opts)
	} else {
		tok, err = gen.Generate(sess, opts)
	}
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(tok)
}

func buildSession(cfg config, id string) (session.Session, error) {
	switch {
	case cfg.ApplicationID != "":
		keyPEM, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return session.Session{}, fmt.Errorf("read private key: %w", err)
		}
		return session.NewWithApplication(id, session.ApplicationCredential{
			ApplicationID: cfg.ApplicationID,
			PrivateKey:    keyPEM,
		}), nil
	case cfg.APIKey != 0:
		return session.New(id, session.LegacyCredential{
			APIKey:    cfg.APIKey,
			APISecret: cfg.APISecret,
		}), nil
	default:
		return session.Session{}, errors.New("set VIDEO_API_KEY/VIDEO_API_SECRET or VIDEO_APPLICATION_ID/VIDEO_PRIVATE_KEY_PATH")
	}
}
