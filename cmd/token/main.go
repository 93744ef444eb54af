// Command token mints a bearer token for calling the API as a given player.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/BuyerMerchant_Go/internal/auth"
)

func main() {
	performer := flag.String("id", "", "player id the token authenticates (required)")
	name := flag.String("name", "", "player display name")
	ttl := flag.Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET must be set")
		os.Exit(2)
	}
	if *performer == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *name == "" {
		*name = *performer
	}

	token, err := auth.GenerateToken(secret, *performer, *name, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to mint token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", time.Now().Add(*ttl).Format(time.RFC3339))
}
