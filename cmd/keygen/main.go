package main

import (
	"fmt"
	"os"

	"github.com/arnavshah/office-dashboard/pkg/auth"
	"github.com/joho/godotenv"
)

// keygen prints a bcrypt hash for SHUFFLE_PASSWORD_HASH so the plain shuffle
// password never has to live in the deployment environment.
func main() {
	_ = godotenv.Load("../.env")

	password := os.Getenv("SHUFFLE_PASSWORD")
	if len(os.Args) >= 2 {
		password = os.Args[1]
	}
	if password == "" {
		fmt.Println("Usage: go run ./cmd/keygen <password>")
		fmt.Println("       (or set SHUFFLE_PASSWORD in .env)")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Printf("Error: could not hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("SHUFFLE_PASSWORD_HASH=%s\n", hash)
}
