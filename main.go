package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jobdeck/jobdeck/api"
	"github.com/jobdeck/jobdeck/store/dynamo"
)

const (
	defaultTableName = "Jobdeck"
	defaultPort      = 8080
	maxPortRetries   = 10
)

func main() {
	ctx := context.Background()
	devMode := os.Getenv("DEV_MODE") == "true"

	if devMode {
		godotenv.Load()
	}

	tableName := os.Getenv("DYNAMODB_TABLE")
	if tableName == "" {
		tableName = defaultTableName
	}

	jobdeckStore, err := dynamo.NewDynamoJobdeckStore(ctx, devMode, os.Getenv("DYNAMODB_ENDPOINT"), tableName)
	if err != nil {
		log.Fatalf("Failed to create dynamodb store: %v", err)
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}

	encryptionSecret := os.Getenv("ENCRYPTION_KEY")
	if encryptionSecret == "" {
		log.Fatal("ENCRYPTION_KEY must be set")
	}

	jobdeckAPI, err := api.NewJobdeckAPI(jobdeckStore, jwtSecret, encryptionSecret)
	if err != nil {
		log.Fatalf("Failed to create jobdeck api: %v", err)
	}

	mux := http.NewServeMux()
	jobdeckAPI.RegisterRoutes(mux)

	port := defaultPort
	if p := os.Getenv("PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("Invalid PORT value %q: %v", p, err)
		}
		port = parsed
	}

	log.Fatal(listenWithRetry(port, mux))
}

// listenWithRetry binds the given port, moving to the next one on a bind
// conflict so a stale process never blocks startup.
func listenWithRetry(port int, handler http.Handler) error {
	for i := 0; i < maxPortRetries; i++ {
		addr := ":" + strconv.Itoa(port+i)
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			if errors.Is(err, syscall.EADDRINUSE) {
				log.Printf("Port %d is in use, trying %d...", port+i, port+i+1)
				continue
			}
			return err
		}

		log.Printf("Server is running on port %d", port+i)
		return http.Serve(ln, handler)
	}

	return errors.New("no free port found")
}
