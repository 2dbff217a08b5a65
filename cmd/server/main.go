package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"trailer-routing-service/internal/adapters/cache"
	"trailer-routing-service/internal/adapters/mapbox"
	"trailer-routing-service/internal/api"
	"trailer-routing-service/internal/platform/db"
	"trailer-routing-service/internal/ports"
	"trailer-routing-service/internal/spatial"
)

// main is the application composition root.
// It wires concrete adapters (Mapbox, Redis/Postgres caches) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")

	token := os.Getenv("MAPBOX_TOKEN")
	if strings.TrimSpace(token) == "" {
		log.Fatal("MAPBOX_TOKEN is required")
	}

	// Geocode results are stable, so a persistent cache avoids repeated
	// provider calls. Redis wins when both backends are configured.
	var geocodeCache ports.GeocodeCache
	switch {
	case os.Getenv("REDIS_ADDR") != "":
		client := redis.NewClient(&redis.Options{Addr: os.Getenv("REDIS_ADDR")})
		geocodeCache = cache.NewRedisGeocodeCache(client)
		log.Printf("geocode cache backend=redis addr=%s", os.Getenv("REDIS_ADDR"))
	case os.Getenv("DATABASE_URL") != "":
		sqlDB, err := db.Open(os.Getenv("DATABASE_URL"))
		if err != nil {
			log.Fatal(err)
		}
		defer sqlDB.Close()
		if err := cache.InitSchema(sqlDB); err != nil {
			log.Fatal(err)
		}
		geocodeCache = cache.NewSQLGeocodeCache(sqlDB)
		log.Printf("geocode cache backend=postgres")
	default:
		log.Printf("geocode cache backend=none")
	}

	client, err := mapbox.NewClient(token, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(client, client, spatial.LegIntersectsZone)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
