package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"dayplan-service/internal/adapters/cache"
	"dayplan-service/internal/adapters/geo"
	"dayplan-service/internal/adapters/hours"
	"dayplan-service/internal/adapters/repositories"
	"dayplan-service/internal/api"
	"dayplan-service/internal/config"
	"dayplan-service/internal/platform/db"
	"dayplan-service/internal/ports"
	"dayplan-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite content pack, haversine geo, weekly
// opening hours, optional Redis plan cache) behind ports and starts the HTTP
// server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/content.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/pois.json")
	port := config.Get("PORT", "8080")

	conn, err := openContentDB(dbPath, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	engine := services.NewEngine(geo.NewService(), hours.NewWeeklyEvaluator())
	repo := repositories.NewSQLPOIRepository(conn)

	// The engine is deterministic, so plans are memoizable. Redis is optional;
	// without it every request recomputes, which is still cheap.
	var planCache ports.PlanCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ttl := 15 * time.Minute
		if v := os.Getenv("PLAN_CACHE_TTL_MINUTES"); v != "" {
			minutes, err := strconv.Atoi(v)
			if err != nil || minutes <= 0 {
				log.Fatalf("invalid PLAN_CACHE_TTL_MINUTES: %q", v)
			}
			ttl = time.Duration(minutes) * time.Minute
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		planCache = cache.NewRedisPlanCache(client, ttl)
		log.Printf("Plan cache enabled addr=%s ttl=%s", addr, ttl)
	}

	router := api.NewRouter(repo, engine, planCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openContentDB opens the SQLite content pack, or a Postgres content database
// when DATABASE_URL is set, and prepares schema and seed data for local runs.
func openContentDB(dbPath, seedPath string) (*sql.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		// Postgres content is managed out of band; only verify the connection.
		return db.OpenPostgres(databaseURL)
	}

	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, err
	}

	if err := repositories.InitSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
