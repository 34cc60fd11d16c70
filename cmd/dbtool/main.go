package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"dayplan-service/internal/adapters/repositories"
	"dayplan-service/internal/config"
	"dayplan-service/internal/platform/db"
)

var (
	dbPath   string
	seedPath string
)

// dbtool manages the content database outside the server process: schema
// initialization for SQLite or Postgres, JSON seeding for the SQLite pack.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	rootCmd := &cobra.Command{
		Use:   "dbtool",
		Short: "Manage the day-plan content database",
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.Get("DB_PATH", "data/content.db"), "path to the SQLite content pack")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the content database schema",
		Run: func(cmd *cobra.Command, args []string) {
			conn := open()
			defer conn.Close()

			log.Println("Initializing database schema...")
			if err := repositories.InitSchema(conn); err != nil {
				log.Fatalf("schema initialization failed: %v", err)
			}
			log.Println("Schema ready.")
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the SQLite content pack from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			if os.Getenv("DATABASE_URL") != "" {
				log.Fatal("seed targets the SQLite pack; unset DATABASE_URL")
			}

			conn := open()
			defer conn.Close()

			log.Println("Initializing database schema...")
			if err := repositories.InitSchema(conn); err != nil {
				log.Fatalf("schema initialization failed: %v", err)
			}

			log.Printf("Seeding database from %s...", seedPath)
			if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
				log.Fatalf("seeding failed: %v", err)
			}
			log.Println("Seeding complete.")
		},
	}
	seedCmd.Flags().StringVar(&seedPath, "seed", config.Get("SEED_PATH", "data/seeds/pois.json"), "path to the JSON seed file")

	rootCmd.AddCommand(initCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// open connects to Postgres when DATABASE_URL is set, otherwise to the
// SQLite pack at --db.
func open() *sql.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		conn, err := db.OpenPostgres(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		return conn
	}

	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	return conn
}
