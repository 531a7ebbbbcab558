package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kean-laurente/sanctupoint-booking/internal/db"
	"github.com/kean-laurente/sanctupoint-booking/internal/schedule"
)

// Church services offered through the booking UI.
var serviceTitles = []string{
	"Baptism",
	"Wedding",
	"Funeral Mass",
	"House Blessing",
	"Confession",
	"Thanksgiving Mass",
	"Counseling",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedEvents(context.Background(), pool, 14); err != nil {
		log.Fatalf("seed events: %v", err)
	}

	log.Println("seed complete")
}

// seedEvents books a few random working-day slots per day for the next `days`
// days. Hours are picked without repeats within a day so the seeded data never
// violates the one-booking-per-slot rule.
func seedEvents(ctx context.Context, pool *pgxpool.Pool, days int) error {
	log.Printf("seeding events for the next %d days", days)

	cfg := schedule.Config{WorkStartHour: 8, WorkEndHour: 17}
	slots := schedule.Slots(cfg)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	total := 0
	today := time.Now()

	for d := 1; d <= days; d++ {
		date := today.AddDate(0, 0, d).Format(schedule.DateFormat)

		perDay := gofakeit.Number(0, 3)
		used := make(map[int]bool, perDay)

		for i := 0; i < perDay; i++ {
			slot := slots[gofakeit.Number(0, len(slots)-1)]
			if used[slot.Hour24] {
				continue
			}
			used[slot.Hour24] = true

			title := serviceTitles[gofakeit.Number(0, len(serviceTitles)-1)]

			_, err := tx.Exec(ctx, `
				INSERT INTO events (id, event_date, event_time, title, customer_name, status, created_at, updated_at)
				VALUES ($1, $2::date, $3, $4, $5, 'confirmed', now(), now())
			`, uuid.New(), date, slot.Display, title, gofakeit.Name())
			if err != nil {
				return err
			}
			total++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Printf("events seeded: %d", total)
	return nil
}
