package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/ChristianPavilonis/orderdesk/internal/adapter/orderdesk"
	"github.com/ChristianPavilonis/orderdesk/internal/domain/model"
	"github.com/ChristianPavilonis/orderdesk/internal/logger"
)

var statuses = []model.Status{
	model.StatusPending,
	model.StatusInProgress,
	model.StatusComplete,
	model.StatusCanceled,
}

// seed posts randomly generated orders against a running instance, useful
// for demos and manual testing. A third of the orders get moved to another
// status afterwards so the data covers the whole lifecycle.
func main() {
	gofakeit.Seed(time.Now().UnixNano())

	target := env("SEED_TARGET", "http://localhost:3000")
	count := mustInt("SEED_COUNT", 10)
	gap := mustInt("SEED_INTERVAL_MS", 0)
	log.Printf("target=%s count=%d interval=%dms", target, count, gap)

	client, err := orderdesk.NewHTTPClient(target, logger.New())
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	ctx := context.Background()
	for i := 0; i < count; i++ {
		status := statuses[gofakeit.Number(0, len(statuses)-1)]
		order, err := client.CreateOrder(ctx, int64(gofakeit.Number(100, 100000)), &status)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Printf("created id=%d amount=%d status=%s", order.ID, order.Amount, order.Status)

		if gofakeit.Number(0, 2) == 0 {
			next := statuses[gofakeit.Number(0, len(statuses)-1)]
			if err := client.UpdateOrderStatus(ctx, order.ID, next); err != nil {
				log.Fatalf("seed: %v", err)
			}
			log.Printf("updated id=%d status=%s", order.ID, next)
		}

		if gap > 0 {
			time.Sleep(time.Duration(gap) * time.Millisecond)
		}
	}
	log.Printf("done: created=%d", count)
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", k, err)
	}
	return n
}
