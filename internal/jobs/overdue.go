package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper é o use case chamado a cada disparo.
type Sweeper interface {
	Execute(ctx context.Context) (int64, error)
}

const sweepTimeout = 2 * time.Minute

// StartOverdueSweep agenda o sweep de cobranças vencidas. Schedule vazio
// desliga o job e devolve nil.
func StartOverdueSweep(schedule string, sweep Sweeper) (*cron.Cron, error) {
	if schedule == "" {
		log.Println("[jobs] overdue sweep disabled")
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(schedule, func() { runSweep(sweep) }); err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[jobs] overdue sweep scheduled %q", schedule)
	return c, nil
}

func runSweep(sweep Sweeper) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := sweep.Execute(ctx); err != nil {
		log.Printf("[jobs] overdue sweep failed: %v", err)
	}
}
