// Command starfield-sweep generates many seeds per neighbour iteration count
// and reports the resulting density mix and leftover variant collisions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"starfield/internal/app"
	"starfield/internal/sweep"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 200, "seeds to generate per iteration count")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	iterations := flag.String("iterations", "0,1,2,3,4,5", "comma-separated neighbour iteration counts")
	flag.Parse()

	logger, closer, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	settings, err := cfg.Settings()
	if err != nil {
		logger.WithError(err).Fatal("invalid settings")
	}
	var counts []int
	for _, field := range strings.Split(*iterations, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n < 0 {
			logger.WithField("value", field).Fatal("invalid iteration count")
		}
		counts = append(counts, n)
	}

	scenarios := sweep.Scenarios(settings, counts, settings.Seed, *seeds)
	fmt.Printf("Sweeping %d maps (%d workers, %dx%d grid)\n", len(scenarios), *workers, settings.Columns, settings.Rows)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	results := sweep.Run(ctx, scenarios, *workers)
	elapsed := time.Since(start)

	for _, s := range sweep.Summarise(results) {
		fmt.Println(s)
	}
	fmt.Printf("Completed in %s\n", elapsed.Round(time.Millisecond))
}
