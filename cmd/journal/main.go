package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/the-line/internal/config"
	"github.com/jwebster45206/the-line/internal/journal"
	"github.com/jwebster45206/the-line/internal/logger"
)

// Archive is the read side of the journal.
type Archive interface {
	Recent(ctx context.Context, n int) ([]*journal.Journey, error)
	Journey(ctx context.Context, sessionID uuid.UUID) (*journal.Journey, error)
}

// Ensure RedisJournal implements Archive
var _ Archive = (*journal.RedisJournal)(nil)

func main() {
	limit := flag.Int("n", 10, "number of recent journeys to list")
	session := flag.String("session", "", "show the key events of one journey")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.RedisURL == "" {
		fmt.Fprintln(os.Stderr, "REDIS_URL is not set; there is no journal to read.")
		os.Exit(1)
	}

	log, closer, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closer.Close() // Ignore error in defer
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rj, err := journal.NewRedisJournal(ctx, cfg.RedisURL, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open journal: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = rj.Close() // Ignore error in defer
	}()

	if *session != "" {
		err = showJourney(ctx, os.Stdout, rj, *session)
	} else {
		err = listJourneys(ctx, os.Stdout, rj, *limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listJourneys(ctx context.Context, w io.Writer, a Archive, n int) error {
	journeys, err := a.Recent(ctx, n)
	if err != nil {
		return err
	}
	if len(journeys) == 0 {
		fmt.Fprintln(w, "No journeys archived.")
		return nil
	}
	for _, j := range journeys {
		r := j.Record
		fmt.Fprintf(w, "%s  %s  %-20s %-13s %-9s turns=%d distance=%d\n",
			j.SessionID.String()[:8], j.FinishedAt.Format("2006-01-02 15:04"),
			r.Player, r.Role, r.Ending, r.Turns, r.Distance)
	}
	return nil
}

func showJourney(ctx context.Context, w io.Writer, a Archive, raw string) error {
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", raw, err)
	}
	j, err := a.Journey(ctx, id)
	if errors.Is(err, journal.ErrNotFound) {
		return fmt.Errorf("no journey archived for %s", id)
	}
	if err != nil {
		return err
	}

	r := j.Record
	fmt.Fprintf(w, "%s (%s)\n", r.Player, strings.ReplaceAll(r.Role, "_", " "))
	fmt.Fprintf(w, "Ending: %s after %d turns, %d miles\n", r.Ending, r.Turns, r.Distance)
	if len(j.Events) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nKey events:")
	for _, e := range j.Events {
		fmt.Fprintf(w, "- %s\n", e)
	}
	return nil
}
