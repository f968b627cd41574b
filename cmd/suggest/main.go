// README: One-shot CLI; asks the configured provider for a trip suggestion and prints the JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"payana/internal/ai"
	"payana/internal/config"
	"payana/internal/intent"
	"payana/internal/logging"
	"payana/internal/suggestion"
)

type options struct {
	from, to, say, duration, profile, budget, interests, notes string
}

func main() {
	var o options
	flag.StringVar(&o.from, "from", "", "starting point")
	flag.StringVar(&o.to, "to", "", "comma separated destinations")
	flag.StringVar(&o.say, "say", "", "free text like \"plan a trip to Goa from Mumbai\"; fills -from and -to")
	flag.StringVar(&o.duration, "duration", "", "trip length, e.g. \"3 days\"")
	flag.StringVar(&o.profile, "profile", "", "traveler profile")
	flag.StringVar(&o.budget, "budget", "", "budget tier")
	flag.StringVar(&o.interests, "interests", "", "interests, free text")
	flag.StringVar(&o.notes, "notes", "", "extra notes")
	flag.Parse()

	if err := run(o); err != nil {
		log.Fatal(err)
	}
}

// run does the work so deferred cleanup happens before main exits.
func run(o options) error {
	if o.say != "" {
		ti, ok := intent.Extract(o.say)
		if !ok {
			return fmt.Errorf("no trip intent in %q", o.say)
		}
		o.from, o.to = ti.Origin, ti.Destination
	}

	c := suggestion.Constraints{
		StartingPoint:   o.from,
		Destinations:    splitList(o.to),
		Duration:        o.duration,
		TravelerProfile: o.profile,
		BudgetTier:      o.budget,
		Interests:       o.interests,
		Notes:           o.notes,
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid constraints: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	if cfg.AI.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.AI.Timeout)
		defer cancel()
	}

	gen, closeGen, err := ai.NewFromConfig(ctx, cfg.AI)
	if err != nil {
		return err
	}
	defer func() { _ = closeGen() }()

	res, err := suggestion.NewNormalizer(gen, logger).Synthesize(ctx, c)
	if err != nil {
		return fmt.Errorf("suggestion failed, try again: %w", err)
	}

	fmt.Fprintf(os.Stderr, "source: %s\n", res.Source)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res.Document)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
