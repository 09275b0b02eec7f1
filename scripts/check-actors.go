package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/special-api/internal/config"
	"github.com/KirkDiggler/special-api/internal/engine"
	"github.com/KirkDiggler/special-api/internal/entities"
	"github.com/KirkDiggler/special-api/internal/redis"
	"github.com/KirkDiggler/special-api/internal/rules"
)

const (
	actorPattern = "actor:*"
	indexPrefix  = "actor:player:"
)

// Scans stored actors, reporting documents that no longer decode or validate
// and rule elements that fail to construct. Broken documents can be deleted.
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	eng, err := engine.New(&engine.Config{Factory: rules.DefaultRegistry()})
	if err != nil {
		log.Fatal("Failed to create engine:", err)
	}

	fmt.Println("Connected to Redis:", cfg.RedisAddr)
	fmt.Println("Scanning stored actors...")

	iter := client.Scan(ctx, 0, actorPattern, 0).Iterator()

	var brokenKeys []string
	var checkedCount, invalidRules int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, indexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		a := &entities.Actor{}
		if err := json.Unmarshal([]byte(data), a); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			brokenKeys = append(brokenKeys, key)
			continue
		}
		if err := a.Validate(); err != nil {
			fmt.Printf("✗ Invalid actor in %s: %v\n", key, err)
			brokenKeys = append(brokenKeys, key)
			continue
		}
		if err := eng.PrepareActor(ctx, a); err != nil {
			fmt.Printf("✗ Preparation failed for %s: %v\n", key, err)
			brokenKeys = append(brokenKeys, key)
			continue
		}

		for _, item := range a.Items {
			for i, el := range item.RuleElements() {
				if _, ok := el.(rules.Element); ok && !el.HasErrors() {
					continue
				}
				invalidRules++
				fmt.Printf("! %s item %s rule %d is invalid: %s\n", key, item.ID, i, el.RawSource())
			}
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d actors, found %d broken documents and %d invalid rule elements\n",
		checkedCount, len(brokenKeys), invalidRules)

	if len(brokenKeys) == 0 {
		fmt.Println("No broken documents found!")
		return
	}

	fmt.Println("\nBroken keys:")
	for _, key := range brokenKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these documents? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	for _, key := range brokenKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete! Stale player index entries are pruned on the next list.")
}
