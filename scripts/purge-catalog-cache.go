package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"

	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	redisclient "github.com/muutmoku/ao-build-share/internal/redis"
	catalogrepo "github.com/muutmoku/ao-build-share/internal/repositories/catalog"
)

// cachedDocument mirrors the envelope written by the catalog repository
type cachedDocument struct {
	Slot      string `json:"slot"`
	Body      string `json:"body"`
	FetchedAt int64  `json:"fetched_at"`
}

// Usage: go run scripts/purge-catalog-cache.go [--all]
// Without --all only entries that can no longer be decoded are removed.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	purgeAll := len(os.Args) > 1 && os.Args[1] == "--all"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning cached catalog documents...")

	iter := client.Scan(ctx, 0, catalogrepo.KeyPattern, 0).Iterator()

	var purgeKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		if purgeAll {
			purgeKeys = append(purgeKeys, key)
			continue
		}

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := checkDocument(key, data); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			purgeKeys = append(purgeKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, %d to remove\n", checkedCount, len(purgeKeys))

	if len(purgeKeys) == 0 {
		fmt.Println("Nothing to purge!")
		return
	}

	for _, key := range purgeKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty answer aborts

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	var pipe redisclient.Pipeliner = client.Pipeline()
	for _, key := range purgeKeys {
		pipe.Del(ctx, key)
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		log.Fatal("Failed to delete entries:", err)
	}
	fmt.Printf("\nDeleted %d entries\n", len(cmds))
}

// checkDocument returns why a cached entry is unusable, or "" when it is fine
func checkDocument(key, data string) string {
	var doc cachedDocument
	if err := sonic.UnmarshalString(data, &doc); err != nil {
		return "envelope is not valid JSON"
	}

	slot, ok := equipment.SlotFromString(strings.TrimPrefix(key, strings.TrimSuffix(catalogrepo.KeyPattern, "*")))
	if !ok {
		return "key names an unknown slot"
	}
	if doc.Slot != slot.String() {
		return fmt.Sprintf("envelope slot %q does not match key", doc.Slot)
	}
	if !gjson.Valid(doc.Body) {
		return "document body is not valid JSON"
	}
	if !gjson.Parse(doc.Body).IsArray() {
		return "document body is not a record list"
	}
	return ""
}
