// Package sqlite contains SQLite implementations of the store's
// repository interfaces. Item lists travel as JSON text columns since
// imported rows carry arbitrary spreadsheet fields.
package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/example/labops/internal/core/item"
	"github.com/example/labops/internal/ports/secondary"
)

// encodeItems serializes an item list for storage. A nil list stores as
// an empty JSON array, never SQL NULL.
func encodeItems(items []item.Item) (string, error) {
	if items == nil {
		items = []item.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode items: %w", err)
	}
	return string(data), nil
}

func decodeItems(data string) ([]item.Item, error) {
	if data == "" {
		return nil, nil
	}
	var items []item.Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func encodeInts(values []int) (string, error) {
	if values == nil {
		values = []int{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode index list: %w", err)
	}
	return string(data), nil
}

func decodeInts(data string) ([]int, error) {
	if data == "" {
		return nil, nil
	}
	var values []int
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("failed to decode index list: %w", err)
	}
	return values, nil
}

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode id list: %w", err)
	}
	return string(data), nil
}

func decodeIDs(data string) ([]string, error) {
	if data == "" || data == "null" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode id list: %w", err)
	}
	return ids, nil
}

// chunkIDs splits an id list into store-sized batches. Callers issue one
// physical delete per chunk, sequentially.
func chunkIDs(ids []string) [][]string {
	var chunks [][]string
	for len(ids) > secondary.BatchChunkSize {
		chunks = append(chunks, ids[:secondary.BatchChunkSize])
		ids = ids[secondary.BatchChunkSize:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
