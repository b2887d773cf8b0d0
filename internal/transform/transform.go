// Package transform implements the record-level operations applied to vCard
// records: quoted-printable decoding, picture removal, phone-number and name
// formatting, type removal and inference, and the 2.1 to 3.0 version
// upgrade.
//
// Every transform is a total function from record to record: it must not
// fail on a well-formed record, and fields it does not target pass through
// untouched. Transforms are registered in a fixed pipeline order and looked
// up by key, so every frontend (CLI, TUI, HTTP) sees the same catalog.
package transform

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jmvcosta/vcfkit/internal/vcard"
)

// Func is a pure record transform. Implementations return either the input
// record unchanged or a rebuilt copy; they never mutate shared state.
type Func func(vcard.Record) vcard.Record

// Definition describes one registered transform.
type Definition struct {
	Key   string // stable identifier, e.g. "format-numbers"
	Label string // human-readable description for catalogs
	Order int    // canonical pipeline position (ascending)
	Apply Func
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

// Register adds a transform definition to the registry.
// Panics if a transform with the same key is already registered.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Key]; exists {
		panic(fmt.Sprintf("transform already registered: %s", def.Key))
	}
	registry[def.Key] = def
}

// Get returns a transform definition by key.
// Returns false if not found.
func Get(key string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns every registered transform in canonical pipeline order.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}
