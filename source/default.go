package source

import (
	"bytes"
	_ "embed"
	"sync"
)

// The standard dataset is a subset of emoji-toolkit's emoji_strategy.json.
//go:embed data/emoji_strategy.json
var defaultData []byte

var (
	defaultSource KeyedSource
	defaultOnce   sync.Once
)

// Default returns the standard emoji source, keyed by code-point strings.
// It is decoded once on first use. Clients must not modify it.
func Default() KeyedSource {
	defaultOnce.Do(func() {
		ks, err := DecodeKeyed(bytes.NewReader(defaultData))
		if err != nil {
			panic(err) // embedded data is broken
		}
		defaultSource = ks
	})
	return defaultSource
}
