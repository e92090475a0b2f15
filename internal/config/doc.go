// Package config manages process-level settings stored at
// ~/.skillyard/config.yaml. It provides functions to load, read, and write
// configuration keys such as the hub endpoint and the clone timeout.
// Per-user catalog state (tool toggles, custom tools) lives in the settings
// package instead; this layer only carries operational knobs.
package config
