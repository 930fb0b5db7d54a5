package archive

import (
	"github.com/ethereum/go-ethereum/log"
)

// DefaultConfig contains the default settings used by New.
var DefaultConfig = Config{
	Suffix:     ".huf",
	Marker:     "_unc",
	BufferSize: 64 * 1024,
}

// Config holds the settings of an Archiver.
type Config struct {
	// Suffix is appended to an input path to name its compressed artifact.
	Suffix string

	// Marker is inserted before the original extension when naming a
	// reconstructed artifact, so "notes.txt.huf" becomes "notes_unc.txt".
	Marker string

	// BufferSize is the size of the buffers placed in front of every file.
	BufferSize int

	// Logger receives progress messages.  A nil Logger means log.Root().
	Logger log.Logger
}

// sanitize returns a copy of cfg with zero fields replaced by defaults.
func (cfg Config) sanitize() Config {
	if cfg.Suffix == "" {
		cfg.Suffix = DefaultConfig.Suffix
	}
	if cfg.Marker == "" {
		cfg.Marker = DefaultConfig.Marker
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultConfig.BufferSize
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Root()
	}
	return cfg
}
