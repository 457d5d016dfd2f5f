package hostmem

// PageSize is the size of one linear memory page.
const PageSize = 65536

// Config holds configuration for arena creation.
type Config struct {
	// InitialPages is the memory size at creation in pages (64KB each).
	// 0 means 16 pages (1MB).
	InitialPages uint32

	// MaxPages caps memory growth in pages.
	// 0 means 16384 pages (1GB). Values above 65535 are clamped so every
	// address fits in 32 bits.
	MaxPages uint32
}

const (
	defaultInitialPages = 16
	defaultMaxPages     = 16384
	maxPages            = 65535
)

func (c Config) withDefaults() Config {
	if c.InitialPages == 0 {
		c.InitialPages = defaultInitialPages
	}
	if c.MaxPages == 0 {
		c.MaxPages = defaultMaxPages
	}
	if c.MaxPages > maxPages {
		c.MaxPages = maxPages
	}
	if c.InitialPages > c.MaxPages {
		c.InitialPages = c.MaxPages
	}
	return c
}
