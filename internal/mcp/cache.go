package mcp

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/maypok86/otter"

	"github.com/loupe-dev/loupe/internal/structure"
)

const (
	outlineCacheCapacity = 512
	outlineCacheTTL      = 5 * time.Minute
)

// outlineCache memoizes outline results across MCP calls. Entries are
// keyed by path plus file mtime and size, so an edited file misses
// naturally instead of serving a stale outline.
type outlineCache struct {
	inner otter.Cache[string, *structure.Analysis]
}

func newOutlineCache() (*outlineCache, error) {
	inner, err := otter.MustBuilder[string, *structure.Analysis](outlineCacheCapacity).
		WithTTL(outlineCacheTTL).
		Build()
	if err != nil {
		return nil, err
	}
	return &outlineCache{inner: inner}, nil
}

// key builds the cache key for path and the requested construct set,
// or "" if the file cannot be stat'ed. An empty key disables caching
// for that call.
func (c *outlineCache) key(path string, constructs []string) string {
	info, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s|%d|%d|%s", path, info.ModTime().UnixNano(), info.Size(),
		strings.Join(constructs, ","))
}

func (c *outlineCache) get(key string) (*structure.Analysis, bool) {
	if key == "" {
		return nil, false
	}
	return c.inner.Get(key)
}

func (c *outlineCache) put(key string, analysis *structure.Analysis) {
	if key == "" {
		return
	}
	c.inner.Set(key, analysis)
}

func (c *outlineCache) Close() {
	c.inner.Close()
}
