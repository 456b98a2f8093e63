package pairdiff

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/projectdiscovery/gologger"
)

// DefaultLoaderCapacity bounds how many parsed datasets a Loader keeps
const DefaultLoaderCapacity = 8

// Loader parses input files and caches the resulting datasets by path.
// An input is treated as immutable for the lifetime of the process, so all
// pipelines re-reading the same path share one parsed copy. The cached
// Dataset is handed out as-is and must not be modified by callers.
type Loader struct {
	cache *lru.Cache[string, *Dataset]
}

// NewLoader returns a loader holding at most capacity parsed datasets,
// DefaultLoaderCapacity when capacity is not positive
func NewLoader(capacity int) (*Loader, error) {
	if capacity <= 0 {
		capacity = DefaultLoaderCapacity
	}
	cache, err := lru.New[string, *Dataset](capacity)
	if err != nil {
		return nil, err
	}
	return &Loader{cache: cache}, nil
}

// Load returns the dataset parsed from path, reusing the cached copy when
// the same path was loaded before. Failed loads are not cached and a later
// call retries the file.
func (l *Loader) Load(path string) (*Dataset, error) {
	if ds, ok := l.cache.Get(path); ok {
		return ds, nil
	}
	ds, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	l.cache.Add(path, ds)
	gologger.Verbose().Msgf("parsed %v record pairs from %v", ds.Rows(), path)
	return ds, nil
}
