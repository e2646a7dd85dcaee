// Package results gathers the latest measured samples from all configured data
// sources.
package results

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/RoanBrand/CelluloseDS/config"
	"github.com/RoanBrand/CelluloseDS/log"
	"github.com/RoanBrand/CelluloseDS/sample"
	"github.com/RoanBrand/CelluloseDS/sampledb"
	"github.com/RoanBrand/CelluloseDS/xmlanalysis"
)

// Getter returns up to n samples from one source, newest first.
type Getter interface {
	GetResults(n int) ([]sample.Record, error)
}

type xmlFolder struct {
	folder     string
	instrument int
}

func (x xmlFolder) GetResults(n int) ([]sample.Record, error) {
	recs, err := xmlanalysis.GetResults(x.folder, n)
	for i := range recs {
		recs[i].Instrument = x.instrument
	}
	return recs, err
}

func (x xmlFolder) String() string {
	return "xml:" + x.folder
}

// Sources builds a Getter for every configured data source.
func Sources(conf *config.Config) ([]Getter, error) {
	getters := make([]Getter, 0, len(conf.DataSources))
	for _, s := range conf.DataSources {
		switch s.Type {
		case "xml":
			getters = append(getters, xmlFolder{folder: s.Source, instrument: s.Instrument})
		default:
			src, err := sampledb.New(s)
			if err != nil {
				return nil, err
			}
			getters = append(getters, src)
		}
	}
	return getters, nil
}

// Latest merges the newest n samples of all sources. A failing source is
// logged and skipped unless every source fails.
func Latest(sources []Getter, n int) ([]sample.Record, error) {
	if n < 0 {
		n = 0
	}
	var (
		all     []sample.Record
		lastErr error
		failed  int
	)

	for _, s := range sources {
		res, err := s.GetResults(n)
		if err != nil {
			log.Println("Error retrieving results from", s, ":", err)
			lastErr = err
			failed++
			continue
		}
		if len(res) == 0 {
			log.Println("0 results found in", s)
		}
		all = append(all, res...)
	}

	if failed > 0 && failed == len(sources) {
		return nil, fmt.Errorf("all %d data sources failed, last error: %w", failed, lastErr)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].TimeStamp.After(all[j].TimeStamp)
	})

	// limit results after merge
	if len(all) > n {
		all = all[:n]
	}

	return all, nil
}

// Cache keeps the merged results for maxAge so frequent dashboard refreshes do
// not hit the instruments.
type Cache struct {
	sources []Getter
	n       int
	maxAge  time.Duration

	lock   sync.RWMutex
	age    time.Time
	result []sample.Record
}

func NewCache(sources []Getter, n int, maxAge time.Duration) *Cache {
	return &Cache{sources: sources, n: n, maxAge: maxAge}
}

func (c *Cache) Get() ([]sample.Record, error) {
	// check if cache recent enough
	c.lock.RLock()
	if !c.age.IsZero() && time.Since(c.age) < c.maxAge {
		defer c.lock.RUnlock()
		return c.result, nil
	}

	// is old, get write lock and perform request
	c.lock.RUnlock()
	c.lock.Lock()
	defer c.lock.Unlock()

	// need to check if result still old, otherwise return new result
	if !c.age.IsZero() && time.Since(c.age) < c.maxAge {
		return c.result, nil
	}

	res, err := Latest(c.sources, c.n)
	if err != nil {
		return nil, err
	}

	c.result = res
	c.age = time.Now()
	return res, nil
}
