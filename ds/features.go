package ds

import (
	"errors"
	"fmt"
	"strings"
)

var ErrFeatureDisabled = errors.New("feature disabled")

// Features selects which calculations an Engine offers. The presets follow
// the revisions of the calculator.
type Features uint8

const (
	CarbonMethod Features = 1 << iota
	SubstituentMethod
	TMSMethod
	ForwardMethods // molar mass and composition from a known DS
	FractionalCounts
)

const (
	V1     = CarbonMethod
	V2     = V1 | SubstituentMethod | ForwardMethods | FractionalCounts
	V3     = V2 | TMSMethod
	Latest = V3
)

var featureNames = []struct {
	f    Features
	name string
}{
	{CarbonMethod, "carbon"},
	{SubstituentMethod, "substituent"},
	{TMSMethod, "tms"},
	{ForwardMethods, "forward"},
	{FractionalCounts, "fractional"},
}

func (f Features) Has(x Features) bool {
	return f&x == x
}

func (f Features) String() string {
	var names []string
	for _, fn := range featureNames {
		if f.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseVersion maps a version name ("v1", "v2", "v3" or "latest") to its feature set.
// An empty name means latest.
func ParseVersion(v string) (Features, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "v1", "1":
		return V1, nil
	case "v2", "2":
		return V2, nil
	case "v3", "3", "latest", "":
		return V3, nil
	}
	return 0, fmt.Errorf("unknown calculator version %q", v)
}
