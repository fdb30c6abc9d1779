package ripley

import (
	"strconv"
	"strings"

	"github.com/viant/ripley/index"
)

// Reference scenario constants.
const (
	DefaultPointCount = 60
	DefaultMinRadius  = 0.4
	DefaultMaxRadius  = 2.25
)

// RadiusPolicy decides how negative or NaN radii are handled.
type RadiusPolicy int

const (
	// Clamp treats negative and NaN radii as 0.
	Clamp RadiusPolicy = iota
	// Reject makes the checked accessors fail for negative or NaN radii;
	// the unchecked accessors return 0.
	Reject
)

func (p RadiusPolicy) String() string {
	if p == Reject {
		return "reject"
	}
	return "clamp"
}

type options struct {
	kind   index.Kind
	domain Domain
	policy RadiusPolicy
}

func defaultOptions() options {
	return options{
		kind:   index.KindAuto,
		domain: Domain{Min: DefaultMinRadius, Max: DefaultMaxRadius},
		policy: Clamp,
	}
}

// Option configures an Estimator.
type Option func(*options)

// WithIndex selects the spatial index kind.
func WithIndex(kind index.Kind) Option {
	return func(o *options) { o.kind = kind }
}

// WithDomain sets the radius domain [min, max] used for axes and sampling.
func WithDomain(min, max float64) Option {
	return func(o *options) { o.domain = Domain{Min: min, Max: max} }
}

// WithNegativeRadius sets the negative radius policy.
func WithNegativeRadius(policy RadiusPolicy) Option {
	return func(o *options) { o.policy = policy }
}

// ParseOptions converts key=value arguments into options. Recognised keys:
// index (auto|brute|kdtree|vptree|rtree|quadtree), r_min, r_max and
// negative (clamp|reject). Unknown keys and malformed values are skipped.
func ParseOptions(args []string) []Option {
	var opts []Option
	domain := defaultOptions().domain
	domainSet := false
	for _, raw := range args {
		a := strings.TrimSpace(raw)
		if a == "" {
			continue
		}
		parts := strings.SplitN(a, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		val := strings.TrimSpace(parts[1])
		switch key {
		case "index":
			if kind, err := index.ParseKind(val); err == nil {
				opts = append(opts, WithIndex(kind))
			}
		case "r_min", "rmin":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				domain.Min = f
				domainSet = true
			}
		case "r_max", "rmax":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				domain.Max = f
				domainSet = true
			}
		case "negative":
			switch strings.ToLower(val) {
			case "clamp":
				opts = append(opts, WithNegativeRadius(Clamp))
			case "reject", "error":
				opts = append(opts, WithNegativeRadius(Reject))
			}
		}
	}
	if domainSet {
		opts = append(opts, WithDomain(domain.Min, domain.Max))
	}
	return opts
}
