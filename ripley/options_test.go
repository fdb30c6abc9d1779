package ripley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ripley/index"
)

func TestParseOptions(t *testing.T) {
	opts := ParseOptions([]string{"index=rtree", " r_min = 0.5", "r_max=3", "negative=reject", "junk", "index=hnsw", "r_max=x"})
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	assert.Equal(t, index.KindRTree, o.kind)
	assert.Equal(t, Domain{Min: 0.5, Max: 3}, o.domain)
	assert.Equal(t, Reject, o.policy)

	o = defaultOptions()
	for _, opt := range ParseOptions(nil) {
		opt(&o)
	}
	assert.Equal(t, defaultOptions(), o)
}

func TestRadiusPolicy_String(t *testing.T) {
	assert.Equal(t, "clamp", Clamp.String())
	assert.Equal(t, "reject", Reject.String())
}
