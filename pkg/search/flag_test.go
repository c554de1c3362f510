package search_test

import (
	"testing"

	"github.com/joansala/owarego/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestFlagSetResetIsSet(t *testing.T) {
	f := search.NewFlag()
	assert.False(t, f.IsSet())

	f.Set()
	assert.True(t, f.IsSet())

	f.Reset()
	assert.False(t, f.IsSet())
}
