package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/freshpos/internal/core/resolver"
)

func TestResolverSelfTest(t *testing.T) {
	label, err := resolverSelfTest(context.Background(),
		[]string{"Apple", "Banana", "Orange"}, resolver.DefaultThresholds())
	require.NoError(t, err)
	assert.Equal(t, "Apple", label, "dominant score resolves the first catalog label")
}

func TestResolverSelfTestNeedsCatalog(t *testing.T) {
	_, err := resolverSelfTest(context.Background(), []string{"Apple"}, resolver.DefaultThresholds())
	assert.Error(t, err)

	_, err = resolverSelfTest(context.Background(), nil, resolver.DefaultThresholds())
	assert.Error(t, err)
}
