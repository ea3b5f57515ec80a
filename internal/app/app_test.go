package app

import (
	"testing"

	"github.com/nfrund/sellerprofile/internal/config"
	"github.com/nfrund/sellerprofile/internal/module"
	"github.com/nfrund/sellerprofile/internal/profileapi"
	"github.com/nfrund/sellerprofile/internal/registry"
	"github.com/nfrund/sellerprofile/internal/routepath"
	"github.com/nfrund/sellerprofile/internal/testutils"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer(t *testing.T) {
	i := NewContainer(testutils.ConfigForTests(t, func(c *config.Config) { c.RateLimitPerMinute = 60 }))

	deps, err := Resolve(i)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Publisher.Close() })

	assert.NotNil(t, deps.SessionStore)
	assert.NotNil(t, deps.Logger)
	assert.Same(t, deps.Publisher, deps.Subscriber, "publisher and subscriber share one bus")
	assert.False(t, profileapi.Healthy(deps.Gateway), "no API URL configured")

	reg := do.MustInvoke[*registry.Registry](i)
	assert.Equal(t, 60, reg.Config().GetRateLimitPerMinute())
	assert.Same(t, reg, do.MustInvoke[*registry.Registry](i), "services are singletons")
}

func TestNewModules(t *testing.T) {
	deps, err := Resolve(NewContainer(testutils.ConfigForTests(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Publisher.Close() })

	mods := NewModules(deps)
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"profile", "audit"}, names)
	assert.Equal(t, routepath.AppProfile, module.PrefixOf(mods[0]))
	assert.Empty(t, module.PrefixOf(mods[1]))
}
