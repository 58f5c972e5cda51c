package harness_test

import (
	"log/slog"
	"testing"

	"github.com/aretw0/easytest/internal/logging"
	"github.com/aretw0/easytest/pkg/harness"
	"github.com/aretw0/easytest/pkg/ports"
	"github.com/aretw0/easytest/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarness_Contract(t *testing.T) {
	ports.RunFrameworkContract(t, func(t *testing.T, reg *registry.Registry) ports.Framework {
		return harness.New(reg, harness.WithLogger(logging.NewTB(t, slog.LevelDebug)))
	})
}

func TestHarness_CoreModuleFirst(t *testing.T) {
	reg := registry.New()
	reg.Module("a")
	reg.Module("b", "a")

	h := harness.New(reg)
	require.NoError(t, h.LoadModules("b"))
	inj, err := h.Injector()
	require.NoError(t, err)

	assert.Equal(t, []string{harness.CoreModule, "a", "b"}, inj.Modules())
	assert.True(t, inj.Has(harness.CompileName))
}

func TestHarness_LaterMocksWin(t *testing.T) {
	reg := registry.New()
	reg.Module("app").Value("v", 1)

	h := harness.New(reg)
	require.NoError(t, h.LoadModules("app"))
	require.NoError(t, h.MockModule("app", registry.Recipe{Name: "v", Kind: registry.KindValue, Value: 2}))
	require.NoError(t, h.MockModule("app", registry.Recipe{Name: "v", Kind: registry.KindConstant, Value: 3}))

	v, err := h.Service("v")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestHarness_Services(t *testing.T) {
	reg := registry.New()
	reg.Module("app").Value("one", 1).Value("two", 2)

	h := harness.New(reg)
	require.NoError(t, h.LoadModules("app"))

	got, err := h.Services("one", "two", "$rootScope")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, got["two"])

	_, err = h.Services("one", "three")
	assert.ErrorContains(t, err, "unknown provider: threeProvider <- three")
}

func TestHarness_CompileOverridden(t *testing.T) {
	reg := registry.New()
	reg.Module("app")

	h := harness.New(reg)
	require.NoError(t, h.MockModule("app", registry.Recipe{Name: harness.CompileName, Kind: registry.KindValue, Value: "fake"}))

	var err error
	require.NotPanics(t, func() {
		_, err = h.Compile("<p></p>", nil, nil)
	})
	assert.EqualError(t, err, "$compile is string")
}
