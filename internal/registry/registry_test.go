package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModule struct{ name string }

func (m *stubModule) Name() string                                  { return m.name }
func (m *stubModule) Initialize(context.Context, *Env) error        { return nil }
func (m *stubModule) UpdateFromState(context.Context, *Frame) error { return nil }
func (m *stubModule) Render(context.Context, *Frame) error          { return nil }

func stub(name string) Descriptor {
	return Descriptor{Name: name, New: func() (Module, error) { return &stubModule{name: name}, nil }}
}

func TestModules_PreservesDeclaredOrder(t *testing.T) {
	t.Parallel()

	reg := New(stub("graphic"), stub("tooltip"))

	for i := 0; i < 3; i++ {
		if diff := cmp.Diff([]string{"graphic", "tooltip"}, reg.Names()); diff != "" {
			t.Fatalf("unexpected module order (-want +got):\n%s", diff)
		}
	}
	assert.Equal(t, 2, reg.Len())
}

func TestModules_NoDeduplicationOrReordering(t *testing.T) {
	t.Parallel()

	reg := New(stub("tooltip"), stub("graphic"), stub("tooltip"))
	assert.Equal(t, []string{"tooltip", "graphic", "tooltip"}, reg.Names())
}

func TestModules_ReturnsSnapshot(t *testing.T) {
	t.Parallel()

	input := []Descriptor{stub("graphic"), stub("tooltip")}
	reg := New(input...)
	input[0] = stub("mutated")

	first := reg.Modules()
	first[1] = stub("mutated")

	second := reg.Modules()
	require.Len(t, second, 2)
	assert.Equal(t, "graphic", second[0].Name)
	assert.Equal(t, "tooltip", second[1].Name)
}

func TestModules_DoesNotInstantiate(t *testing.T) {
	t.Parallel()

	called := false
	reg := New(Descriptor{Name: "lazy", New: func() (Module, error) {
		called = true
		return nil, errors.New("boom")
	}})

	require.Len(t, reg.Modules(), 1)
	assert.False(t, called, "registry must not call factories")
}

func TestCatalog_Registry(t *testing.T) {
	t.Parallel()

	cat := NewCatalog(stub("graphic"), stub("tooltip"), stub("relay"))

	reg, err := cat.Registry("tooltip", "graphic")
	require.NoError(t, err)
	assert.Equal(t, []string{"tooltip", "graphic"}, reg.Names())
	assert.Equal(t, []string{"graphic", "relay", "tooltip"}, cat.Names())

	_, ok := cat.Lookup("relay")
	assert.True(t, ok)
}

func TestCatalog_UnknownModule(t *testing.T) {
	t.Parallel()

	cat := NewCatalog(stub("graphic"))

	_, err := cat.Registry("graphic", "sparkles")
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "sparkles", resErr.Name)
}

func TestCatalog_DuplicatePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewCatalog(stub("graphic"), stub("graphic")) })
}
