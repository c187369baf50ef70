package app

import (
	"context"

	"github.com/vk/duelview/internal/registry"
)

// orderModule records the calls it receives into a shared slice.
type orderModule struct {
	name  string
	calls *[]string
}

func (m *orderModule) Name() string { return m.name }

func (m *orderModule) Initialize(context.Context, *registry.Env) error {
	*m.calls = append(*m.calls, m.name+".init")
	return nil
}

func (m *orderModule) UpdateFromState(context.Context, *registry.Frame) error {
	*m.calls = append(*m.calls, m.name+".update")
	return nil
}

func (m *orderModule) Render(context.Context, *registry.Frame) error {
	*m.calls = append(*m.calls, m.name+".render")
	return nil
}

// closingOrderModule is an orderModule that also records Close.
type closingOrderModule struct {
	orderModule
}

func (m *closingOrderModule) Close(context.Context) error {
	*m.calls = append(*m.calls, m.name+".close")
	return nil
}
