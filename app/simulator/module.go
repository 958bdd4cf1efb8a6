package simulator

import (
	"github.com/okx/testtube/types"
)

// Configurator is handed to modules to register their routes.
type Configurator struct {
	MsgRouter   *MsgServiceRouter
	QueryRouter *QueryRouter
	Params      *ParamsRegistry
}

// AppModule is a simulator module.
type AppModule interface {
	Name() string
	RegisterServices(cfg Configurator)
}

// BeginBlockAppModule runs at the start of every block.
type BeginBlockAppModule interface {
	AppModule
	BeginBlock(ctx types.Context)
}

// EndBlockAppModule runs at the end of every block.
type EndBlockAppModule interface {
	AppModule
	EndBlock(ctx types.Context)
}

// Manager holds the modules of the simulator in registration order.
type Manager struct {
	modules []AppModule
}

func NewManager(modules ...AppModule) *Manager {
	return &Manager{modules: modules}
}

func (m *Manager) Modules() []AppModule { return m.modules }

func (m *Manager) RegisterServices(cfg Configurator) {
	for _, mod := range m.modules {
		mod.RegisterServices(cfg)
	}
}

func (m *Manager) BeginBlock(ctx types.Context) {
	for _, mod := range m.modules {
		if bb, ok := mod.(BeginBlockAppModule); ok {
			bb.BeginBlock(ctx)
		}
	}
}

func (m *Manager) EndBlock(ctx types.Context) {
	for _, mod := range m.modules {
		if eb, ok := mod.(EndBlockAppModule); ok {
			eb.EndBlock(ctx)
		}
	}
}
