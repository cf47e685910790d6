package engine

import (
	"fmt"

	"github.com/hibeam-dev/chaski_client/internal/config"
	"github.com/hibeam-dev/chaski_client/internal/i18n"
	"github.com/hibeam-dev/chaski_client/internal/session"
	"github.com/hibeam-dev/chaski_client/internal/util"
)

// Factory creates an engine instance from agent configuration.
type Factory interface {
	CreateEngine(cfg config.Config) (session.Engine, error)
}

var engineRegistry = make(map[string]Factory)

func RegisterEngine(name string, factory Factory) {
	engineRegistry[name] = factory
}

const DefaultEngine = "openvpn"

func New(cfg config.Config) (session.Engine, error) {
	name := cfg.Engine.Name
	if name == "" {
		name = DefaultEngine
	}

	factory, ok := engineRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%s", i18n.T("engine_unknown", map[string]any{"Name": name}))
	}

	util.Info(i18n.T("engine_starting", map[string]any{"Name": name}), nil)

	return factory.CreateEngine(cfg)
}

// InitEngines registers the built-in engine implementations.
func InitEngines() {
	RegisterEngine("openvpn", processFactory{})
}
