package app

import (
	"github.com/vk/duelview/internal/config"
	"github.com/vk/duelview/internal/registry"
	"github.com/vk/duelview/modules/graphic"
	"github.com/vk/duelview/modules/relay"
	"github.com/vk/duelview/modules/tooltip"
)

// coreModules is the definitive list of all modules that are compiled into
// the duelview binary. The view config picks from it by name.
func coreModules(rc *config.Relay) []registry.Descriptor {
	relayCfg := relay.Config{}
	if rc != nil {
		relayCfg = relay.Config{
			URL:                rc.URL,
			Namespace:          rc.Namespace,
			Event:              rc.Event,
			ConnectTimeout:     rc.ConnectTimeout,
			InsecureSkipVerify: rc.InsecureSkipVerify,
		}
	}
	return []registry.Descriptor{
		graphic.Descriptor(),
		tooltip.Descriptor(),
		relay.Descriptor(relayCfg),
	}
}
