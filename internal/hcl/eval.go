package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/duelview/internal/state"
	"github.com/zclconf/go-cty/cty"
)

// namedColors are the colours addressable as color.<name>.
var namedColors = map[string]string{
	"green":  "#49cc35",
	"red":    "#ff0000",
	"blue":   "#3366ff",
	"yellow": "#ffcc00",
	"white":  "#ffffff",
}

// refereeTexts are the tooltip texts addressable as referee.<name>.
var refereeTexts = map[string]string{
	"off_site": state.TooltipOffSite,
	"touche":   state.TooltipTouche,
	"parry":    state.TooltipParry,
}

// newEvalContext builds the variables available to every expression.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"color":   stringObject(namedColors),
			"referee": stringObject(refereeTexts),
		},
	}
}

func stringObject(m map[string]string) cty.Value {
	attrs := make(map[string]cty.Value, len(m))
	for k, v := range m {
		attrs[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(attrs)
}
