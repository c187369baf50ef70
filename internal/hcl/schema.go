package hcl

// fileRoot decodes every top-level block a file may contain. Anything else
// is rejected by the decoder.
type fileRoot struct {
	Views  []*viewBlock  `hcl:"view,block"`
	Relays []*relayBlock `hcl:"relay,block"`
	Frames []*frameBlock `hcl:"frame,block"`
}

type viewBlock struct {
	FrameDuration string   `hcl:"frame_duration,optional"`
	PlayerColors  []string `hcl:"player_colors,optional"`
	Modules       []string `hcl:"modules,optional"`
}

type relayBlock struct {
	URL                string `hcl:"url"`
	Namespace          string `hcl:"namespace,optional"`
	Event              string `hcl:"event,optional"`
	ConnectTimeout     string `hcl:"connect_timeout,optional"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional"`
}

type frameBlock struct {
	Turn     int             `hcl:"turn,optional"`
	Summary  []string        `hcl:"summary,optional"`
	Players  []*playerBlock  `hcl:"player,block"`
	Tooltips []*tooltipBlock `hcl:"tooltip,block"`
}

type playerBlock struct {
	Nickname string `hcl:"nickname,label"`
	Slot     int    `hcl:"slot"`
	Position int    `hcl:"position"`
	Energy   int    `hcl:"energy,optional"`
	Score    int    `hcl:"score,optional"`
}

type tooltipBlock struct {
	Slot int    `hcl:"slot"`
	Text string `hcl:"text"`
}
