package chart

// Options is the static chart configuration sent alongside every payload.
// The server never interprets it; it is passed through to the renderer.
type Options struct {
	Responsive          bool   `json:"responsive" koanf:"responsive"`
	MaintainAspectRatio bool   `json:"maintainAspectRatio" koanf:"maintain_aspect_ratio"`
	Scales              Scales `json:"scales" koanf:"scales"`
}

type Scales struct {
	Y Axis `json:"y" koanf:"y"`
}

type Axis struct {
	BeginAtZero bool `json:"beginAtZero" koanf:"begin_at_zero"`
}

// DefaultOptions returns the stock options: responsive, free aspect ratio,
// y axis anchored at zero.
func DefaultOptions() Options {
	return Options{
		Responsive:          true,
		MaintainAspectRatio: false,
		Scales:              Scales{Y: Axis{BeginAtZero: true}},
	}
}
