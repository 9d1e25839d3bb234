package layer

import (
	"math"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Properties holds the state shared by every layer variant.
// It is embedded in Raster, Vector and Scene3D.
type Properties struct {
	id      uuid.UUID
	name    string
	visible bool
	opacity float64
}

// newProperties returns visible, fully opaque properties with a fresh id.
func newProperties(name string) Properties {
	return Properties{
		id:      uuid.New(),
		name:    norm.NFC.String(name),
		visible: true,
		opacity: 1,
	}
}

// ID returns the layer identifier. Ids are unique per layer and do not
// change when the layer moves within a document.
func (p *Properties) ID() uuid.UUID {
	return p.id
}

// Name returns the layer name.
func (p *Properties) Name() string {
	return p.name
}

// SetName sets the layer name. Names are stored in Unicode NFC form so
// that visually identical names compare equal.
func (p *Properties) SetName(name string) {
	p.name = norm.NFC.String(name)
}

// Visible reports whether the layer takes part in compositing.
func (p *Properties) Visible() bool {
	return p.visible
}

// SetVisible shows or hides the layer.
func (p *Properties) SetVisible(visible bool) {
	p.visible = visible
}

// Opacity returns the layer opacity in [0, 1].
func (p *Properties) Opacity() float64 {
	return p.opacity
}

// SetOpacity sets the layer opacity, clamped to [0, 1].
// Out-of-range values are corrected, never rejected. NaN becomes 0.
func (p *Properties) SetOpacity(opacity float64) {
	p.opacity = clampUnit(opacity)
}

func (p *Properties) sealed() {}

// clampUnit restricts v to [0, 1].
func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
