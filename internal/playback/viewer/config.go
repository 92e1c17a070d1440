package viewer

import (
	"github.com/KirkDiggler/rpg-mapgen/internal/errors"
	"github.com/KirkDiggler/rpg-mapgen/internal/frames"
)

// DefaultScale is the pixel size of one cell
const DefaultScale = 10

// Config controls the viewer window
type Config struct {
	Frames frames.Sequence
	// Scale is the pixel size of one cell
	Scale int
	Title string
}

// Validate ensures there is something to show at a usable size
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if len(c.Frames) == 0 {
		vb.RequiredField("Frames")
	}
	errors.ValidatePositive("Scale", c.Scale, vb)
	return vb.Build()
}
