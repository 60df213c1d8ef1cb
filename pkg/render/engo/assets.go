// pkg/render/engo/assets.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"
)

// Palette holds the drawables and colors used for each kind of sprite. All
// shapes are procedural, so nothing is loaded from disk.
type Palette struct {
	Background color.Color
	Field      color.Color
	Core       color.Color
	Rocket     color.Color
	Thrusting  color.Color
}

// DefaultPalette uses dark blue fields, blue cores and a white rocket.
func DefaultPalette() Palette {
	return Palette{
		Background: color.Black,
		Field:      color.RGBA{20, 24, 72, 255},
		Core:       color.RGBA{40, 90, 220, 255},
		Rocket:     color.RGBA{255, 255, 255, 255},
		Thrusting:  color.RGBA{255, 170, 60, 255},
	}
}

// circleDrawable is shared by planet cores and field discs.
func circleDrawable() common.Drawable {
	return common.Circle{}
}

// rocketDrawable points toward the top of its bounding box.
func rocketDrawable() common.Drawable {
	return common.Triangle{}
}
