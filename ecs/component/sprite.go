package component

import "image/color"

// Sprite is a flat-colored box centered on the entity transform.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

var SpriteComponent = NewComponent[Sprite]()
