package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints the player after a teleport. Strength fades from 1 to 0.
type FlashData struct {
	Tween    *gween.Tween
	Strength float64
	Color    color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashStretchData tracks sprite scale deformation for launch/land feel
type SquashStretchData struct {
	ScaleX, ScaleY   float64 // current scale
	TargetX, TargetY float64 // lerp target (usually 1.0, 1.0)
	LerpSpeed        float64 // how fast to return to normal
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// MarkerData is a short-lived world-space ring, e.g. a shot impact.
type MarkerData struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

var Marker = donburi.NewComponentType[MarkerData]()

// FadeData drives Alpha from 1 to 0; the entity is removed when it finishes.
type FadeData struct {
	Tween *gween.Tween
	Alpha float64
}

var Fade = donburi.NewComponentType[FadeData]()
