package config

import (
	"image/color"

	"github.com/automoto/portalfling/shared/character"
)

// AnimationStyle is how the debug renderer shows one character animation.
type AnimationStyle struct {
	Color color.RGBA
	// ScaleX and ScaleY squash or stretch the drawn box.
	ScaleX, ScaleY float64
	Label          string
}

// Animations maps each controller animation to its style.
var Animations map[character.Animation]AnimationStyle

func init() {
	Animations = map[character.Animation]AnimationStyle{
		character.AnimIdle:     {Color: White, ScaleX: 1, ScaleY: 1, Label: "idle"},
		character.AnimDash:     {Color: LightGreen, ScaleX: 1.2, ScaleY: 0.85, Label: "dash"},
		character.AnimAim:      {Color: Yellow, ScaleX: 1.1, ScaleY: 0.9, Label: "aim"},
		character.AnimJump:     {Color: BrightOrange, ScaleX: 0.8, ScaleY: 1.25, Label: "jump"},
		character.AnimFall:     {Color: Orange, ScaleX: 0.9, ScaleY: 1.1, Label: "fall"},
		character.AnimCling:    {Color: Purple, ScaleX: 0.9, ScaleY: 1, Label: "cling"},
		character.AnimClingAim: {Color: LightRed, ScaleX: 0.9, ScaleY: 1, Label: "cling aim"},
	}
}

// StyleFor returns the style of anim, or the idle style for an unknown one.
func StyleFor(anim character.Animation) AnimationStyle {
	if s, ok := Animations[anim]; ok {
		return s
	}
	return Animations[character.AnimIdle]
}
