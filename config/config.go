package config

import "image/color"

// PhysicsConfig contains integrator constants
type PhysicsConfig struct {
	Gravity      float64 // px/tick²
	MaxFallSpeed float64 // 0 disables the clamp
}

// FlingConfig contains the charge-and-launch controller tuning
type FlingConfig struct {
	// Aim
	AimStep     float64 // radians per tick while left/right is held
	AngleMargin float64 // keeps the aim off the horizon

	// Charge
	ChargeRate   float64 // power per tick, down de-charges at twice this
	MinPower     float64
	MaxPower     float64
	LaunchFactor float64 // converts charged power into launch speed

	// Timers (ticks)
	DetachTicks  int // cling suppressed after a launch
	NoClingTicks int // cling suppressed after a teleport

	ClingSlide     float64
	GroundFriction float64
	DashSpeed      float64 // residual |vx| above which the dash animation plays
	GroundProbe    float64 // px below the feet still counted as standing
}

// PortalConfig contains trigger, teleport and shot tuning
type PortalConfig struct {
	TriggerNormal  float64 // trigger ellipse radius along the portal normal
	TriggerTangent float64 // trigger ellipse radius along the wall
	ExitPad        float64 // extra px between the exit surface and the body
	Cooldown       int     // ticks

	ShotSpeed       float64 // px per tick
	ShotMaxDistance float64
}

// PlayerConfig contains the body dimensions
type PlayerConfig struct {
	Width  float64
	Height float64

	// Hit box inset from the visual box. Zero size means the full box.
	HitBoxX, HitBoxY float64
	HitBoxW, HitBoxH float64
}

// LevelConfig contains level and timing configuration
type LevelConfig struct {
	Dir          string // directory inside the embedded assets
	TileSize     float64
	CanvasHeight float64 // the map is bottom-aligned to this height
	TickRate     int     // simulation ticks per second
	MaxSteps     int     // simulation ticks allowed per frame
	StartIndex   int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HazardIntensity   float64 // pixels
	HazardDuration    int     // frames
	TeleportIntensity float64
	TeleportDuration  int
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	LaunchScaleX float64 // horizontal scale on launch (< 1 = narrower)
	LaunchScaleY float64 // vertical scale on launch (> 1 = taller)
	LerpSpeed    float64 // how fast to return to normal scale
}

// EffectsConfig contains the fade durations of the portal effects, in seconds
type EffectsConfig struct {
	TeleportFlash float32
	ShotImpact    float32
	ShotMiss      float32
	LaunchTrail   float32
}

// UIConfig contains colors and HUD layout
type UIConfig struct {
	Background   color.RGBA
	SolidTile    color.RGBA
	GreyTile     color.RGBA
	FinishTile   color.RGBA
	SpikeTile    color.RGBA
	PortalA      color.RGBA
	PortalB      color.RGBA
	Banned       color.RGBA
	AimColor     color.RGBA
	HUDTextColor color.RGBA

	PortalLength float32 // drawn length of a portal along its wall
	PortalWidth  float32

	HUDFontSize   float64
	DebugFontSize float64
	HUDMargin     float64
}

// LevelCompleteConfig contains level complete overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	Message      string
	LastMessage  string
	ContinueHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled    bool // start with the F1 overlay on
	LevelIndex int  // -1 resumes saved progress
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Fling FlingConfig
var Portal PortalConfig
var Player PlayerConfig
var Level LevelConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Effects EffectsConfig
var SquashStretch SquashStretchConfig
var UI UIConfig
var LevelComplete LevelCompleteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		Gravity:      0.14,
		MaxFallSpeed: 10.0,
	}

	Fling = FlingConfig{
		AimStep:     0.04,
		AngleMargin: 0.05,

		ChargeRate:   0.12,
		MinPower:     3.0,
		MaxPower:     10.0,
		LaunchFactor: 0.85,

		DetachTicks:  2,
		NoClingTicks: 12,

		ClingSlide:     0.3,
		GroundFriction: 0.2,
		DashSpeed:      0.5,
		GroundProbe:    10.0,
	}

	Portal = PortalConfig{
		TriggerNormal:  10.0,
		TriggerTangent: 18.0,
		ExitPad:        2.0,
		Cooldown:       8,

		ShotSpeed:       30.0,
		ShotMaxDistance: 2000.0,
	}

	Player = PlayerConfig{
		Width:  12,
		Height: 14,
	}

	Level = LevelConfig{
		Dir:          "levels",
		TileSize:     16,
		CanvasHeight: float64(C.Height),
		TickRate:     50,
		MaxSteps:     5,
		StartIndex:   0,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.12,
		LookAheadDistanceX:      48.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
	}

	ScreenShake = ScreenShakeConfig{
		HazardIntensity:   6.0,
		HazardDuration:    12,
		TeleportIntensity: 1.5,
		TeleportDuration:  4,
	}

	Effects = EffectsConfig{
		TeleportFlash: 0.25,
		ShotImpact:    0.4,
		ShotMiss:      0.2,
		LaunchTrail:   0.3,
	}

	SquashStretch = SquashStretchConfig{
		LaunchScaleX: 0.7,
		LaunchScaleY: 1.4,
		LerpSpeed:    0.12,
	}

	UI = UIConfig{
		Background:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		SolidTile:    color.RGBA{R: 200, G: 200, B: 210, A: 255},
		GreyTile:     Grey,
		FinishTile:   BrightGreen,
		SpikeTile:    LightRed,
		PortalA:      Orange,
		PortalB:      LightBlue,
		Banned:       Red,
		AimColor:     Yellow,
		HUDTextColor: White,

		PortalLength: 32,
		PortalWidth:  4,

		HUDFontSize:   14,
		DebugFontSize: 10,
		HUDMargin:     8,
	}

	Debug = DebugConfig{
		Enabled:    false,
		LevelIndex: -1,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		HintColor:    White,
		TitleY:       80,
		MessageY:     140,
		HintY:        280,
		Title:        "Level Complete!",
		Message:      "Portals placed: %d   Deaths: %d",
		LastMessage:  "That was the last level. Thanks for playing!",
		ContinueHint: "Press ENTER to continue",
	}
}
