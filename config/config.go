package config

import (
	"image/color"
	"time"
)

// Config holds general window configuration
type Config struct {
	Width  int    `env:"WIDTH"`
	Height int    `env:"HEIGHT"`
	Title  string `env:"TITLE"`
}

// NetConfig contains transport configuration
type NetConfig struct {
	ServerURL      string        `env:"SERVER_URL"`
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"` // Single retry after a close, no growth
	DialTimeout    time.Duration `env:"DIAL_TIMEOUT"`
	WriteTimeout   time.Duration `env:"WRITE_TIMEOUT"`
	SendRate       float64       `env:"SEND_RATE"`  // Outbound messages per second before drops
	SendBurst      int           `env:"SEND_BURST"` // Token bucket size for SendRate
	InboundBuffer  int           `env:"INBOUND_BUFFER"`
}

// InterpConfig contains snapshot interpolation tuning
type InterpConfig struct {
	DefaultInterval time.Duration `env:"INTERP_DEFAULT"` // Assumed tick spacing before any sample
	MinSample       time.Duration `env:"INTERP_MIN"`     // Samples outside [MinSample, MaxSample] are discarded
	MaxSample       time.Duration `env:"INTERP_MAX"`
	SampleWeight    float64       `env:"INTERP_WEIGHT"` // Weight of a new sample in the smoothed interval
}

// AimConfig contains aim-assist geometry. Both input surfaces read it so
// their target locks agree.
type AimConfig struct {
	OrbitRadius  float64 `env:"AIM_ORBIT_RADIUS"`  // Distance of the orbit point ahead of the ship
	DetectRadius float64 `env:"AIM_DETECT_RADIUS"` // Max distance from orbit point to a lockable target
	FreeRadius   float64 // Reticle radius when nothing is locked
	LockRadius   float64 // Reticle radius when fully locked
	AnimSeconds  float32 // Reticle lock-on animation duration
	SpinMax      float64 // Reticle spin speed at full lock, radians/s
}

// InputConfig contains primary input sampling configuration
type InputConfig struct {
	Rate             float64 `env:"INPUT_RATE"` // Samples per second
	JoystickScale    float64 // Virtual pointer pixels per joystick pixel
	JoystickActive   float64 // Scaled deflection in pixels before aim assist engages
	HeadingLockReach float64 // Aim distance ahead of the ship while boosting
	ThresholdDivisor float64 // Dead-zone radius is min(w,h) / (divisor * zoom)
}

// ControllerConfig contains remote controller configuration
type ControllerConfig struct {
	JoystickScale float64 `env:"CONTROLLER_JOYSTICK_SCALE"`
	DeadZone      float64 `env:"CONTROLLER_DEAD_ZONE"` // Joystick pixels ignored for aim angle
	Threshold     float64 // Fixed dead-zone radius sent with every frame
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Zoom          float64 `env:"CAMERA_ZOOM"`
	MinZoom       float64
	MaxZoom       float64
	ZoomStep      float64
	ZoomSaveDelay time.Duration // Wheel idle time before a zoom change is persisted
}

// HUDConfig contains limits for transient on-screen lists
type HUDConfig struct {
	KillFeedSize int
	KillFeedTTL  time.Duration
	ChatLogSize  int
	HitMarkerTTL time.Duration
}

// AppConfig contains identity used for local storage and session links
type AppConfig struct {
	Name              string `env:"APP_NAME"`
	SessionPathPrefix string `env:"SESSION_PATH_PREFIX"`
	PlayerName        string `env:"PLAYER_NAME"`
}

// Global configuration instances
var C *Config
var Net NetConfig
var Interp InterpConfig
var Aim AimConfig
var Input InputConfig
var Controller ControllerConfig
var Camera CameraConfig
var HUD HUDConfig
var App AppConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray        = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Space       = color.RGBA{R: 4, G: 6, B: 16, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "voidrift",
	}

	Net = NetConfig{
		ServerURL:      "ws://localhost:8080/ws",
		ReconnectDelay: 2 * time.Second,
		DialTimeout:    5 * time.Second,
		WriteTimeout:   time.Second,
		SendRate:       40, // server kicks above 50/s
		SendBurst:      10,
		InboundBuffer:  256,
	}

	Interp = InterpConfig{
		DefaultInterval: 33333 * time.Microsecond,
		MinSample:       10 * time.Millisecond,
		MaxSample:       200 * time.Millisecond,
		SampleWeight:    0.2,
	}

	Aim = AimConfig{
		OrbitRadius:  360,
		DetectRadius: 150,
		FreeRadius:   150,
		LockRadius:   20,
		AnimSeconds:  0.25,
		SpinMax:      8,
	}

	Input = InputConfig{
		Rate:             20,
		JoystickScale:    2.5,
		JoystickActive:   5,
		HeadingLockReach: 1000,
		ThresholdDivisor: 8,
	}

	Controller = ControllerConfig{
		JoystickScale: 3.0,
		DeadZone:      8,
		Threshold:     50,
	}

	Camera = CameraConfig{
		Zoom:          1.0,
		MinZoom:       0.5,
		MaxZoom:       2.0,
		ZoomStep:      0.1,
		ZoomSaveDelay: 750 * time.Millisecond,
	}

	HUD = HUDConfig{
		KillFeedSize: 5,
		KillFeedTTL:  5 * time.Second,
		ChatLogSize:  50,
		HitMarkerTTL: 300 * time.Millisecond,
	}

	App = AppConfig{
		Name:              "voidrift",
		SessionPathPrefix: "/play/",
		PlayerName:        "pilot",
	}
}
