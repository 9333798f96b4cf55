package gltut

// Config holds window and framework settings for a tutorial run.
type Config struct {
	Title  string
	Width  int
	Height int

	// HUD draws the tutorial's status lines over the scene.
	HUD bool

	// Screenshot, when set, renders ScreenshotFrames frames, writes the
	// last one to this path as JPEG and exits.
	Screenshot       string
	ScreenshotFrames int

	// SwapInterval is passed to glfw.SwapInterval (1 = vsync).
	SwapInterval int

	// ClearColor is the RGBA color the framework clears to before Display.
	ClearColor [4]float32
}

// Option configures a Config.
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithSize sets the initial window size. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithHUD enables or disables the status overlay.
func WithHUD(enabled bool) Option {
	return func(c *Config) { c.HUD = enabled }
}

// WithScreenshot captures frame number frames (at least 1) to path and exits.
func WithScreenshot(path string, frames int) Option {
	return func(c *Config) {
		c.Screenshot = path
		if frames < 1 {
			frames = 1
		}
		c.ScreenshotFrames = frames
	}
}

// WithSwapInterval sets the buffer swap interval.
func WithSwapInterval(n int) Option {
	return func(c *Config) { c.SwapInterval = n }
}

// WithClearColor sets the framebuffer clear color.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *Config) { c.ClearColor = [4]float32{r, g, b, a} }
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	c := Config{
		Title:            "gltut",
		Width:            500,
		Height:           500,
		HUD:              true,
		ScreenshotFrames: 2,
		SwapInterval:     1,
		ClearColor:       [4]float32{0.75, 0.75, 1, 1},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
