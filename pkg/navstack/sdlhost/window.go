package sdlhost

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden     bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) sdlFlags() uint32 {
	var flags uint32
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// Init starts the SDL video, image and font subsystems.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return navstack.NewInfrastructureError("sdl_init", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		return navstack.NewInfrastructureError("img_init", err)
	}
	if err := ttf.Init(); err != nil {
		return navstack.NewInfrastructureError("ttf_init", err)
	}
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")
	return nil
}

// Quit shuts down everything Init started.
func Quit() {
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}

// Window wraps the SDL window and its target-capable renderer.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

// OpenWindow creates a window of width x height, or the size of the current
// display when either is zero. In development mode the window is decorated
// and sized from WINDOW_WIDTH/WINDOW_HEIGHT.
func OpenWindow(title string, width, height int32, opts WindowOptions) (*Window, error) {
	logger := internal.GetInternalLogger()

	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			logger.Error("Failed to get display mode", "error", err)
			width, height = 1024, 768
		} else {
			width, height = mode.W, mode.H
		}
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, width)
		height = envSize(constants.WindowHeightEnvVar, height)
	}

	logger.Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.sdlFlags())
	if err != nil {
		return nil, navstack.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		logger.Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE|sdl.RENDERER_TARGETTEXTURE)
	}
	if err != nil {
		window.Destroy()
		return nil, navstack.NewInfrastructureError("create_renderer", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window size override; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// LoadBackground loads an image drawn behind everything by RenderBackground.
func (w *Window) LoadBackground(path string) error {
	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		return navstack.NewInfrastructureError("load_background", err)
	}
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Background = texture
	return nil
}

func (w *Window) RenderBackground() {
	if w.Background != nil {
		width, height := w.Size()
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{W: width, H: height})
	}
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

// Area returns the whole drawable as a surface rect.
func (w *Window) Area() navstack.Rect {
	width, height := w.Size()
	return navstack.RectFromSize(0, 0, float32(width), float32(height))
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < constants.DefaultFrameIntervalMs {
			sdl.Delay(uint32(constants.DefaultFrameIntervalMs - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) Close() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
