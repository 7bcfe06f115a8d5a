package sdlhost

import (
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Compositor implements navstack.Compositor with SDL render targets. Each
// transition layer draws into its own window-sized texture, which is then
// copied into the enclosing target with the pane's translation and clip.
// Parent-layer panes draw straight into the enclosing target.
type Compositor struct {
	renderer *sdl.Renderer
	layers   *Cache[navstack.LayerID, *sdl.Texture]
	stack    []paneTarget
	width    int32
	height   int32
	err      error
	logger   *slog.Logger
}

type paneTarget struct {
	pane    navstack.Pane
	texture *sdl.Texture // nil when drawing into the enclosing target
	parent  *sdl.Texture
	clip    *sdl.Rect
}

// NewCompositor creates a compositor on r.
func NewCompositor(r *sdl.Renderer) *Compositor {
	return &Compositor{
		renderer: r,
		layers:   NewTextureCache[navstack.LayerID](constants.DefaultLayerCacheSize),
		logger:   internal.GetInternalLogger(),
	}
}

func (c *Compositor) Renderer() *sdl.Renderer {
	return c.renderer
}

// BeginFrame clears the screen to bg. Layer textures are recreated when the
// drawable size changed.
func (c *Compositor) BeginFrame(bg color.RGBA) {
	width, height, err := c.renderer.GetOutputSize()
	if err == nil && (width != c.width || height != c.height) {
		c.layers.Destroy()
		c.width, c.height = width, height
	}

	c.stack = c.stack[:0]
	c.renderer.SetRenderTarget(nil)
	c.renderer.SetClipRect(nil)
	c.renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	c.renderer.Clear()
}

// EndFrame returns the first infrastructure failure of the frame, if any.
// A failed layer falls back to drawing untranslated into its parent.
func (c *Compositor) EndFrame() error {
	if len(c.stack) != 0 {
		c.logger.Error("Unbalanced panes at end of frame", "open", len(c.stack))
		c.stack = c.stack[:0]
	}
	err := c.err
	c.err = nil
	return err
}

func (c *Compositor) BeginPane(p navstack.Pane) {
	t := paneTarget{
		pane:   p,
		parent: c.renderer.GetRenderTarget(),
		clip:   c.currentClip(),
	}

	if !p.Layer.IsParent() {
		texture, err := c.layerTexture(p.Layer)
		if err != nil {
			c.fail("create_layer", err)
		} else {
			t.texture = texture
			c.renderer.SetRenderTarget(texture)
			c.renderer.SetClipRect(nil)
			c.renderer.SetDrawColor(0, 0, 0, 0)
			c.renderer.Clear()
			r := ToSDLRect(p.Rect)
			c.renderer.SetClipRect(&r)
		}
	}
	if t.texture == nil {
		r := ToSDLRect(p.Clip)
		c.renderer.SetClipRect(intersect(t.clip, &r))
	}

	c.stack = append(c.stack, t)
}

// EndPane composites the pane into its parent target. The measured rect is
// the pane's content rect; SDL cannot report drawn bounds.
func (c *Compositor) EndPane(p navstack.Pane) navstack.Rect {
	if len(c.stack) == 0 {
		c.logger.Error("EndPane without BeginPane", "layer", p.Layer.ID.String())
		return p.Rect
	}
	t := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	if t.texture != nil {
		c.renderer.SetRenderTarget(t.parent)
		clip := ToSDLRect(t.pane.Clip)
		c.renderer.SetClipRect(intersect(t.clip, &clip))
		dst := sdl.Rect{
			X: int32(t.pane.Translate.X),
			Y: int32(t.pane.Translate.Y),
			W: c.width,
			H: c.height,
		}
		if err := c.renderer.Copy(t.texture, nil, &dst); err != nil {
			c.fail("composite_layer", err)
		}
	}
	c.renderer.SetClipRect(t.clip)

	return t.pane.Rect
}

// Dim blends col over r in the current target.
func (c *Compositor) Dim(layer navstack.LayerID, r navstack.Rect, col color.RGBA) {
	if col.A == 0 || r.IsEmpty() {
		return
	}
	c.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	rect := ToSDLRect(r)
	c.renderer.FillRect(&rect)
}

// FillRect fills r with col in the current target. Helper for render
// callbacks.
func (c *Compositor) FillRect(r navstack.Rect, col color.RGBA) {
	c.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	rect := ToSDLRect(r)
	c.renderer.FillRect(&rect)
}

// Close destroys every layer texture.
func (c *Compositor) Close() {
	c.layers.Destroy()
}

func (c *Compositor) layerTexture(layer navstack.LayerID) (*sdl.Texture, error) {
	if texture, ok := c.layers.Get(layer); ok {
		return texture, nil
	}
	texture, err := c.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET, c.width, c.height)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	c.layers.Set(layer, texture)
	c.logger.Debug("Created layer texture", "layer", layer.ID.String(), "width", c.width, "height", c.height)
	return texture, nil
}

func (c *Compositor) currentClip() *sdl.Rect {
	if !c.renderer.IsClipEnabled() {
		return nil
	}
	r := c.renderer.GetClipRect()
	return &r
}

func (c *Compositor) fail(op string, err error) {
	c.logger.Error("Compositor failure", "op", op, "error", err)
	if c.err == nil {
		c.err = navstack.NewInfrastructureError(op, err)
	}
}

// ToSDLRect rounds r outward to whole pixels.
func ToSDLRect(r navstack.Rect) sdl.Rect {
	x0, y0 := floor32(r.Min.X), floor32(r.Min.Y)
	x1, y1 := ceil32(r.Max.X), ceil32(r.Max.Y)
	return sdl.Rect{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0)}
}

func intersect(a, b *sdl.Rect) *sdl.Rect {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	r, ok := a.Intersect(b)
	if !ok {
		return &sdl.Rect{X: b.X, Y: b.Y}
	}
	return &r
}

func floor32(v float32) int32 {
	i := int32(v)
	if float32(i) > v {
		i--
	}
	return i
}

func ceil32(v float32) int32 {
	i := int32(v)
	if float32(i) < v {
		i++
	}
	return i
}
