package sdlhost

import (
	"embed"
	"fmt"
	"image"
	"path"
	"strings"
	"unsafe"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// chevronSVG is a left-pointing chevron in a 14x20 box with 4px padding.
const chevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="14" height="20" viewBox="0 0 14 20">
<polyline points="10,4 4,10 10,16" fill="none" stroke="#FFFFFF" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`

var backMessage = &i18n.Message{ID: "Back", Other: "Back"}

// Labels resolves the localized strings of the default title.
type Labels struct {
	localizer *i18n.Localizer
}

// NewLabels loads the bundled translations and picks the best match for
// langs, falling back to English. Unparseable tags are skipped.
func NewLabels(langs ...string) (*Labels, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		data, err := locales.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
	}

	var accepted []string
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			internal.GetInternalLogger().Warn("Ignoring invalid language tag", "tag", lang, "error", err)
			continue
		}
		accepted = append(accepted, tag.String())
	}

	return &Labels{localizer: i18n.NewLocalizer(bundle, accepted...)}, nil
}

// Back returns the label shown next to the chevron when the previous route
// has no name of its own.
func (l *Labels) Back() string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: backMessage})
	if err != nil || s == "" {
		return backMessage.Other
	}
	return s
}

// TitleBar paints the default navigation title: a chevron and the name of
// the route beneath the top, both clickable to go back.
type TitleBar struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	labels   *Labels
	chevron  *sdl.Texture
	text     *Cache[string, *sdl.Texture]

	Color   sdl.Color
	Height  int32
	Padding int32
	scale   int32
}

// NewTitleBar opens the label font and rasterizes the chevron.
func NewTitleBar(r *sdl.Renderer, fontPath string, labels *Labels) (*TitleBar, error) {
	font, err := ttf.OpenFont(fontPath, constants.DefaultFontSize)
	if err != nil {
		return nil, navstack.NewInfrastructureError("open_font", err)
	}

	t := &TitleBar{
		renderer: r,
		font:     font,
		labels:   labels,
		text:     NewTextureCache[string](16),
		Color:    sdl.Color{R: 0x4a, G: 0x9e, B: 0xff, A: 0xff},
		Height:   constants.DefaultTitleHeight,
		scale:    constants.DefaultTitleHeight / 24,
	}
	t.Padding = 4 * t.scale

	pixels, err := RasterizeSVG(chevronSVG, int(14*t.scale), int(20*t.scale))
	if err != nil {
		font.Close()
		return nil, err
	}
	t.chevron, err = TextureFromRGBA(r, pixels)
	if err != nil {
		font.Close()
		return nil, err
	}
	t.chevron.SetColorMod(t.Color.R, t.Color.G, t.Color.B)
	return t, nil
}

// Draw paints the title for the route names in routes, bottom first, into
// rect and reports whether the back affordance was clicked. Nothing is drawn
// for a single route. An empty name falls back to the localized "Back".
func (t *TitleBar) Draw(rect navstack.Rect, routes []string, p navstack.Pointer) bool {
	if len(routes) < 2 {
		return false
	}
	name := routes[len(routes)-2]
	if name == "" {
		name = t.labels.Back()
	}

	bar := ToSDLRect(rect)
	bar.H = min(bar.H, t.Height)

	_, _, cw, ch, err := t.chevron.Query()
	if err != nil {
		return false
	}
	chev := sdl.Rect{X: bar.X, Y: bar.Y + (bar.H-ch)/2, W: cw, H: ch}
	t.renderer.Copy(t.chevron, nil, &chev)

	hit := chev
	if label, err := t.label(name); err == nil {
		_, _, lw, lh, _ := label.Query()
		dst := sdl.Rect{X: chev.X + chev.W + t.Padding, Y: bar.Y + (bar.H-lh)/2, W: lw, H: lh}
		t.renderer.Copy(label, nil, &dst)
		hit.W = dst.X + dst.W - hit.X
	} else {
		internal.GetInternalLogger().Error("Failed to render title label", "label", name, "error", err)
	}

	if !p.Clicked || !p.HasPos {
		return false
	}
	pt := sdl.Point{X: int32(p.Pos.X), Y: int32(p.Pos.Y)}
	return pt.InRect(&hit)
}

func (t *TitleBar) label(s string) (*sdl.Texture, error) {
	if texture, ok := t.text.Get(s); ok {
		return texture, nil
	}
	surface, err := t.font.RenderUTF8Blended(s, t.Color)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := t.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	t.text.Set(s, texture)
	return texture, nil
}

func (t *TitleBar) Destroy() {
	t.text.Destroy()
	if t.chevron != nil {
		t.chevron.Destroy()
	}
	t.font.Close()
}

// RasterizeSVG renders an SVG document into a w x h image.
func RasterizeSVG(svg string, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// TextureFromRGBA uploads img into a blended texture.
func TextureFromRGBA(r *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, navstack.NewInfrastructureError("create_texture", fmt.Errorf("empty image"))
	}
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride), sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil, navstack.NewInfrastructureError("create_surface", err)
	}
	defer surface.Free()

	texture, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, navstack.NewInfrastructureError("create_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
