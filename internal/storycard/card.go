// Package storycard renders the 1080×1920 promotional PNG shared on
// Instagram stories for a tour event: overlapping neon glow shapes on a dark
// base with the event details drawn on top.
package storycard

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	cardWidth  = 1080
	cardHeight = 1920
)

// Event carries the fields drawn onto a card.
type Event struct {
	Title string
	Venue string
	City  string
	Date  time.Time
}

// Renderer holds the loaded typefaces. Construct once at startup and reuse;
// rendering itself is stateless.
type Renderer struct {
	title font.Face
	label font.Face
	body  font.Face
}

// fontFiles are tried in order; the first one present under fontDir wins.
var fontFiles = []string{"SpaceGrotesk-Bold.ttf", "Manrope-Bold.ttf"}

// NewRenderer loads the display fonts from fontDir, falling back to the
// built-in bitmap face when none can be loaded. The fallback keeps the
// endpoint alive on deployments that ship without font assets.
func NewRenderer(fontDir string) *Renderer {
	return &Renderer{
		title: loadFace(fontDir, 88),
		label: loadFace(fontDir, 48),
		body:  loadFace(fontDir, 42),
	}
}

func loadFace(fontDir string, size float64) font.Face {
	for _, name := range fontFiles {
		data, err := os.ReadFile(filepath.Join(fontDir, name))
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			continue
		}
		return face
	}
	return basicfont.Face7x13
}

// Render produces the finished PNG for one event.
func (r *Renderer) Render(ev Event) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{4, 4, 4, 255}), image.Point{}, draw.Src)

	// Three offset translucent ellipses build the neon glow backdrop. The
	// overlay uses straight (non-premultiplied) alpha so draw.Over blends
	// the glows over the base instead of stamping them near-opaque.
	overlay := image.NewNRGBA(canvas.Bounds())
	glows := []color.NRGBA{
		{255, 51, 153, 220},
		{64, 224, 208, 200},
		{255, 255, 255, 160},
	}
	for i, c := range glows {
		fillEllipse(overlay, image.Rect(
			-200+i*180,
			200+i*120,
			cardWidth+200-i*120,
			cardHeight-200+i*90,
		), c)
	}
	draw.Draw(canvas, canvas.Bounds(), overlay, image.Point{}, draw.Over)

	white := color.RGBA{255, 255, 255, 255}
	offWhite := color.RGBA{247, 248, 249, 255}
	teal := color.RGBA{0, 255, 209, 255}
	pink := color.RGBA{255, 54, 163, 255}
	mist := color.RGBA{233, 255, 253, 255}

	r.drawText(canvas, r.label, 60, 120, offWhite, "Agremiação Musical")
	r.drawText(canvas, r.title, 60, 210, teal, "DIVINO MARAVILHOSO")

	dateLine := ev.Date.Weekday().String() + " · " + strings.ToUpper(ev.Date.Format("02 Jan 2006"))
	r.drawText(canvas, r.label, 60, 400, white, dateLine)
	r.drawText(canvas, r.title, 60, 480, pink, ev.Title)
	r.drawText(canvas, r.body, 60, 580, mist, ev.Venue)
	r.drawText(canvas, r.body, 60, 640, mist, ev.City)

	strokeRect(canvas, image.Rect(60, 780, cardWidth-60, 960), 6, white)
	r.drawText(canvas, r.body, 90, 810, white, "Confirme sua presença e marque @divinomaravilhosobr")

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawText places s with its top-left corner at (x, y).
func (r *Renderer) drawText(dst draw.Image, face font.Face, x, y int, c color.Color, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// fillEllipse paints the ellipse inscribed in rect directly onto img,
// replacing existing pixels the way a shape layer would.
func fillEllipse(img *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	clipped := rect.Intersect(img.Bounds())
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// strokeRect draws a border of the given width just inside rect.
func strokeRect(img *image.RGBA, rect image.Rectangle, width int, c color.RGBA) {
	src := image.NewUniform(c)
	top := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width)
	bottom := image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y)
	left := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y)
	right := image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(img, edge.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
}
