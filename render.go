package rangeslider

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the scene tree onto screen in painter order: parents before
// children, siblings in insertion order.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.refreshTransforms()
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	drawNode(screen, s.root)
}

func drawNode(dst *ebiten.Image, n *Node) {
	if !n.Visible || n.disposed {
		return
	}
	if n.Width > 0 && n.Height > 0 && n.Color.A > 0 {
		m := n.worldTransform
		x, y := m[4], m[5]
		w, h := n.Width*m[0], n.Height*m[3]
		drawRoundedRect(dst, x, y, w, h, n.Radius*min(m[0], m[3]), n.Color.toRGBA())
	}
	for _, c := range n.children {
		drawNode(dst, c)
	}
}

// drawRoundedRect fills an axis-aligned rectangle with circular corners of
// radius r, clamped to half the shorter side.
func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = Clamp(r, 0, min(w, h)/2)
	fx, fy, fw, fh, fr := float32(x), float32(y), float32(w), float32(h), float32(r)
	if fr == 0 {
		vector.DrawFilledRect(dst, fx, fy, fw, fh, clr, false)
		return
	}
	vector.DrawFilledRect(dst, fx+fr, fy, fw-2*fr, fh, clr, true)
	vector.DrawFilledRect(dst, fx, fy+fr, fw, fh-2*fr, clr, true)
	for _, c := range [4][2]float32{
		{fx + fr, fy + fr},
		{fx + fw - fr, fy + fr},
		{fx + fr, fy + fh - fr},
		{fx + fw - fr, fy + fh - fr},
	} {
		vector.DrawFilledCircle(dst, c[0], c[1], fr, clr, true)
	}
}
