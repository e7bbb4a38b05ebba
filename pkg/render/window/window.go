// Package window показывает диаграмму в окне ebiten.
package window

import (
	"image/color"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// Window - окно ebiten. R - перегенерировать диаграмму, Esc - выход.
type Window struct {
	Width, Height int
	Canvas        *render.Canvas
	// Regenerate заново рисует диаграмму на чистый холст
	Regenerate func(c *render.Canvas) error
	Log        *logger.ZapLogger
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && w.Regenerate != nil {
		var err error
		w.Canvas, err = render.Redraw(w.Canvas, w.Regenerate)
		if err != nil {
			// окно не закрываем, остаётся прежняя диаграмма
			w.Log.Warn("Не удалось перестроить диаграмму", zap.Error(err))
		}
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	for _, op := range w.Canvas.Ops() {
		clr := op.Color.RGBA()
		switch op.Kind {
		case render.OpLine:
			vector.StrokeLine(screen, float32(op.A.X), float32(op.A.Y), float32(op.B.X), float32(op.B.Y), 1, clr, true)
		case render.OpCircle:
			vector.StrokeCircle(screen, float32(op.A.X), float32(op.A.Y), float32(op.Radius), 1, clr, true)
		}
	}
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.Width, w.Height
}

// Run открывает окно и блокируется до его закрытия
func (w *Window) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w.Width, w.Height)
	return ebiten.RunGame(w)
}
