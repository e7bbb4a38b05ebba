package render

import "github.com/0x0FACED/go-delaunay/pkg/voronoi"

type OpKind int

const (
	OpLine OpKind = iota
	OpCircle
)

// Op - одна записанная команда. Для окружности B не используется.
type Op struct {
	Kind   OpKind
	Color  ColorID
	A, B   voronoi.Point
	Radius float64
}

// Canvas запоминает команды рисования, окно ebiten проигрывает их каждый кадр
type Canvas struct {
	color ColorID
	ops   []Op
}

func NewCanvas() *Canvas {
	return &Canvas{color: White}
}

func (c *Canvas) SetColor(id ColorID) { c.color = id }

func (c *Canvas) DrawLine(p1, p2 voronoi.Point) {
	c.ops = append(c.ops, Op{Kind: OpLine, Color: c.color, A: p1, B: p2})
}

func (c *Canvas) DrawCircle(center voronoi.Point, radius float64) {
	c.ops = append(c.ops, Op{Kind: OpCircle, Color: c.color, A: center, Radius: radius})
}

func (c *Canvas) Clear() { c.ops = c.ops[:0] }

func (c *Canvas) Len() int { return len(c.ops) }

// Ops - записанные команды в порядке вызова
func (c *Canvas) Ops() []Op { return c.ops }

// Redraw рисует на чистом холсте. Если draw вернул ошибку, остаётся prev.
func Redraw(prev *Canvas, draw func(*Canvas) error) (*Canvas, error) {
	next := NewCanvas()
	if err := draw(next); err != nil {
		return prev, err
	}
	return next, nil
}
