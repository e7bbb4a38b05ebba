package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/0x0FACED/go-delaunay/pkg/cli"
	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/render/window"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"
)

func bindParams(cmd *kingpin.CmdClause, p *config.Params) {
	d := config.Default()
	cmd.Flag("count", "Number of sites.").Short('n').Default(strconv.Itoa(d.Count)).IntVar(&p.Count)
	cmd.Flag("min-dist", "Minimum distance between sites.").Short('r').Default(ftoa(d.MinDistance)).Float64Var(&p.MinDistance)
	cmd.Flag("width", "Surface width.").Default(strconv.Itoa(d.Width)).IntVar(&p.Width)
	cmd.Flag("height", "Surface height.").Default(strconv.Itoa(d.Height)).IntVar(&p.Height)
	cmd.Flag("margin", "Keep sites this far from the border.").Default(ftoa(d.Margin)).Float64Var(&p.Margin)
	cmd.Flag("seed", "Random seed, 0 picks one from the clock.").Default("0").Int64Var(&p.Seed)
	cmd.Flag("max-attempts", "Consecutive rejected samples before giving up, negative for no limit.").Default(strconv.Itoa(d.MaxAttempts)).IntVar(&p.MaxAttempts)
	cmd.Flag("epsilon", "Coordinate comparison tolerance.").Default(ftoa(d.Epsilon)).Float64Var(&p.Epsilon)
	cmd.Flag("super-scale", "Super triangle size relative to the site bounds.").Default(ftoa(d.SuperScale)).Float64Var(&p.SuperScale)
}

func bindLayers(cmd *kingpin.CmdClause, l *render.Layers) {
	cmd.Flag("cells", "Fill closed Voronoi cells.").Default("true").BoolVar(&l.Cells)
	cmd.Flag("mesh", "Draw the Delaunay mesh.").Default("true").BoolVar(&l.Mesh)
	cmd.Flag("dual", "Draw Voronoi edges.").Default("true").BoolVar(&l.Dual)
	cmd.Flag("circles", "Draw circumcircles.").BoolVar(&l.Circumcircles)
	cmd.Flag("sites", "Draw sites.").Default("true").BoolVar(&l.Sites)
	cmd.Flag("spacing", "Draw minimum distance circles around sites.").BoolVar(&l.Spacing)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// showWindow рисует первую диаграмму и открывает окно.
// Повторная генерация по R всегда берёт новое зерно.
func showWindow(r *cli.Runner) error {
	c := render.NewCanvas()
	if err := r.Canvas(c); err != nil {
		return err
	}
	r.Params.Seed = 0

	w := &window.Window{
		Width:      r.Params.Width,
		Height:     r.Params.Height,
		Canvas:     c,
		Regenerate: r.Canvas,
		Log:        r.Log,
	}
	return w.Run("Диаграмма Вороного")
}

func main() {
	app := kingpin.New("voronoi", "Voronoi diagrams from Bowyer-Watson Delaunay triangulation.")
	verbose := app.Flag("verbose", "Log every insertion step.").Short('v').Bool()

	var (
		params = config.Default()
		layers = render.DefaultLayers()
	)

	draw := app.Command("draw", "Generate a diagram and save it as PNG.")
	bindParams(draw, &params)
	bindLayers(draw, &layers)
	drawOut := draw.Flag("out", "Output PNG file.").Short('o').Default("voronoi.png").String()
	drawPreview := draw.Flag("preview", "Print the image to the terminal (iTerm).").Bool()
	drawSites := draw.Flag("sites-file", "Read sites from an .svg (circle centers) or text (\"x y\" lines) file.").ExistingFile()

	interactive := app.Command("interactive", "Ask for parameters on stdin, render, repeat.")
	bindParams(interactive, &params)
	bindLayers(interactive, &layers)
	interactiveDir := interactive.Flag("out-dir", "Where to put the images.").Default(".").ExistingDir()
	interactivePreview := interactive.Flag("preview", "Print each image to the terminal (iTerm).").Bool()

	win := app.Command("window", "Show the diagram in a window. R regenerates, Esc quits.")
	bindParams(win, &params)
	bindLayers(win, &layers)

	circum := app.Command("circumcircle", "Print the circumcircle of a triangle.")
	var coords [6]float64
	for i, name := range []string{"x1", "y1", "x2", "y2", "x3", "y3"} {
		circum.Arg(name, "Vertex coordinate.").Required().Float64Var(&coords[i])
	}

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(os.Stderr, level).With(zap.String("run", petname.Generate(2, "-")))
	defer log.Sync()

	r := &cli.Runner{Params: params, Layers: layers, Log: log}

	var err error
	switch command {
	case draw.FullCommand():
		r.SitesFile = *drawSites
		err = r.DrawPNG(*drawOut, *drawPreview)
	case interactive.FullCommand():
		err = r.Interactive(os.Stdin, os.Stdout, *interactiveDir, *interactivePreview)
	case win.FullCommand():
		err = showWindow(r)
	case circum.FullCommand():
		err = cli.PrintCircumcircle(os.Stdout, coords, params.Epsilon)
	}

	if err != nil {
		log.Error("Ошибка", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
