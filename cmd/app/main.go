package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/config"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/0x0FACED/go-delaunay/static"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// request - разобранная форма
type request struct {
	params config.Params
	random bool
	layers render.Layers
}

func parseRequest(r *http.Request) request {
	req := request{
		params: config.Default(),
		random: true,
		layers: render.Layers{Mesh: true, Dual: true, Sites: true},
	}

	if r.Method != http.MethodPost {
		return req
	}

	r.ParseForm()

	intValue := func(name string, dst *int) {
		if v, err := strconv.Atoi(r.FormValue(name)); err == nil {
			*dst = v
		}
	}
	intValue("width", &req.params.Width)
	intValue("height", &req.params.Height)
	intValue("stations", &req.params.Count)
	if v, err := strconv.ParseFloat(r.FormValue("mindist"), 64); err == nil {
		req.params.MinDistance = v
	}
	if v, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		req.params.Seed = v
	}

	req.random = r.FormValue("random") == "true"
	req.layers.Mesh = r.FormValue("mesh") == "true"
	req.layers.Circumcircles = r.FormValue("circles") == "true"
	req.layers.Spacing = r.FormValue("spacing") == "true"
	return req
}

// buildChart - генерация сайтов, диаграмма и отрисовка в echarts
func buildChart(req request, log *logger.ZapLogger) (*render.ChartSurface, error) {
	p := req.params
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var sites []voronoi.Point
	if req.random {
		seed := p.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Info("Случайные сайты", zap.Int64("seed", seed))

		var err error
		sites, err = voronoi.GenerateSites(rand.New(rand.NewSource(seed)), p.Sampler(), log)
		if err != nil {
			return nil, err
		}
	} else {
		sites = voronoi.GridSites(p.Count, p.Bounds())
	}

	diagram, err := voronoi.CreateDiagram(sites, p.Bounds(), p.Options(), log)
	if err != nil {
		return nil, err
	}

	surface := render.NewChartSurface("Диаграмма Вороного (Делоне)", p.Width, p.Height)
	layers := req.layers
	layers.MinDistance = p.MinDistance
	render.Draw(surface, diagram, layers)
	return surface, nil
}

// http обработчик страницы с диаграмой и формой для ввода данных
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	req := parseRequest(r)

	run := petname.Generate(2, "-")
	base := logger.New()
	defer base.ClearLogs()
	log := base.With(zap.String("run", run))

	fmt.Fprintln(w, static.Part1)

	surface, err := buildChart(req, log)
	if err != nil {
		log.Error("Не удалось построить диаграмму", zap.Error(err))
	} else if err := surface.Render(w); err != nil {
		log.Error("Ошибка рендеринга диаграммы", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprint(w, run)
	fmt.Fprintln(w, static.Part3)

	// Вставляем логи в HTML
	base.UpdateLogs()
	for _, l := range base.Logs {
		fmt.Fprintln(w, l)
	}

	fmt.Fprintln(w, static.Part4)
}

func main() {
	addr := ":8080"
	if v := os.Getenv("ADDR"); v != "" {
		addr = v
	}

	log := logger.NewConsole(os.Stderr, zapcore.InfoLevel)

	http.HandleFunc("/", diagramHandler)
	log.Info("Сервер запущен", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal("ListenAndServe", zap.Error(err))
	}
}
