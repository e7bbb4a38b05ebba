package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Interactive спрашивает число сайтов и минимальное расстояние, рисует диаграмму
// в dir/voronoi-N.png и повторяет, пока пользователь не ответит 0.
// Ошибки генерации и вырожденная геометрия не прерывают цикл.
func (r *Runner) Interactive(in io.Reader, out io.Writer, dir string, preview bool) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "This program creates a Voronoi partition pattern.")

	for n := 1; ; n++ {
		count, ok := askInt(sc, out, "Number of sites: ")
		if !ok {
			break
		}
		minDist, ok := askFloat(sc, out, "Minimum distance between sites: ")
		if !ok {
			break
		}

		r.Params.Count = count
		r.Params.MinDistance = minDist

		path := filepath.Join(dir, fmt.Sprintf("voronoi-%d.png", n))
		if err := r.DrawPNG(path, preview); err != nil {
			if !recoverable(err) {
				return err
			}
			r.Log.Warn("Диаграмма не построена", zap.Int("round", n), zap.Error(err))
			fmt.Fprintln(out, "Error:", err)
		} else {
			fmt.Fprintln(out, "Saved", path)
		}

		again, ok := askInt(sc, out, "Continue? (1 = Yes / 0 = No): ")
		if !ok || again == 0 {
			break
		}
	}

	fmt.Fprintln(out, "Thank you.")
	return sc.Err()
}

// recoverable - ошибки, после которых можно спросить параметры ещё раз
func recoverable(err error) bool {
	switch errors.Cause(err) {
	case voronoi.ErrInvalidInput, voronoi.ErrSamplingExhausted, voronoi.ErrDegenerateGeometry:
		return true
	}
	return false
}

// askInt повторяет вопрос, пока не получит число. false - ввод закончился.
func askInt(sc *bufio.Scanner, out io.Writer, prompt string) (int, bool) {
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
		if err == nil {
			return v, true
		}
		fmt.Fprintln(out, "Please enter an integer.")
	}
}

func askFloat(sc *bufio.Scanner, out io.Writer, prompt string) (float64, bool) {
	for {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
		if err == nil {
			return v, true
		}
		fmt.Fprintln(out, "Please enter a number.")
	}
}

// Canvas рисует диаграмму на холст для окна
func (r *Runner) Canvas(c *render.Canvas) error {
	_, err := r.Render(c)
	return err
}
