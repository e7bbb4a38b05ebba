package voronoi

// triangleKey - канонический ключ треугольника: вершины отсортированы по (X, Y)
type triangleKey [6]float64

func keyOf(t Triangle) triangleKey {
	v := t.Vertices()
	less := func(p, q Point) bool {
		if p.X != q.X {
			return p.X < q.X
		}
		return p.Y < q.Y
	}
	if less(v[1], v[0]) {
		v[0], v[1] = v[1], v[0]
	}
	if less(v[2], v[1]) {
		v[1], v[2] = v[2], v[1]
	}
	if less(v[1], v[0]) {
		v[0], v[1] = v[1], v[0]
	}
	return triangleKey{v[0].X, v[0].Y, v[1].X, v[1].Y, v[2].X, v[2].Y}
}

// Mesh - набор треугольников с индексом по каноническому ключу.
// Треугольники хранятся по значению, порядок вставки значения не имеет.
type Mesh struct {
	eps       float64
	triangles []Triangle
	index     map[triangleKey]int
}

func NewMesh(eps float64) *Mesh {
	return &Mesh{
		eps:   eps,
		index: make(map[triangleKey]int),
	}
}

func (m *Mesh) Len() int { return len(m.triangles) }

// Triangles возвращает копию, сетку снаружи менять нельзя
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, len(m.triangles))
	copy(out, m.triangles)
	return out
}

// Add добавляет треугольник, если такого же (с точностью до перестановки) ещё нет.
// Проверка только по индексу: почти совпадающий треугольник считается новым,
// иначе каждая вставка превращается в полный проход по сетке.
func (m *Mesh) Add(t Triangle) bool {
	if _, ok := m.index[keyOf(t)]; ok {
		return false
	}
	m.index[keyOf(t)] = len(m.triangles)
	m.triangles = append(m.triangles, t)
	return true
}

func (m *Mesh) Contains(t Triangle) bool {
	return m.find(t) >= 0
}

// Remove удаляет треугольник по значению. Последний элемент переезжает на место удалённого.
func (m *Mesh) Remove(t Triangle) bool {
	i := m.find(t)
	if i < 0 {
		return false
	}

	last := len(m.triangles) - 1
	delete(m.index, keyOf(m.triangles[i]))
	if i != last {
		m.triangles[i] = m.triangles[last]
		m.index[keyOf(m.triangles[i])] = i
	}
	m.triangles = m.triangles[:last]
	return true
}

// Retain оставляет только треугольники, для которых keep вернул true. Порядок сохраняется.
func (m *Mesh) Retain(keep func(Triangle) bool) int {
	kept := m.triangles[:0]
	for _, t := range m.triangles {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	removed := len(m.triangles) - len(kept)
	m.triangles = kept

	m.index = make(map[triangleKey]int, len(kept))
	for i, t := range kept {
		m.index[keyOf(t)] = i
	}
	return removed
}

func (m *Mesh) find(t Triangle) int {
	if i, ok := m.index[keyOf(t)]; ok {
		return i
	}
	// точного совпадения нет - ищем с допуском
	for i, mt := range m.triangles {
		if mt.Equal(t, m.eps) {
			return i
		}
	}
	return -1
}
