package dismiss

// Point координаты указателя
type Point struct {
	X, Y float64
}

// Region область привязки поповера (триггер + панель)
type Region interface {
	Contains(p Point) bool
}

// Rect прямоугольная область, границы включительно
type Rect struct {
	X, Y, Width, Height float64
}

// Contains реализует Region
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Union объединение областей (например, кнопка и выпадающая панель)
type Union []Region

// Contains реализует Region
func (u Union) Contains(p Point) bool {
	for _, r := range u {
		if r != nil && r.Contains(p) {
			return true
		}
	}
	return false
}

// RegionFunc адаптер функции к Region
type RegionFunc func(p Point) bool

// Contains реализует Region
func (f RegionFunc) Contains(p Point) bool {
	return f(p)
}
