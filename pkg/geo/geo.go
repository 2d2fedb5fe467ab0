package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusMeters - средний радиус Земли в метрах
const earthRadiusMeters = 6371000.0

// NewPoint создает orb.Point из широты и долготы
// (orb хранит координаты в порядке longitude, latitude)
func NewPoint(lat, lon float64) orb.Point {
	return orb.Point{lon, lat}
}

// Distance возвращает расстояние по дуге большого круга между двумя точками
// в метрах (формула гаверсинуса). Используется atan2, а не asin, чтобы
// избежать выхода аргумента за пределы [-1, 1] на почти антиподальных точках.
func Distance(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// PointBounds строит ограничивающие прямоугольники вокруг точки с отступом
// radiusMeters. Используется как дешевый предварительный фильтр кандидатов
// перед точным расчетом расстояния. Обычно рамка одна; если отступ
// пересекает меридиан ±180°, рамка разбивается на две части по обе
// стороны от него.
func PointBounds(center orb.Point, radiusMeters float64) []orb.Bound {
	// 1 градус широты ~ 111.32 км
	latPad := radiusMeters / 111320.0

	// Длина градуса долготы сжимается к полюсам
	lonDegree := 111320.0 * math.Cos(center.Lat()*math.Pi/180)
	lonPad := latPad
	if lonDegree > 1 {
		lonPad = radiusMeters / lonDegree
	}

	minLat := center.Lat() - latPad
	maxLat := center.Lat() + latPad
	minLon := center.Lon() - lonPad
	maxLon := center.Lon() + lonPad

	switch {
	case minLon < -180:
		return []orb.Bound{
			{Min: orb.Point{-180, minLat}, Max: orb.Point{maxLon, maxLat}},
			{Min: orb.Point{minLon + 360, minLat}, Max: orb.Point{180, maxLat}},
		}
	case maxLon > 180:
		return []orb.Bound{
			{Min: orb.Point{minLon, minLat}, Max: orb.Point{180, maxLat}},
			{Min: orb.Point{-180, minLat}, Max: orb.Point{maxLon - 360, maxLat}},
		}
	default:
		return []orb.Bound{
			{Min: orb.Point{minLon, minLat}, Max: orb.Point{maxLon, maxLat}},
		}
	}
}

// InBounds сообщает, попадает ли точка хотя бы в одну из рамок
func InBounds(bounds []orb.Bound, p orb.Point) bool {
	for _, b := range bounds {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// ValidCoordinates проверяет, что координаты находятся в допустимых пределах
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
