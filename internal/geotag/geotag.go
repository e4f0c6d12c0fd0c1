package geotag

import (
	"github.com/golang/geo/s2"
)

// CellLevel - уровень S2-ячейки для маршрутизации (~1 км²)
const CellLevel = 13

// Point - координаты, снятые с устройства заявителя
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Cell      string  `json:"cell,omitempty"`
}

// Normalize проверяет пару координат и вычисляет токен S2-ячейки.
// Второй результат false, если координаты невалидны.
func Normalize(lat, lng float64) (Point, bool) {
	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return Point{}, false
	}

	cell := s2.CellIDFromLatLng(ll).Parent(CellLevel)
	return Point{
		Latitude:  ll.Lat.Degrees(),
		Longitude: ll.Lng.Degrees(),
		Cell:      cell.ToToken(),
	}, true
}

// ValidCell сообщает, является ли token ячейкой маршрутизации уровня CellLevel
func ValidCell(token string) bool {
	id := s2.CellIDFromToken(token)
	return id.IsValid() && id.Level() == CellLevel
}
