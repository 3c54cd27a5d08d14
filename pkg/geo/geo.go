package geo

import "math"

// earthRadiusKm 地球平均半径（千米），Haversine 公式使用
const earthRadiusKm = 6371.0

// Coordinate 地理坐标（十进制度）
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid 校验坐标是否为有效地理范围内的有限数值
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Verdict 围栏判定结果（瞬时值，不落库）
type Verdict struct {
	WithinPerimeter   bool    `json:"is_within_perimeter"`
	DistanceKm        float64 `json:"distance"`         // 保留 1 位小数，仅用于展示
	PerimeterRadiusKm float64 `json:"perimeter_radius"` // 回显本次比较所用半径
}

// Distance 计算两点间大圆距离（千米），Haversine 公式
func Distance(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// 浮点误差可能使 h 略超出 [0,1]，对跖点情况下 Sqrt(1-h) 会产生 NaN
	if h < 0 {
		h = 0
	} else if h > 1 {
		h = 1
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Evaluate 判定上报位置是否在围栏内
// 边界取闭区间：距离恰好等于半径视为在围栏内；
// 比较使用未舍入的距离，舍入仅作用于展示字段
func Evaluate(position, center Coordinate, radiusKm float64) Verdict {
	distance := Distance(position, center)
	return Verdict{
		WithinPerimeter:   distance <= radiusKm,
		DistanceKm:        roundTo1(distance),
		PerimeterRadiusKm: radiusKm,
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
