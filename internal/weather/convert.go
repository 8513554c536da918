package weather

// KphToMps converts kilometers per hour to meters per second. The factor is
// the exact rational 1000/3600, not a rounded constant.
func KphToMps(kph float64) float64 {
	return kph * (1000.0 / 3600.0)
}

// KmToM converts kilometers to whole meters, truncating toward zero.
func KmToM(km float64) uint16 {
	return uint16(km * 1000)
}
