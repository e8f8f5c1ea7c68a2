package weather

import "math"

// WetBulb approximates the wet bulb temperature from dry bulb temperature
// (degC) and relative humidity (%) using Stull's 2011 regression. Valid
// around 5..99% RH and -20..50 degC at standard sea-level pressure.
func WetBulb(tempC, rhPercent float64) float64 {
	t, rh := tempC, rhPercent
	return t*math.Atan(0.151977*math.Sqrt(rh+8.313659)) +
		math.Atan(t+rh) -
		math.Atan(rh-1.676331) +
		0.00391838*math.Pow(rh, 1.5)*math.Atan(0.023101*rh) -
		4.686035
}
