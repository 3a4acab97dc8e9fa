package physics

// Physical constants, SI units.
const (
	G            = 6.67430e-11  // gravitational constant, m^3/(kg s^2)
	C            = 2.99792458e8 // speed of light, m/s
	SolarMassKg  = 1.98847e30   // mass of the Sun, kg
	EarthGravity = 9.80665      // surface gravity of Earth, m/s^2

	SecondsPerDay  = 86400.0
	SecondsPerYear = 365.25 * SecondsPerDay
)
