package trig

// Calculate runs the full pipeline on a degree value typed as text:
// parse, convert to radians, reduce into [-Pi, Pi], tangent.
// The first stage to fail short-circuits the rest.
func Calculate(input string) (float64, error) {
	degrees, err := ParseInput(input)
	if err != nil {
		return 0, err
	}
	return Tan(NormalizeRadians(ToRadians(degrees)))
}
