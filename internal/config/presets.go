package config

// Presets carries the classic parameter sets for each family. The values are
// the ones the attractors are usually shown with in the literature.
var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			Family: "lorenz", Method: "runge-kutta", Step: 0.01, Iterations: 10000,
			Params:  []float64{10, 28, 8.0 / 3.0},
			Initial: []float64{1, 1, 1},
		},
		"fine": {
			Family: "lorenz", Method: "runge-kutta", Step: 0.002, Iterations: 50000,
			Params:  []float64{10, 28, 8.0 / 3.0},
			Initial: []float64{1, 1, 1},
		},
		"euler": {
			Family: "lorenz", Method: "euler", Step: 0.005, Iterations: 20000,
			Params:  []float64{10, 28, 8.0 / 3.0},
			Initial: []float64{1, 1, 1},
		},
	},
	"chen": {
		"classic": {
			Family: "chen", Method: "runge-kutta", Step: 0.002, Iterations: 30000,
			Params:  []float64{5, -10, -0.38},
			Initial: []float64{1, 1, 1},
		},
	},
	"thomas": {
		"classic": {
			Family: "thomas", Method: "runge-kutta", Step: 0.05, Iterations: 20000,
			Params:  []float64{0.208186},
			Initial: []float64{1, 1, 1},
		},
		"loose": {
			Family: "thomas", Method: "runge-kutta", Step: 0.05, Iterations: 20000,
			Params:  []float64{0.1},
			Initial: []float64{1, 1, 1},
		},
	},
	"four_wing": {
		"classic": {
			Family: "four_wing", Method: "runge-kutta", Step: 0.02, Iterations: 30000,
			Params:  []float64{0.2, 0.01, -0.4},
			Initial: []float64{1.3, -0.18, 0.01},
		},
	},
}

func GetPreset(family, preset string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	return names
}
