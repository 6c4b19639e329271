package main

import (
	"fmt"
	"strconv"
)

func parseFloats(args []string, names ...string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], s, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
