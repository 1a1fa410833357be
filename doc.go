/*
Package tancalc computes tangents of angles given in degrees, the way the
original desktop calculator did: a fixed 50-digit Pi constant, range
reduction into [-Pi, Pi], 15-term Maclaurin series for sine and cosine,
and an explicit undefined result when the cosine vanishes.

The pure math lives in pkg/trig and can be used on its own. This package
adds the managed Engine around it: structured logging, lifecycle hooks
for observability, and an optional calculation history tape persisted
through pkg/ports.HistoryStore adapters (memory, file, redis).

# Quick Start

	engine := tancalc.New()
	result, err := engine.Calculate(context.Background(), "45")
	if err != nil {
		// errors.Is(err, trig.ErrInvalidInput) or trig.ErrUndefinedTangent
	}
	fmt.Printf("%.6f\n", result) // 1.000000

A Runner is included for interactive terminal sessions; the cmd/tancalc
binary wires it together with HTTP and MCP serving adapters.
*/
package tancalc
