//go:build js && wasm

// Command wasm exposes the curve engine to the browser via WebAssembly.
// After loading, it registers a global JavaScript function:
//
//	calculateCurve(jsonString) -> jsonString
//
// The input and output are JSON-encoded CurveInput and CurveResult
// respectively. Fields omitted from the input take their defaults. A rejected
// input returns {"error": ..., "field": ...} naming the offending field.
package main

import (
	"syscall/js"

	"github.com/cxd309/curve-engine/internal/engine"
)

func main() {
	js.Global().Set("calculateCurve", js.FuncOf(calculateCurve))
	select {} // keep the WASM module alive until the page is closed
}

func calculateCurve(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return map[string]any{"error": "no input provided"}
	}

	result, err := engine.RunJSON(args[0].String())
	if err != nil {
		return engine.ErrorDetails(err)
	}
	return result
}
