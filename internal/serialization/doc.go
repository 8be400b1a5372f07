// Package serialization provides the text format for saving and loading
// trained networks.
//
// A model file is line oriented:
//
//	Format Structure:
//	  [line 1: layer sizes joined by ", "]            2, 3, 1
//	  [line 2: weight matrices joined by " | "]       3 2 0.1 0.2 ... | 1 3 0.7 ...
//	  [line 3: bias matrices joined by " | "]         3 1 0.4 ... | 1 1 0.9
//	  [line 4: optional "<activation>, <rate>"]       sigmoid, 0.5
//
// Each matrix uses the textual form of the matrix package: row count,
// column count and the row-major values, separated by spaces. Weight and
// bias matrices are listed in ascending layer order.
//
// The fourth line is optional. Files without it carry no activation or
// learning rate, and the loader falls back to values supplied by the caller.
//
// Example usage:
//
//	// Save a model
//	if err := serialization.WriteFile("xor.hnn", model); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load a model
//	model, err := serialization.ReadFile("xor.hnn")
//	if errors.Is(err, serialization.ErrPersistence) {
//	    // fall back to a fresh network
//	}
package serialization
