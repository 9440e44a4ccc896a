// Package csslab is an in-memory toolkit for the algebra of CSS stabilizer
// codes: building generator families, putting them into canonical order,
// deriving per-qubit and per-check structure, and exporting the result as
// GF(2) check matrices or check graphs.
//
// Subpackages:
//
//	setalg/   - generators as qubit sets over GF(2): symmetric difference,
//	            commutation, canonical order, pivot reduction
//	labels/   - stable check labels and the qubit ↔ check incidence index
//	csscode/  - the validated Code aggregate and everything derived from it
//	codes/    - Steane, repetition, QPC, surface, rotated surface, toric,
//	            bivariate bicycle and matrix-defined providers
//	lattice/  - 2D site geometry behind the surface-family providers
//	gf2/      - dense binary matrices (rank, product, Kronecker, stacking)
//	graph/    - thread-safe generic undirected graph
//	bfs/      - breadth-first traversal and connected components
//	decoders/ - transversal Steane and repetition decoders
//
// Quick start:
//
//	code, err := codes.Build(codes.Surface(3, 3))
//	if err != nil {
//		return err
//	}
//	fmt.Println(code)                        // Surface(3,3)[[13,1]] |Sx|=6 |Sz|=6
//	hx := code.CheckMatrix(csscode.X)        // *gf2.Matrix
//	clusters := code.CheckClusters()         // connected check groups
//
// Logging goes through klog; raise verbosity (-v=2 and up) to trace code
// derivation and pivot reduction.
package csslab
