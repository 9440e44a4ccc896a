// Package csscode implements the CSS code entity: a pair of generator
// families (Sx, Sz) over a shared qubit universe, validated once at
// construction and queried read-only afterwards.
//
// Construction (New) enforces symplectic orthogonality, |x ∩ z| even for
// every x ∈ Sx and z ∈ Sz, and rejects codes touching no qubit. Both
// failures are reported through wrapped sentinels (ErrInvalidCode,
// ErrEmptyCode); a *Code is never returned half-built.
//
// Queries:
//
//	Family(s), Qubits(), Checks(s)      // raw and labelled families
//	Incidence(q), QubitDict()           // qubit → sector → labels, total
//	CheckMatrices(), CheckMatrix(s)     // sparse triples / dense gf2 matrix
//	CompactCheckMatrix(s)               // dense, columns = universe positions
//	ChainGraph(), ConnectivityGraphs()  // graph views (plain intersection)
//	CheckClusters(s)                    // connected groups of checks
//	CheckNeighbourhood(s, label, r)     // checks within r hops
//	BoundaryQubits(), ClassicalBits()   // derived qubit subsets
//	K(), Reduced(), Syndrome(), Stats() // parameters and helpers
//
// Sectors are the explicit enum {X, Z}; Bool and SectorFromBool keep the
// historical false=X / true=Z tag for callers that need it.
//
// Qubit indices may be sparse and arbitrarily large; everything except the
// dense CheckMatrix scales with the number of qubits and checks, not with
// the largest index.
//
// Construction summaries are logged at klog verbosity 2.
package csscode
