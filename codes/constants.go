package codes

// Provider method names, used to prefix errors and as default code names.
const (
	MethodSteane              = "Steane"
	MethodBitFlipRepetition   = "BitFlipRepetition"
	MethodPhaseFlipRepetition = "PhaseFlipRepetition"
	MethodQPC                 = "QPC"
	MethodSurface             = "Surface"
	MethodRotatedSurface      = "RotatedSurface"
	MethodToric               = "Toric"
	MethodBivariateBicycle    = "BivariateBicycle"
	MethodFromCheckMatrices   = "FromCheckMatrices"
)

// Minimum sizes per provider.
const (
	minRepetitionChecks = 1
	minQPCBlock         = 1
	minQPCBlocks        = 1
	minSurfaceSide      = 1
	minRotatedSide      = 2
	minToricSide        = 2
	minCyclicOrder      = 1

	// minGridArea is the smallest side product L1·L2 (or m·n) that yields a
	// check: a 1×1 surface patch or QPC is a single bare qubit.
	minGridArea = 2
)

// defaultCodeName names a Pair that carries no name of its own.
const defaultCodeName = "css"
