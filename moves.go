package autocuber

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(autocuber.R, autocuber.U, autocuber.RPrime, autocuber.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW, EndDepth: 1}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW, EndDepth: 1}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double, EndDepth: 1} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW, EndDepth: 1}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW, EndDepth: 1}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double, EndDepth: 1} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW, EndDepth: 1}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW, EndDepth: 1}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double, EndDepth: 1} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW, EndDepth: 1}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW, EndDepth: 1}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double, EndDepth: 1} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW, EndDepth: 1}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW, EndDepth: 1}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double, EndDepth: 1} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW, EndDepth: 1}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW, EndDepth: 1}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double, EndDepth: 1} // Back 180

	// Middle slice moves (on the L, D and F axes)
	M      = Move{Face: FaceL, Turn: CW, StartDepth: 1, EndDepth: 2}  // Middle slice, follows L
	MPrime = Move{Face: FaceL, Turn: CCW, StartDepth: 1, EndDepth: 2} // Middle slice, follows L'
	E      = Move{Face: FaceD, Turn: CW, StartDepth: 1, EndDepth: 2}  // Equator slice, follows D
	S      = Move{Face: FaceF, Turn: CW, StartDepth: 1, EndDepth: 2}  // Standing slice, follows F
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
