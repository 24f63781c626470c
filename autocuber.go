// Package autocuber animates a 3x3 Rubik's cube: it maps abstract face moves
// onto the pieces they affect, tracks each piece's discrete position and
// orientation, and interpolates a visually correct in-between pose for every
// piece while a move is in flight.
//
// # Quick Start
//
// Apply moves instantly and inspect the result:
//
//	cube := autocuber.NewCube()
//	cube.Apply(autocuber.R, autocuber.U, autocuber.RPrime, autocuber.UPrime)
//	fmt.Println(cube)
//	fmt.Println("Solved:", cube.IsSolved())
//
// # Animation
//
// The Sequencer runs moves one fixed-duration step at a time. Drive it with
// frame deltas and read the rendered pose of each piece every frame:
//
//	seq := autocuber.NewSequencer(cube, autocuber.WithTurnDuration(250*time.Millisecond))
//	moves, _ := autocuber.ParseMoves("R U R' U'")
//	seq.PerformAlgorithm(moves)
//
//	for seq.Animating() {
//	    seq.Advance(frameDelta)
//	    for _, piece := range cube.Pieces() {
//	        pos, ori := piece.RenderedPose(seq.TurnDuration())
//	        // hand pos/ori to the renderer
//	    }
//	}
//
// A piece turning about an axis sweeps an arc at constant distance from that
// axis rather than cutting a straight chord through the cube, and every
// orientation is snapped back to the cube's 24 valid rotations after each
// move, so the model stays exact over thousands of turns.
//
// # Notation
//
// Moves parse from Singmaster notation, including slice and wide turns:
//
//	moves, err := autocuber.ParseMoves("R U2 M' r F'")
//
// # History
//
// The Sequencer records executed moves; JumpToHistoryStep replays forward or
// inverts backward to any point in the recorded sequence.
package autocuber
