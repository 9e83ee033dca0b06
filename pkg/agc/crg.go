package agc

// Crg is the central register group: accumulator, Q, the program
// counter, and the low-product register MP/DV use as A's extension.
type Crg struct {
	A  Register // accumulator
	Q  Register // Q register, saved to QRUPT on interrupt entry
	Z  Register // program counter
	LP Register // low product: MP/DV's low-order extension of A
}

func newCrg() Crg {
	return Crg{
		A:  NewRegister("A", 15),
		Q:  NewRegister("Q", 15),
		Z:  NewRegister("Z", 15),
		LP: NewRegister("LP", 15),
	}
}
