package isaac

// Reference output vectors for validating stream compatibility with the
// original ISAAC algorithm, taken from a reference run of the public-domain
// implementation. Two of them are independently corroborated by published
// values: the second zero-seed 32-bit batch is Jenkins' canonical test
// vector (starting f650e4c8 e448e96d ...), and the first zero-seed 64-bit
// output is the first PolyGlot book key (9d39247e33776d41), which was
// generated with this engine.

// TestVector holds the expected leading outputs of an engine constructed
// with the given parameters. Exported for external validation tools.
type TestVector struct {
	Name  string
	Alpha uint
	Seed  uint64
	Want  []uint64 // expected leading outputs, 32-bit values zero-extended
}

// Vectors32 are the 32-bit reference vectors.
var Vectors32 = []TestVector{
	{
		Name: "zero seed, alpha 8", Alpha: 8, Seed: 0,
		Want: []uint64{
			0x182600f3, 0x300b4a8d, 0x301b6622, 0xb08acd21,
			0x296fd679, 0x995206e9, 0xb3ffa8b5, 0x0fc99c24,
			0x5f071faf, 0x52251def, 0x894f41c2, 0xcc4c9afb,
			0x96c33f74, 0x347cb71d, 0xc90f8fbd, 0xa658f57a,
		},
	},
	{
		Name: "zero seed, alpha 4", Alpha: 4, Seed: 0,
		Want: []uint64{
			0xa3295006, 0x454667b2, 0x8a7d8cb3, 0x754751b6,
			0x703178bd, 0xd2bbebfb, 0x880b68a8, 0x2f834557,
		},
	},
	{
		Name: "seed 1234, alpha 8", Alpha: 8, Seed: 1234,
		Want: []uint64{
			0x9faca93b, 0xbec515f4, 0x1cbde981, 0x39cc9dff,
			0xb8ded8e1, 0x6a50d632, 0x4cdfbc57, 0xe5077f01,
			0xb8bac14c, 0xb1bb6d9e,
		},
	},
}

// Vectors64 are the 64-bit reference vectors.
var Vectors64 = []TestVector{
	{
		Name: "zero seed, alpha 8", Alpha: 8, Seed: 0,
		Want: []uint64{
			0x9d39247e33776d41, 0x2af7398005aaa5c7, 0x44db015024623547, 0x9c15f73e62a76ae2,
			0x75834465489c0c89, 0x3290ac3a203001bf, 0x0fbbad1f61042279, 0xe83a908ff2fb60ca,
			0x0d7e765d58755c10, 0x1a083822ceafe02d, 0x9605d5f0e25ec3b0, 0xd021ff5cd13a2ed5,
			0x40bdf15d4a672e32, 0x011355146fd56395, 0x5db4832046f3d9e5, 0x239f8b2d7ff719cc,
		},
	},
	{
		Name: "zero seed, alpha 4", Alpha: 4, Seed: 0,
		Want: []uint64{
			0x8a801f362e08e26d, 0x8d3c414cbe1657a4, 0x5c5ded7710c73c6e, 0x76700cda20ed4cf3,
			0xa5408fc37def87df, 0x993617257c495a40, 0x8ad022f764d7a388, 0xa92e0aa1797ecea6,
		},
	},
	{
		Name: "seed 1234, alpha 8", Alpha: 8, Seed: 1234,
		Want: []uint64{
			0x3707456af736479a, 0x2544ffda760edcfa, 0xe51174d7954b781a, 0x811c9b9a307c3a46,
			0x94fc321516ceec37, 0x6f2a0bfc641d42c0, 0xd805553124db6b37, 0x3f8151123b7b7373,
			0x14634547f032214e, 0xbe63d8d0313fe69d,
		},
	},
}
