package stack

import s "github.com/bnclabs/gosettings"

// Alignment block sizes should be multiples of Alignment, and blocks
// obtained from the memory source shall be aligned to it.
const Alignment = int64(8)

// Minblocksize minimum size allowed for a stack's initial block.
const Minblocksize = int64(32)

// Maxblocksize maximum size of a single memory block. Can be used as
// default for settings-parameter `maxblocksize`.
const Maxblocksize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Growthfactor default multiplier applied to the block size after
// every block acquisition.
const Growthfactor = float64(2.0)

// Stack allocator configurable parameters and default values.
//
// "growthfactor" (float64, default: 2.0)
//		Multiplier applied to the block size after every block
//		acquisition, should be greater than 1.
//
// "maxblocksize" (int64, default: Maxblocksize)
//		Ceiling on the size of any single block the growth policy
//		will produce. A request that cannot fit in maxblocksize
//		bytes can never be satisfied.
func Defaultsettings() s.Settings {
	return s.Settings{
		"growthfactor": Growthfactor,
		"maxblocksize": Maxblocksize,
	}
}
