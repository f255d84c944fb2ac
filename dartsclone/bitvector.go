package dartsclone

import "math/bits"

const unitBits = 32

// bitVector marks DAWG units that are shared by more than one parent.
type bitVector struct {
	units   []uint32
	ranks   []int
	numOnes int
	size    int
}

func (v *bitVector) get(id int) bool {
	return (v.units[id/unitBits]>>(uint(id)%unitBits))&1 == 1
}

// rank returns the number of set bits in [0, id].
func (v *bitVector) rank(id int) int {
	unitID := id / unitBits
	offset := uint(id%unitBits) + 1
	var mask uint32 = 0xFFFFFFFF
	if offset < unitBits {
		mask = ^(mask << offset)
	}
	return v.ranks[unitID] + bits.OnesCount32(v.units[unitID]&mask)
}

func (v *bitVector) set(id int, bit bool) {
	if bit {
		v.units[id/unitBits] |= 1 << (uint(id) % unitBits)
	} else {
		v.units[id/unitBits] &^= 1 << (uint(id) % unitBits)
	}
}

func (v *bitVector) extend() {
	if v.size%unitBits == 0 {
		v.units = append(v.units, 0)
	}
	v.size++
}

func (v *bitVector) build() {
	v.ranks = make([]int, len(v.units))
	v.numOnes = 0
	for i, u := range v.units {
		v.ranks[i] = v.numOnes
		v.numOnes += bits.OnesCount32(u)
	}
}
