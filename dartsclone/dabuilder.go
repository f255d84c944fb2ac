package dartsclone

const (
	blockSize      = 256
	numExtraBlocks = 16
	numExtras      = blockSize * numExtraBlocks
	upperMask      = 0xFF << 21
	lowerMask      = 0xFF
)

// ProgressFunc is called with the number of keys inserted so far.
type ProgressFunc func(state int, max int)

func unitSetHasLeaf(u uint32, hasLeaf bool) uint32 {
	if hasLeaf {
		return u | 1<<8
	}
	return u &^ (1 << 8)
}

func unitSetValue(value int) uint32 {
	return uint32(value) | 1<<31
}

func unitSetLabel(u uint32, label byte) uint32 {
	return u&^0xFF | uint32(label)
}

func unitSetOffset(u uint32, offset int) uint32 {
	u &= 1<<31 | 1<<8 | 0xFF
	if uint32(offset) < 1<<21 {
		return u | uint32(offset)<<10
	}
	return u | uint32(offset)<<2 | 1<<9
}

type extraUnit struct {
	prev    int
	next    int
	isFixed bool
	isUsed  bool
}

type doubleArrayBuilder struct {
	units      []uint32
	extras     []extraUnit
	labels     []byte
	table      []int
	extrasHead int
}

// build lays out the keys, which must be sorted and unique, as a double
// array. Values must be in [0, 1<<31).
func build(keys [][]byte, values []int, progress ProgressFunc) ([]uint32, error) {
	dawg := newDAWGBuilder()
	for i, key := range keys {
		if err := dawg.insert(key, values[i]); err != nil {
			return nil, err
		}
		if progress != nil {
			progress(i+1, len(keys)+1)
		}
	}
	dawg.finish()

	dab := &doubleArrayBuilder{}
	dab.buildFromDAWG(dawg)
	if progress != nil {
		progress(len(keys)+1, len(keys)+1)
	}
	return dab.units, nil
}

func (dab *doubleArrayBuilder) numBlocks() int {
	return len(dab.units) / blockSize
}

func (dab *doubleArrayBuilder) extra(id int) *extraUnit {
	return &dab.extras[id%numExtras]
}

func (dab *doubleArrayBuilder) buildFromDAWG(dawg *dawgBuilder) {
	numUnits := 1
	for numUnits < dawg.size() {
		numUnits *= 2
	}
	dab.units = make([]uint32, 0, numUnits)
	dab.table = make([]int, dawg.numIntersections())
	dab.extras = make([]extraUnit, numExtras)

	dab.reserveID(0)
	dab.extra(0).isUsed = true
	dab.units[0] = unitSetOffset(dab.units[0], 1)
	dab.units[0] = unitSetLabel(dab.units[0], 0)

	if dawg.child(dawgRoot) != 0 {
		dab.insertFromDAWG(dawg, dawgRoot, 0)
	}

	dab.fixAllBlocks()

	dab.extras = nil
	dab.labels = nil
	dab.table = nil
}

func (dab *doubleArrayBuilder) insertFromDAWG(dawg *dawgBuilder, dawgID int, dicID int) {
	dawgChildID := dawg.child(dawgID)
	if dawg.isIntersection(dawgChildID) {
		intersectionID := dawg.intersectionID(dawgChildID)
		offset := dab.table[intersectionID]
		if offset != 0 {
			offset ^= dicID
			if offset&upperMask == 0 || offset&lowerMask == 0 {
				if dawg.isLeaf(dawgChildID) {
					dab.units[dicID] = unitSetHasLeaf(dab.units[dicID], true)
				}
				dab.units[dicID] = unitSetOffset(dab.units[dicID], offset)
				return
			}
		}
	}

	offset := dab.arrangeFromDAWG(dawg, dawgID, dicID)
	if dawg.isIntersection(dawgChildID) {
		dab.table[dawg.intersectionID(dawgChildID)] = offset
	}

	for ; dawgChildID != 0; dawgChildID = dawg.sibling(dawgChildID) {
		childLabel := dawg.label(dawgChildID)
		if childLabel != 0 {
			dab.insertFromDAWG(dawg, dawgChildID, offset^int(childLabel))
		}
	}
}

func (dab *doubleArrayBuilder) arrangeFromDAWG(dawg *dawgBuilder, dawgID int, dicID int) int {
	dab.labels = dab.labels[:0]
	for id := dawg.child(dawgID); id != 0; id = dawg.sibling(id) {
		dab.labels = append(dab.labels, dawg.label(id))
	}

	offset := dab.findValidOffset(dicID)
	dab.units[dicID] = unitSetOffset(dab.units[dicID], dicID^offset)

	dawgChildID := dawg.child(dawgID)
	for _, label := range dab.labels {
		dicChildID := offset ^ int(label)
		dab.reserveID(dicChildID)

		if dawg.isLeaf(dawgChildID) {
			dab.units[dicID] = unitSetHasLeaf(dab.units[dicID], true)
			dab.units[dicChildID] = unitSetValue(dawg.value(dawgChildID))
		} else {
			dab.units[dicChildID] = unitSetLabel(dab.units[dicChildID], label)
		}
		dawgChildID = dawg.sibling(dawgChildID)
	}
	dab.extra(offset).isUsed = true

	return offset
}

func (dab *doubleArrayBuilder) findValidOffset(id int) int {
	if dab.extrasHead >= len(dab.units) {
		return len(dab.units) | (id & lowerMask)
	}

	unfixedID := dab.extrasHead
	for {
		offset := unfixedID ^ int(dab.labels[0])
		if dab.isValidOffset(id, offset) {
			return offset
		}
		unfixedID = dab.extra(unfixedID).next
		if unfixedID == dab.extrasHead {
			break
		}
	}
	return len(dab.units) | (id & lowerMask)
}

func (dab *doubleArrayBuilder) isValidOffset(id int, offset int) bool {
	if dab.extra(offset).isUsed {
		return false
	}

	relOffset := id ^ offset
	if relOffset&lowerMask != 0 && relOffset&upperMask != 0 {
		return false
	}

	for _, label := range dab.labels[1:] {
		if dab.extra(offset ^ int(label)).isFixed {
			return false
		}
	}
	return true
}

func (dab *doubleArrayBuilder) reserveID(id int) {
	if id >= len(dab.units) {
		dab.expandUnits()
	}

	if id == dab.extrasHead {
		dab.extrasHead = dab.extra(id).next
		if dab.extrasHead == id {
			dab.extrasHead = len(dab.units)
		}
	}
	dab.extra(dab.extra(id).prev).next = dab.extra(id).next
	dab.extra(dab.extra(id).next).prev = dab.extra(id).prev
	dab.extra(id).isFixed = true
}

func (dab *doubleArrayBuilder) expandUnits() {
	srcNumUnits := len(dab.units)
	srcNumBlocks := dab.numBlocks()

	destNumUnits := srcNumUnits + blockSize
	destNumBlocks := srcNumBlocks + 1

	if destNumBlocks > numExtraBlocks {
		dab.fixBlock(srcNumBlocks - numExtraBlocks)
	}

	dab.units = append(dab.units, make([]uint32, blockSize)...)
	if destNumBlocks > numExtraBlocks {
		for id := srcNumUnits; id < destNumUnits; id++ {
			e := dab.extra(id)
			e.isUsed = false
			e.isFixed = false
		}
	}

	for i := srcNumUnits + 1; i < destNumUnits; i++ {
		dab.extra(i - 1).next = i
		dab.extra(i).prev = i - 1
	}

	dab.extra(srcNumUnits).prev = destNumUnits - 1
	dab.extra(destNumUnits - 1).next = srcNumUnits

	dab.extra(srcNumUnits).prev = dab.extra(dab.extrasHead).prev
	dab.extra(destNumUnits - 1).next = dab.extrasHead

	dab.extra(dab.extra(dab.extrasHead).prev).next = srcNumUnits
	dab.extra(dab.extrasHead).prev = destNumUnits - 1
}

func (dab *doubleArrayBuilder) fixAllBlocks() {
	begin := 0
	end := dab.numBlocks()
	if end > numExtraBlocks {
		begin = end - numExtraBlocks
	}
	for blockID := begin; blockID != end; blockID++ {
		dab.fixBlock(blockID)
	}
}

func (dab *doubleArrayBuilder) fixBlock(blockID int) {
	begin := blockID * blockSize
	end := begin + blockSize

	unusedOffset := 0
	for offset := begin; offset != end; offset++ {
		if !dab.extra(offset).isUsed {
			unusedOffset = offset
			break
		}
	}

	for id := begin; id != end; id++ {
		if !dab.extra(id).isFixed {
			dab.reserveID(id)
			dab.units[id] = unitSetLabel(dab.units[id], byte(id^unusedOffset))
		}
	}
}
