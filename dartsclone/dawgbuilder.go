package dartsclone

import "errors"

const (
	initialTableSize = 1 << 10
	dawgRoot         = 0
)

var (
	ErrNegativeValue = errors.New("negative value")
	ErrEmptyKey      = errors.New("zero-length key")
	ErrNullLabel     = errors.New("invalid null character")
	ErrKeyOrder      = errors.New("wrong key order")
)

// dawgNode is a node of the DAWG while it is still being built.
type dawgNode struct {
	child      int
	sibling    int
	label      byte
	isState    bool
	hasSibling bool
}

func (n *dawgNode) unit() uint32 {
	var sibling uint32
	if n.hasSibling {
		sibling = 1
	}
	if n.label == 0 {
		return uint32(n.child)<<1 | sibling
	}
	var state uint32
	if n.isState {
		state = 2
	}
	return uint32(n.child)<<2 | state | sibling
}

// dawgUnit is a frozen DAWG node.
type dawgUnit uint32

func (u dawgUnit) child() int { return int(uint32(u) >> 2) }
func (u dawgUnit) hasSibling() bool { return uint32(u)&1 == 1 }
func (u dawgUnit) value() int { return int(uint32(u) >> 1) }
func (u dawgUnit) isState() bool { return uint32(u)&2 == 2 }

type intStack []int

func (s intStack) top() int { return s[len(s)-1] }

func (s *intStack) push(v int) { *s = append(*s, v) }

func (s *intStack) pop() int {
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

// dawgBuilder merges common suffixes of sorted keys before the double array
// is laid out.
type dawgBuilder struct {
	nodes         []dawgNode
	units         []dawgUnit
	labels        []byte
	intersections bitVector
	table         []int
	nodeStack     intStack
	recycleBin    intStack
	numStates     int
}

func newDAWGBuilder() *dawgBuilder {
	b := &dawgBuilder{
		table: make([]int, initialTableSize),
	}
	b.appendNode()
	b.appendUnit()
	b.numStates = 1
	b.nodes[0].label = 0xFF
	b.nodeStack.push(0)
	return b
}

func (b *dawgBuilder) child(id int) int { return b.units[id].child() }

func (b *dawgBuilder) sibling(id int) int {
	if b.units[id].hasSibling() {
		return id + 1
	}
	return 0
}

func (b *dawgBuilder) value(id int) int { return b.units[id].value() }
func (b *dawgBuilder) isLeaf(id int) bool { return b.labels[id] == 0 }
func (b *dawgBuilder) label(id int) byte { return b.labels[id] }
func (b *dawgBuilder) isIntersection(id int) bool { return b.intersections.get(id) }
func (b *dawgBuilder) intersectionID(id int) int { return b.intersections.rank(id) - 1 }
func (b *dawgBuilder) numIntersections() int { return b.intersections.numOnes }
func (b *dawgBuilder) size() int { return len(b.units) }

func (b *dawgBuilder) finish() {
	b.flush(0)

	b.units[0] = dawgUnit(b.nodes[0].unit())
	b.labels[0] = b.nodes[0].label

	b.nodes = nil
	b.table = nil
	b.nodeStack = nil
	b.recycleBin = nil

	b.intersections.build()
}

func (b *dawgBuilder) insert(key []byte, value int) error {
	if value < 0 {
		return ErrNegativeValue
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}

	id := 0
	keyPos := 0
	for ; keyPos <= len(key); keyPos++ {
		childID := b.nodes[id].child
		if childID == 0 {
			break
		}

		var keyLabel byte
		if keyPos < len(key) {
			keyLabel = key[keyPos]
			if keyLabel == 0 {
				return ErrNullLabel
			}
		}

		unitLabel := b.nodes[childID].label
		if keyLabel < unitLabel {
			return ErrKeyOrder
		}
		if keyLabel > unitLabel {
			b.nodes[childID].hasSibling = true
			b.flush(childID)
			break
		}
		id = childID
	}

	if keyPos > len(key) {
		// duplicated key, the first value wins
		return nil
	}

	for ; keyPos <= len(key); keyPos++ {
		var keyLabel byte
		if keyPos < len(key) {
			keyLabel = key[keyPos]
			if keyLabel == 0 {
				return ErrNullLabel
			}
		}
		childID := b.appendNode()
		if b.nodes[id].child == 0 {
			b.nodes[childID].isState = true
		}
		b.nodes[childID].sibling = b.nodes[id].child
		b.nodes[childID].label = keyLabel
		b.nodes[id].child = childID
		b.nodeStack.push(childID)
		id = childID
	}
	b.nodes[id].child = value
	return nil
}

func (b *dawgBuilder) flush(id int) {
	for b.nodeStack.top() != id {
		nodeID := b.nodeStack.pop()

		if b.numStates >= len(b.table)-len(b.table)/4 {
			b.expandTable()
		}

		numSiblings := 0
		for i := nodeID; i != 0; i = b.nodes[i].sibling {
			numSiblings++
		}

		matchID, hashID := b.findNode(nodeID)
		if matchID != 0 {
			b.intersections.set(matchID, true)
		} else {
			unitID := 0
			for i := 0; i < numSiblings; i++ {
				unitID = b.appendUnit()
			}
			for i := nodeID; i != 0; i = b.nodes[i].sibling {
				b.units[unitID] = dawgUnit(b.nodes[i].unit())
				b.labels[unitID] = b.nodes[i].label
				unitID--
			}
			matchID = unitID + 1
			b.table[hashID] = matchID
			b.numStates++
		}

		for i := nodeID; i != 0; {
			next := b.nodes[i].sibling
			b.recycleBin.push(i)
			i = next
		}

		b.nodes[b.nodeStack.top()].child = matchID
	}
	b.nodeStack.pop()
}

func (b *dawgBuilder) expandTable() {
	b.table = make([]int, len(b.table)*2)
	for id := 1; id < len(b.units); id++ {
		if b.labels[id] == 0 || b.units[id].isState() {
			b.table[b.findUnit(id)] = id
		}
	}
}

func (b *dawgBuilder) findUnit(id int) int {
	hashID := b.hashUnit(id) % len(b.table)
	for b.table[hashID] != 0 {
		hashID = (hashID + 1) % len(b.table)
	}
	return hashID
}

func (b *dawgBuilder) findNode(nodeID int) (int, int) {
	hashID := b.hashNode(nodeID) % len(b.table)
	for ; ; hashID = (hashID + 1) % len(b.table) {
		unitID := b.table[hashID]
		if unitID == 0 {
			return 0, hashID
		}
		if b.areEqual(nodeID, unitID) {
			return unitID, hashID
		}
	}
}

func (b *dawgBuilder) areEqual(nodeID int, unitID int) bool {
	for i := b.nodes[nodeID].sibling; i != 0; i = b.nodes[i].sibling {
		if !b.units[unitID].hasSibling() {
			return false
		}
		unitID++
	}
	if b.units[unitID].hasSibling() {
		return false
	}

	for i := nodeID; i != 0; i = b.nodes[i].sibling {
		if dawgUnit(b.nodes[i].unit()) != b.units[unitID] || b.nodes[i].label != b.labels[unitID] {
			return false
		}
		unitID--
	}
	return true
}

func (b *dawgBuilder) hashUnit(id int) int {
	h := 0
	for ; id != 0; id++ {
		u := b.units[id]
		h ^= hash(uint32(b.labels[id])<<24 ^ uint32(u))
		if !u.hasSibling() {
			break
		}
	}
	return h
}

func (b *dawgBuilder) hashNode(id int) int {
	h := 0
	for ; id != 0; id = b.nodes[id].sibling {
		h ^= hash(uint32(b.nodes[id].label)<<24 ^ b.nodes[id].unit())
	}
	return h
}

func (b *dawgBuilder) appendUnit() int {
	b.intersections.extend()
	b.units = append(b.units, 0)
	b.labels = append(b.labels, 0)
	return b.intersections.size - 1
}

func (b *dawgBuilder) appendNode() int {
	if len(b.recycleBin) == 0 {
		b.nodes = append(b.nodes, dawgNode{})
		return len(b.nodes) - 1
	}
	id := b.recycleBin.pop()
	b.nodes[id] = dawgNode{}
	return id
}

func hash(key uint32) int {
	key = ^key + (key << 15)
	key = key ^ (key >> 12)
	key = key + (key << 2)
	key = key ^ (key >> 4)
	key = key * 2057
	key = key ^ (key >> 16)
	return int(key)
}
