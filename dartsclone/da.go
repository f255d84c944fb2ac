// Package dartsclone is a double-array trie over byte keys, laid out the
// same way as darts-clone so that a built array can be saved to disk and
// mapped back without decoding.
package dartsclone

import (
	"errors"
	"io"
	"unsafe"
)

var (
	ErrMisaligned = errors.New("double array buffer is not a multiple of 4 bytes")
	ErrCorrupted  = errors.New("double array is corrupted")
)

type DoubleArray struct {
	array  []uint32
	buffer []byte
}

func NewDoubleArray() *DoubleArray {
	return &DoubleArray{}
}

func (da *DoubleArray) SetArray(array []uint32) {
	da.array = array
	da.buffer = asByteArray(array)
}

// SetBuffer points the trie at a serialized array. The buffer is not copied,
// so it may be a region of a memory mapped file.
func (da *DoubleArray) SetBuffer(buffer []byte) error {
	if len(buffer)%4 != 0 {
		return ErrMisaligned
	}
	da.buffer = buffer
	da.array = asUInt32Array(buffer)
	return nil
}

func (da *DoubleArray) Array() []uint32 {
	return da.array
}

func (da *DoubleArray) ByteArray() []byte {
	return da.buffer
}

func (da *DoubleArray) Size() int {
	return len(da.array)
}

func (da *DoubleArray) TotalSize() int {
	return len(da.buffer)
}

// Build replaces the contents with a trie of keys. keys must be sorted
// bytewise and values must be non-negative.
func (da *DoubleArray) Build(keys [][]byte, values []int, f ProgressFunc) error {
	array, err := build(keys, values, f)
	if err != nil {
		return err
	}
	da.SetArray(array)
	return nil
}

func (da *DoubleArray) Save(w io.Writer) (int, error) {
	return w.Write(da.buffer)
}

// Follow moves from node id along label. The root node is 0. A transition
// that leaves the array means the array was not produced by Build.
func (da *DoubleArray) Follow(id uint32, label byte) (uint32, bool, error) {
	if int(id) >= len(da.array) {
		return 0, false, ErrCorrupted
	}
	next := id ^ daunit(da.array[id]).offset() ^ uint32(label)
	if int(next) >= len(da.array) {
		return 0, false, ErrCorrupted
	}
	if daunit(da.array[next]).label() != uint32(label) {
		return 0, false, nil
	}
	return next, true, nil
}

// Value returns the value of the key that ends at node id.
func (da *DoubleArray) Value(id uint32) (int, bool) {
	if int(id) >= len(da.array) {
		return 0, false
	}
	u := daunit(da.array[id])
	if !u.hasLeaf() {
		return 0, false
	}
	leaf := id ^ u.offset()
	if int(leaf) >= len(da.array) {
		return 0, false
	}
	return daunit(da.array[leaf]).value(), true
}

func (da *DoubleArray) ExactMatchSearch(key []byte) (int, bool) {
	if len(da.array) == 0 {
		return 0, false
	}
	var id uint32
	for _, k := range key {
		next, ok, err := da.Follow(id, k)
		if err != nil || !ok {
			return 0, false
		}
		id = next
	}
	return da.Value(id)
}

// CommonPrefixSearch returns value and end offset pairs for every key that
// is a prefix of key[offset:].
func (da *DoubleArray) CommonPrefixSearch(key []byte, offset int, maxNumResult int) [][2]int {
	var result [][2]int
	if len(da.array) == 0 {
		return result
	}
	var id uint32
	for i := offset; i < len(key) && len(result) < maxNumResult; i++ {
		next, ok, err := da.Follow(id, key[i])
		if err != nil || !ok {
			break
		}
		id = next
		if v, ok := da.Value(id); ok {
			result = append(result, [2]int{v, i + 1})
		}
	}
	return result
}

// Enumerate calls fn for every key in bytewise order. key is reused between
// calls.
func (da *DoubleArray) Enumerate(fn func(key []byte, value int)) {
	if len(da.array) == 0 {
		return
	}
	da.enumerate(0, make([]byte, 0, 64), fn)
}

func (da *DoubleArray) enumerate(id uint32, prefix []byte, fn func([]byte, int)) {
	for label := 1; label < 256; label++ {
		next, ok, err := da.Follow(id, byte(label))
		if err != nil || !ok {
			continue
		}
		key := append(prefix, byte(label))
		if v, ok := da.Value(next); ok {
			fn(key, v)
		}
		da.enumerate(next, key, fn)
	}
}

func asUInt32Array(data []byte) []uint32 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)
}

func asByteArray(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
}

type daunit uint32

func (u daunit) hasLeaf() bool {
	return (uint32(u)>>8)&1 == 1
}

func (u daunit) value() int {
	return int(uint32(u) & (1<<31 - 1))
}

// label keeps bit 31 so that value units never match a label.
func (u daunit) label() uint32 {
	return uint32(u) & (1<<31 | 0xFF)
}

func (u daunit) offset() uint32 {
	return (uint32(u) >> 10) << ((uint32(u) & (1 << 9)) >> 6)
}
