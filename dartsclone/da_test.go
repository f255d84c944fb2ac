package dartsclone

import (
	"bytes"
	"testing"
)

func TestAsUInt32Array(t *testing.T) {
	ba := []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}
	ia := asUInt32Array(ba)
	if len(ia) != 2 {
		t.Errorf("length is %d", len(ia))
	}
	if ia[0] != 1 {
		t.Errorf("unexpected error %v", ia[0])
	}
	if ia[1] != 2 {
		t.Errorf("unexpected error %v", ia[1])
	}
}

func TestAsByteArray(t *testing.T) {
	ia := []uint32{1, 2}
	ba := asByteArray(ia)
	if len(ba) != 8 {
		t.Errorf("length is %d", len(ba))
	}
	if !bytes.Equal(ba, []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}) {
		t.Errorf("unexpected error %v", ba)
	}
}

func TestSetBuffer(t *testing.T) {
	da := NewDoubleArray()
	if err := da.SetBuffer([]byte{1, 2, 3}); err != ErrMisaligned {
		t.Errorf("got %v, expected %v", err, ErrMisaligned)
	}
}

func TestBuild(t *testing.T) {
	keys := [][]byte{
		[]byte("ກາ"),
		[]byte("ການ"),
		[]byte("ການເມືອງ"),
		[]byte("ຄົນ"),
		[]byte("ມາ"),
	}
	values := []int{0, 1, 2, 3, 4}

	trie := NewDoubleArray()
	var calls int
	err := trie.Build(keys, values, func(state int, max int) {
		calls++
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls == 0 {
		t.Errorf("progress function was not called")
	}

	t.Run("ExactMatchSearch", func(t *testing.T) {
		for i, key := range keys {
			v, ok := trie.ExactMatchSearch(key)
			if !ok {
				t.Errorf("%s not found", key)
				continue
			}
			if got, expected := v, values[i]; got != expected {
				t.Errorf("got %v, expected %v", got, expected)
			}
		}
		if _, ok := trie.ExactMatchSearch([]byte("ກ")); ok {
			t.Errorf("prefix of a key must not match")
		}
		if _, ok := trie.ExactMatchSearch([]byte("ນ")); ok {
			t.Errorf("unknown key must not match")
		}
	})

	t.Run("CommonPrefixSearch", func(t *testing.T) {
		text := []byte("ການເມືອງໃຫມ່")
		ret := trie.CommonPrefixSearch(text, 0, 10)
		if len(ret) != 3 {
			t.Fatalf("got %v, expected %v", len(ret), 3)
		}
		for i := 0; i < len(ret); i++ {
			if got, expected := ret[i][0], i; got != expected {
				t.Errorf("got %v, expected %v", got, expected)
			}
			if got, expected := string(text[0:ret[i][1]]), string(keys[i]); got != expected {
				t.Errorf("got %v, expected %v", got, expected)
			}
		}
		if ret := trie.CommonPrefixSearch(text, 0, 1); len(ret) != 1 {
			t.Errorf("got %v, expected %v", len(ret), 1)
		}
	})

	t.Run("Enumerate", func(t *testing.T) {
		var got [][]byte
		var gotValues []int
		trie.Enumerate(func(key []byte, value int) {
			got = append(got, append([]byte(nil), key...))
			gotValues = append(gotValues, value)
		})
		if len(got) != len(keys) {
			t.Fatalf("got %v, expected %v", len(got), len(keys))
		}
		for i := range keys {
			if !bytes.Equal(got[i], keys[i]) {
				t.Errorf("got %s, expected %s", got[i], keys[i])
			}
			if gotValues[i] != values[i] {
				t.Errorf("got %v, expected %v", gotValues[i], values[i])
			}
		}
	})

	t.Run("SetBuffer", func(t *testing.T) {
		var buf bytes.Buffer
		if _, err := trie.Save(&buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		loaded := NewDoubleArray()
		if err := loaded.SetBuffer(buf.Bytes()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, ok := loaded.ExactMatchSearch(keys[2])
		if !ok || v != 2 {
			t.Errorf("got %v %v, expected %v", v, ok, 2)
		}
	})
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		keys     [][]byte
		values   []int
		expected error
	}{
		{"order", [][]byte{[]byte("b"), []byte("a")}, []int{0, 1}, ErrKeyOrder},
		{"empty", [][]byte{[]byte("")}, []int{0}, ErrEmptyKey},
		{"null", [][]byte{[]byte("a\x00")}, []int{0}, ErrNullLabel},
		{"negative", [][]byte{[]byte("a")}, []int{-1}, ErrNegativeValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDoubleArray().Build(tt.keys, tt.values, nil)
			if err != tt.expected {
				t.Errorf("got %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestFollowEmpty(t *testing.T) {
	trie := NewDoubleArray()
	if _, _, err := trie.Follow(0, 'a'); err != ErrCorrupted {
		t.Errorf("got %v, expected %v", err, ErrCorrupted)
	}
	if _, ok := trie.ExactMatchSearch([]byte("a")); ok {
		t.Errorf("empty trie must not match")
	}
}

func TestFollowCorrupted(t *testing.T) {
	trie := NewDoubleArray()
	// root offset points far past the end of the array
	trie.SetArray([]uint32{0xFFFFFC00})
	if _, _, err := trie.Follow(0, 'a'); err != ErrCorrupted {
		t.Errorf("got %v, expected %v", err, ErrCorrupted)
	}
}
