package dictionary

import "encoding/binary"

func bufferToUint32(bytebuffer []byte, offset int) (int, uint32) {
	return offset + 4, binary.LittleEndian.Uint32(bytebuffer[offset:])
}

func bufferToUint64(bytebuffer []byte, offset int) (int, uint64) {
	return offset + 8, binary.LittleEndian.Uint64(bytebuffer[offset:])
}

func bufferToInt64(bytebuffer []byte, offset int) (int, int64) {
	return offset + 8, int64(binary.LittleEndian.Uint64(bytebuffer[offset:]))
}
