package dictionary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	DescriptionSize   = 256
	HeaderStorageSize = 8 + 8 + DescriptionSize
)

var ErrInvalidDictionary = errors.New("invalid dictionary")

type DictionaryHeader struct {
	Version     uint64
	CreateTime  int64
	Description string
}

func NewDictionaryHeader(version uint64, createTime int64, description string) *DictionaryHeader {
	return &DictionaryHeader{
		Version:     version,
		CreateTime:  createTime,
		Description: description,
	}
}

func ParseDictionaryHeader(input []byte, offset int) (*DictionaryHeader, error) {
	if len(input)-offset < HeaderStorageSize {
		return nil, fmt.Errorf("%w: header is truncated", ErrInvalidDictionary)
	}
	offset, version := bufferToUint64(input, offset)
	offset, createTime := bufferToInt64(input, offset)
	if !IsValidVersion(version) {
		return nil, fmt.Errorf("%w: unknown version %#x", ErrInvalidDictionary, version)
	}

	desc := input[offset : offset+DescriptionSize]
	if i := bytes.IndexByte(desc, 0); i >= 0 {
		desc = desc[:i]
	}

	return &DictionaryHeader{
		Version:     version,
		CreateTime:  createTime,
		Description: string(desc),
	}, nil
}

func (dh *DictionaryHeader) ToBytes() ([]byte, error) {
	desc := []byte(dh.Description)
	if len(desc) > DescriptionSize {
		return nil, errors.New("description is too long")
	}

	buf := make([]byte, HeaderStorageSize)
	binary.LittleEndian.PutUint64(buf, dh.Version)
	binary.LittleEndian.PutUint64(buf[8:], uint64(dh.CreateTime))
	copy(buf[16:], desc)
	return buf, nil
}
