package nbt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Read decodes a little-endian NBT blob whose root tag is a compound and
// returns the root's payload. The root name is read and discarded.
func Read(rr io.Reader) (Compound, error) {
	r := newReader(rr)
	id, err := r.r.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "nbt: read root tag id")
	}
	if id != TagCompound {
		return nil, errors.Errorf("nbt: root tag is 0x%02x, want compound", id)
	}
	if _, err := r.readString(); err != nil {
		return nil, errors.Wrap(err, "nbt: read root name")
	}
	v, err := r.readPayload(TagCompound, 0)
	if err != nil {
		return nil, err
	}
	return v.(Compound), nil
}

// ReadBytes decodes a little-endian NBT blob held in memory.
func ReadBytes(b []byte) (Compound, error) {
	return Read(bytes.NewReader(b))
}

type reader struct {
	r *bufio.Reader
}

func newReader(rr io.Reader) *reader {
	ret := &reader{}
	if br, ok := rr.(*bufio.Reader); ok {
		ret.r = br
	} else {
		ret.r = bufio.NewReader(rr)
	}
	return ret
}

func (r *reader) readString() (string, error) {
	var n uint16
	if err := binary.Read(r.r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (r *reader) readPayload(id byte, depth int) (any, error) {
	if depth > maxDepth {
		return nil, errors.New("nbt: nesting too deep")
	}
	switch id {
	case TagByte:
		var v int8
		err := binary.Read(r.r, binary.LittleEndian, &v)
		return v, err
	case TagShort:
		var v int16
		err := binary.Read(r.r, binary.LittleEndian, &v)
		return v, err
	case TagInt:
		var v int32
		err := binary.Read(r.r, binary.LittleEndian, &v)
		return v, err
	case TagLong:
		var v int64
		err := binary.Read(r.r, binary.LittleEndian, &v)
		return v, err
	case TagFloat:
		var v float32
		err := binary.Read(r.r, binary.LittleEndian, &v)
		return v, err
	case TagDouble:
		var v float64
		err := binary.Read(r.r, binary.LittleEndian, &v)
		return v, err
	case TagByteArray:
		var n int32
		if err := binary.Read(r.r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.New("nbt: negative array length")
		}
		buf := make([]byte, n)
		_, err := io.ReadFull(r.r, buf)
		return buf, err
	case TagString:
		return r.readString()
	case TagList:
		elem, err := r.r.ReadByte()
		if err != nil {
			return nil, err
		}
		var n int32
		if err := binary.Read(r.r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.New("nbt: negative list length")
		}
		list := make(List, 0, n)
		for i := int32(0); i < n; i++ {
			v, err := r.readPayload(elem, depth+1)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case TagCompound:
		c := Compound{}
		for {
			child, err := r.r.ReadByte()
			if err != nil {
				return nil, err
			}
			if child == TagEnd {
				return c, nil
			}
			name, err := r.readString()
			if err != nil {
				return nil, err
			}
			v, err := r.readPayload(child, depth+1)
			if err != nil {
				return nil, errors.Wrapf(err, "nbt: tag %q", name)
			}
			c[name] = v
		}
	case TagIntArray:
		var n int32
		if err := binary.Read(r.r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.New("nbt: negative array length")
		}
		arr := make([]int32, n)
		if err := binary.Read(r.r, binary.LittleEndian, arr); err != nil {
			return nil, err
		}
		return arr, nil
	case TagLongArray:
		var n int32
		if err := binary.Read(r.r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.New("nbt: negative array length")
		}
		arr := make([]int64, n)
		if err := binary.Read(r.r, binary.LittleEndian, arr); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, errors.Errorf("nbt: unknown tag 0x%02x", id)
	}
}
