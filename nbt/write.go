package nbt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Write encodes the compound as a little-endian NBT blob with the given root
// name. Compound keys are written in sorted order so repeated encodings of
// the same value are byte-identical.
func Write(ww io.Writer, name string, c Compound) error {
	w := bufio.NewWriter(ww)
	if err := w.WriteByte(TagCompound); err != nil {
		return err
	}
	if err := writeString(w, name); err != nil {
		return err
	}
	if err := writePayload(w, c); err != nil {
		return err
	}
	return w.Flush()
}

// Marshal encodes the compound to a byte slice with an empty root name.
func Marshal(c Compound) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, "", c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func tagOf(v any) (byte, error) {
	switch v.(type) {
	case int8, bool:
		return TagByte, nil
	case int16:
		return TagShort, nil
	case int32:
		return TagInt, nil
	case int64:
		return TagLong, nil
	case float32:
		return TagFloat, nil
	case float64:
		return TagDouble, nil
	case []byte:
		return TagByteArray, nil
	case string:
		return TagString, nil
	case List:
		return TagList, nil
	case Compound:
		return TagCompound, nil
	case []int32:
		return TagIntArray, nil
	case []int64:
		return TagLongArray, nil
	default:
		return 0, errors.Errorf("nbt: unsupported value type %T", v)
	}
}

func writeString(w *bufio.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := w.WriteString(s)
	return err
}

func writePayload(w *bufio.Writer, v any) error {
	switch v := v.(type) {
	case bool:
		b := int8(0)
		if v {
			b = 1
		}
		return binary.Write(w, binary.LittleEndian, b)
	case int8, int16, int32, int64, float32, float64:
		return binary.Write(w, binary.LittleEndian, v)
	case []byte:
		if err := binary.Write(w, binary.LittleEndian, int32(len(v))); err != nil {
			return err
		}
		_, err := w.Write(v)
		return err
	case string:
		return writeString(w, v)
	case List:
		elem := TagEnd
		if len(v) > 0 {
			var err error
			if elem, err = tagOf(v[0]); err != nil {
				return err
			}
		}
		if err := w.WriteByte(elem); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(len(v))); err != nil {
			return err
		}
		for _, e := range v {
			t, err := tagOf(e)
			if err != nil {
				return err
			}
			if t != elem {
				return errors.New("nbt: mixed element types in list")
			}
			if err := writePayload(w, e); err != nil {
				return err
			}
		}
		return nil
	case Compound:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			t, err := tagOf(v[name])
			if err != nil {
				return errors.Wrapf(err, "nbt: tag %q", name)
			}
			if err := w.WriteByte(t); err != nil {
				return err
			}
			if err := writeString(w, name); err != nil {
				return err
			}
			if err := writePayload(w, v[name]); err != nil {
				return errors.Wrapf(err, "nbt: tag %q", name)
			}
		}
		return w.WriteByte(TagEnd)
	case []int32, []int64:
		n := 0
		if a, ok := v.([]int32); ok {
			n = len(a)
		} else {
			n = len(v.([]int64))
		}
		if err := binary.Write(w, binary.LittleEndian, int32(n)); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, v)
	default:
		return errors.Errorf("nbt: unsupported value type %T", v)
	}
}
