// Package codec provides a name-keyed registry of encoders and decoders for
// object values, plus the process-wide serializer compatibility switches.
package codec

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"

	"github.com/cloudcmds/funcbox/object"
)

var (
	mutex  sync.RWMutex
	codecs = map[string]*Codec{}
)

// Codec contains an Encode and a Decode function
type Codec struct {
	Encode func(context.Context, object.Object) (object.Object, error)
	Decode func(context.Context, object.Object) (object.Object, error)
}

func init() {
	RegisterCodec("base64", &Codec{Encode: encodeBase64, Decode: decodeBase64})
	RegisterCodec("hex", &Codec{Encode: encodeHex, Decode: decodeHex})
	RegisterCodec("json", &Codec{Encode: encodeJSON, Decode: decodeJSON})
}

// RegisterCodec registers a new codec
func RegisterCodec(name string, codec *Codec) error {
	mutex.Lock()
	defer mutex.Unlock()

	if _, exists := codecs[name]; exists {
		return errors.New("codec already registered: " + name)
	}
	codecs[name] = codec
	return nil
}

// GetCodec retrieves a codec by its name
func GetCodec(name string) (*Codec, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	codec, exists := codecs[name]
	if !exists {
		return nil, errors.New("codec not found: " + name)
	}
	return codec, nil
}

// Encode encodes obj with the named codec.
func Encode(ctx context.Context, obj object.Object, encoding string) (object.Object, error) {
	codec, err := GetCodec(encoding)
	if err != nil {
		return nil, err
	}
	return codec.Encode(ctx, obj)
}

// Decode decodes obj with the named codec.
func Decode(ctx context.Context, obj object.Object, encoding string) (object.Object, error) {
	codec, err := GetCodec(encoding)
	if err != nil {
		return nil, err
	}
	return codec.Decode(ctx, obj)
}

func encodeBase64(ctx context.Context, obj object.Object) (object.Object, error) {
	data, err := object.AsBytes(obj)
	if err != nil {
		return nil, err
	}
	return object.NewString(base64.StdEncoding.EncodeToString(data)), nil
}

func decodeBase64(ctx context.Context, obj object.Object) (object.Object, error) {
	data, err := object.AsBytes(obj)
	if err != nil {
		return nil, err
	}
	enc := base64.StdEncoding
	dst := make([]byte, enc.DecodedLen(len(data)))
	count, decodeErr := enc.Decode(dst, data)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return object.NewBytes(dst[:count]), nil
}

func encodeHex(ctx context.Context, obj object.Object) (object.Object, error) {
	data, err := object.AsBytes(obj)
	if err != nil {
		return nil, err
	}
	return object.NewString(hex.EncodeToString(data)), nil
}

func decodeHex(ctx context.Context, obj object.Object) (object.Object, error) {
	data, err := object.AsBytes(obj)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, hex.DecodedLen(len(data)))
	count, decodeErr := hex.Decode(dst, data)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return object.NewBytes(dst[:count]), nil
}

func encodeJSON(ctx context.Context, obj object.Object) (object.Object, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj.Interface()); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	if JSONEscapeForwardSlash() {
		out = escapeForwardSlash(out)
	}
	return object.NewString(string(out)), nil
}

func decodeJSON(ctx context.Context, obj object.Object) (object.Object, error) {
	data, err := object.AsBytes(obj)
	if err != nil {
		return nil, err
	}
	var result interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return object.FromGoType(result), nil
}

// escapeForwardSlash rewrites every "/" as "\/". A "/" byte never occurs
// inside an escape sequence of encoded JSON, so a byte-level pass is safe.
func escapeForwardSlash(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte(`/`), []byte(`\/`))
}
