// Package codeckit holds the element codecs used by the persistent vector backends.
package codeckit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-json"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/port/codec"
)

const ErrUnknownCodec errorkit.Error = "unknown codec"

var (
	_ codec.Codec = CBOR{}
	_ codec.Codec = JSON{}
)

// CBOR encodes values in the canonical CBOR encoding,
// so equal values always end up as equal bytes.
type CBOR struct{}

var (
	cborInit    sync.Once
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func initCBORModes() {
	var err error
	cborEncMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborDecMode, err = cbor.DecOptions{
		MaxArrayElements: 10485760,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

func (CBOR) Marshal(v any) ([]byte, error) {
	cborInit.Do(initCBORModes)
	return cborEncMode.Marshal(v)
}

func (CBOR) Unmarshal(data []byte, ptr any) error {
	cborInit.Do(initCBORModes)
	return cborDecMode.Unmarshal(data, ptr)
}

// JSON is meant for values that should stay human readable at rest.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, ptr any) error {
	return json.Unmarshal(data, ptr)
}

var registry = map[string]codec.Codec{
	"cbor": CBOR{},
	"json": JSON{},
}

// Lookup resolves a codec by its name.
func Lookup(name string) (codec.Codec, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownCodec, name, Names())
	}
	return c, nil
}

// Names lists the codec names that Lookup knows.
func Names() []string {
	var names = make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
