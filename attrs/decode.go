package attrs

import (
	"github.com/go-viper/mapstructure/v2"
)

// Decode maps raw input onto a struct of declared field types, converting
// compatible values along the way (weak typing: "42" fills an int field).
// It fails when any field cannot be converted.
func Decode[T any](data map[string]any) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, err
	}
	return out, decoder.Decode(data)
}

// DecodeLenient maps raw input onto a struct like Decode, but a field whose
// value cannot be converted is dropped rather than failing the whole decode:
// the field keeps its zero value and the raw input never escapes. Keys with
// no matching field are ignored.
func DecodeLenient[T any](data map[string]any) T {
	out, err := Decode[T](data)
	if err == nil {
		return out
	}
	// Whole-map decode failed; retry key by key so only the offending
	// fields are dropped.
	var result T
	for key, value := range data {
		decoder, derr := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &result,
		})
		if derr != nil {
			return result
		}
		_ = decoder.Decode(map[string]any{key: value})
	}
	return result
}
