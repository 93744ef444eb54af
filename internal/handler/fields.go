package handler

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/osse101/BuyerMerchant_Go/internal/pricing"
)

// decodeFields reads a submitted form as key/value strings. JSON bodies are flat objects
// whose values may be strings, numbers, booleans or null; anything else is form-encoded.
func decodeFields(r *http.Request) (pricing.FieldValues, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == ContentTypeJSON {
		return decodeJSONFields(r)
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	fields := make(pricing.FieldValues, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) == 0 {
			continue
		}
		// the last value wins so a clicked button overrides a hidden input of the same name
		fields[k] = vs[len(vs)-1]
	}
	return fields, nil
}

func decodeJSONFields(r *http.Request) (pricing.FieldValues, error) {
	raw := map[string]any{}
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	fields := make(pricing.FieldValues, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			continue
		case string:
			fields[k] = val
		case json.Number:
			fields[k] = val.String()
		case bool:
			fields[k] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("field %q: unsupported value %T", k, v)
		}
	}
	return fields, nil
}
