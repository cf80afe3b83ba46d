package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrEmptyBody error = errors.New("request body is empty")

// DecodePayload decodes a JSON body into object, rejecting unknown fields.
// An empty body decodes to the zero value so optional payloads stay optional.
func DecodePayload(r *http.Request, object any) (err error) {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	err = decoder.Decode(object)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}
