package shopsdk_test

import (
	"encoding/json"
	"net/http"
)

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
