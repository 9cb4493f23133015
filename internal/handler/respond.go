package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonOK(w http.ResponseWriter, status int) {
	writeJSON(w, status, map[string]string{"status": "ok"})
}

func jsonError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"status": "error", "error": msg})
}

// decodeBody reads a request body as JSON or, for form posts, as
// url-encoded fields. Values keep their decoded types so handlers can tell
// a string field from anything else.
func decodeBody(r *http.Request) (map[string]interface{}, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		body := map[string]interface{}{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		return body, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	body := make(map[string]interface{}, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			body[key] = values[0]
		}
	}
	return body, nil
}

// stringField returns body[key] when it is present, a string, and non-empty.
func stringField(body map[string]interface{}, key string) (string, bool) {
	value, present := body[key]
	if !present {
		return "", false
	}
	s, isString := value.(string)
	if !isString || s == "" {
		return "", false
	}
	return s, true
}
