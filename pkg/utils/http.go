package utils

import (
	"fmt"
	"net/http"
	"strconv"
)

// QueryInt lê um parâmetro inteiro da query string, usando o padrão quando ausente.
// O valor é limitado a [1, max].
func QueryInt(r *http.Request, key string, def, max int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("parâmetro %s inválido: %q", key, raw)
	}

	if value > max {
		return max, nil
	}

	return value, nil
}
