package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    int
		wantErr bool
	}{
		{name: "Ausente usa padrão", url: "/x", want: 20},
		{name: "Valor válido", url: "/x?limit=5", want: 5},
		{name: "Acima do máximo", url: "/x?limit=500", want: 100},
		{name: "Zero", url: "/x?limit=0", wantErr: true},
		{name: "Não numérico", url: "/x?limit=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QueryInt(httptest.NewRequest("GET", tt.url, nil), "limit", 20, 100)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateExecutionID(t *testing.T) {
	id, err := GenerateExecutionID()

	assert.NoError(t, err)
	assert.Len(t, id, 21)
}
