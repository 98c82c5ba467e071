package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterObjects(t *testing.T) {
	objects := []Object{
		{Key: "transcription/"},
		{Key: "transcription/a.TXT"},
		{Key: "transcription/b.wav"},
		{Key: "transcription/c.txt"},
	}

	tests := []struct {
		name      string
		objects   []Object
		extFilter string
		wantKeys  []string
	}{
		{
			name:      "extension filter is case-insensitive",
			objects:   objects,
			extFilter: ".txt",
			wantKeys:  []string{"transcription/a.TXT", "transcription/c.txt"},
		},
		{
			name:     "no filter keeps everything but the prefix marker",
			objects:  objects,
			wantKeys: []string{"transcription/a.TXT", "transcription/b.wav", "transcription/c.txt"},
		},
		{
			name:     "empty input yields empty slice, not nil",
			objects:  nil,
			wantKeys: []string{},
		},
		{
			name:     "prefix marker alone yields empty slice",
			objects:  []Object{{Key: "transcription/"}},
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterObjects(tt.objects, "transcription/", tt.extFilter)

			keys := make([]string, 0, len(got))
			for _, o := range got {
				keys = append(keys, o.Key)
			}
			assert.Equal(t, tt.wantKeys, keys)
			assert.NotNil(t, got)
		})
	}
}

func TestObjectName(t *testing.T) {
	o := Object{Key: "source/recording_20240101_120000_ab12cd34.wav", LastModified: time.Now()}
	assert.Equal(t, "recording_20240101_120000_ab12cd34.wav", o.Name())
}
