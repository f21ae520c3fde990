package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cornellbox/internal/scene"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		code sdl.Scancode
		want scene.Key
	}{
		{sdl.SCANCODE_ESCAPE, scene.KeyEscape},
		{sdl.SCANCODE_W, scene.KeyW},
		{sdl.SCANCODE_EQUALS, scene.KeyPlus},
		{sdl.SCANCODE_KP_PLUS, scene.KeyPlus},
		{sdl.SCANCODE_PAGEDOWN, scene.KeyPageDown},
		{sdl.SCANCODE_F12, scene.KeyF12},
		{sdl.SCANCODE_V, scene.KeyV},
		{sdl.SCANCODE_Z, scene.KeyUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TranslateKey(tt.code), "scancode %d", tt.code)
	}
}

func TestTranslateButton(t *testing.T) {
	b, ok := TranslateButton(sdl.BUTTON_RIGHT)
	assert.True(t, ok)
	assert.Equal(t, scene.ButtonRight, b)

	_, ok = TranslateButton(sdl.BUTTON_X1)
	assert.False(t, ok)
}
