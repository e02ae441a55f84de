package router_test

import (
	"net/http"
	"testing"

	"github.com/rogerio-castellano/pawelier/internal/http/handlers"
	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences(t *testing.T) {
	app := newApp(t)
	token := app.signUp(t, "milo")

	w := app.do(http.MethodGet, "/me/preferences", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Preferences
	decode(t, w, &p)
	assert.Nil(t, p.DarkMode)
	assert.False(t, p.BatteryAlert)

	on := true
	w = app.do(http.MethodPut, "/me/preferences", token, handlers.PreferencesRequest{DarkMode: &on, AmbientLight: &on})
	require.Equal(t, http.StatusOK, w.Code)
	p = models.Preferences{}
	decode(t, w, &p)
	require.NotNil(t, p.DarkMode)
	assert.True(t, *p.DarkMode)
	assert.True(t, p.AmbientLight)
	assert.False(t, p.BatteryAlert)

	off := false
	w = app.do(http.MethodPut, "/me/preferences", token, handlers.PreferencesRequest{AmbientLight: &off})
	require.Equal(t, http.StatusOK, w.Code)
	p = models.Preferences{}
	decode(t, w, &p)
	require.NotNil(t, p.DarkMode)
	assert.True(t, *p.DarkMode)
	assert.False(t, p.AmbientLight)

	w = app.do(http.MethodDelete, "/me/preferences/dark-mode", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	p = models.Preferences{}
	decode(t, w, &p)
	assert.Nil(t, p.DarkMode)
}
