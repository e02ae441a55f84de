package handlers

import (
	"net/http"
)

// GetPreferencesHandler godoc
// @Summary Show display and alert preferences
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Preferences
// @Router /me/preferences [get]
func (s *Server) GetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := s.session(r)
	p, err := s.prefs.Get(r.Context(), userID)
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to load preferences")
		http.Error(w, "could not load preferences", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// UpdatePreferencesHandler godoc
// @Summary Update preferences; absent fields are left unchanged
// @Tags preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body PreferencesRequest true "Fields to change"
// @Success 200 {object} models.Preferences
// @Failure 400 {string} string "Invalid input"
// @Router /me/preferences [put]
func (s *Server) UpdatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var req PreferencesRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	userID, _ := s.session(r)
	ctx := r.Context()
	var err error
	if req.DarkMode != nil {
		err = s.prefs.SetDarkMode(ctx, userID, *req.DarkMode)
	}
	if err == nil && req.BatteryAlert != nil {
		err = s.prefs.SetBatteryAlert(ctx, userID, *req.BatteryAlert)
	}
	if err == nil && req.AmbientLight != nil {
		err = s.prefs.SetAmbientLight(ctx, userID, *req.AmbientLight)
	}
	if err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to save preferences")
		http.Error(w, "could not save preferences", http.StatusInternalServerError)
		return
	}

	s.GetPreferencesHandler(w, r)
}

// ClearDarkModeHandler godoc
// @Summary Forget the dark mode choice and follow the system theme
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Preferences
// @Router /me/preferences/dark-mode [delete]
func (s *Server) ClearDarkModeHandler(w http.ResponseWriter, r *http.Request) {
	userID, _ := s.session(r)
	if err := s.prefs.ClearDarkMode(r.Context(), userID); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("failed to clear dark mode")
		http.Error(w, "could not save preferences", http.StatusInternalServerError)
		return
	}
	s.GetPreferencesHandler(w, r)
}
