package handlers

import "net/http"

// GetSummaryHandler godoc
// @Summary Badge counts for the caller's session
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionSummary
// @Router /me/summary [get]
func (s *Server) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	_, sess := s.session(r)
	s.writeJSON(w, http.StatusOK, SessionSummary{
		CartItemCount:     sess.Cart.ItemCount(),
		CartTotal:         sess.Cart.Total(),
		FavoritesCount:    sess.Favorites.Count(),
		NotificationCount: sess.Notifications.Count(),
	})
}
