package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// GetNotificationsHandler godoc
// @Summary List order notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} NotificationsResult
// @Router /me/notifications [get]
func (s *Server) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	_, sess := s.session(r)
	list := sess.Notifications.Notifications()
	s.writeJSON(w, http.StatusOK, NotificationsResult{Data: list, Meta: Meta{TotalCount: len(list)}})
}

// RemoveNotificationHandler godoc
// @Summary Dismiss one order notification
// @Tags notifications
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 204 "Removed"
// @Failure 404 {string} string "Not found"
// @Router /me/notifications/{orderId} [delete]
func (s *Server) RemoveNotificationHandler(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimSpace(chi.URLParam(r, "orderId"))
	_, sess := s.session(r)
	if !sess.Notifications.Contains(orderID) {
		http.Error(w, "notification not found", http.StatusNotFound)
		return
	}
	sess.Notifications.RemoveNotification(orderID)
	w.WriteHeader(http.StatusNoContent)
}

// ClearNotificationsHandler godoc
// @Summary Dismiss all order notifications
// @Tags notifications
// @Security BearerAuth
// @Success 204 "Cleared"
// @Router /me/notifications [delete]
func (s *Server) ClearNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	_, sess := s.session(r)
	sess.Notifications.ClearAllNotifications()
	w.WriteHeader(http.StatusNoContent)
}
