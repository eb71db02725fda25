package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	apperrors "roomly/pkg/errors"
	httputil "roomly/pkg/http"
)

// Availability reports selectable start labels for a room and date, and
// the end labels reachable from the start parameter when one is given.
// Pass editId to recompute as if that booking were absent, with its own
// interval offered back.
func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	roomIDStr := query.Get("roomId")
	if roomIDStr == "" {
		httputil.WriteError(w, apperrors.InvalidInput("roomId parameter is required"))
		return
	}
	roomID, err := strconv.Atoi(roomIDStr)
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("invalid roomId parameter: "+roomIDStr))
		return
	}

	date := query.Get("date")
	if date == "" {
		httputil.WriteError(w, apperrors.InvalidInput("date parameter is required"))
		return
	}

	avail, err := h.service.Availability(r.Context(), roomID, date, query.Get("start"), query.Get("editId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, avail)
}

func (h *BookingHandler) registerAvailabilityRoutes(router *httprouter.Router) {
	router.GET("/api/v1/availability", h.Availability)
}
