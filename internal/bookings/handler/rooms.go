package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"roomly/internal/rooms"
	httputil "roomly/pkg/http"
)

func (h *BookingHandler) Rooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteSuccess(w, rooms.All())
}

func (h *BookingHandler) registerRoomRoutes(router *httprouter.Router) {
	router.GET("/api/v1/rooms", h.Rooms)
}
