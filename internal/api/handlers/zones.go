package handlers

import (
	"net/http"

	"trailer-routing-service/internal/api/dto"
	"trailer-routing-service/internal/domain"
)

// Zones exposes the fixed zone catalog so the form can render defaults.
func Zones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListZonesResponse{Zones: make([]dto.ZoneResponse, 0, len(domain.AllZoneIDs()))}
	for _, id := range domain.AllZoneIDs() {
		zone, _ := domain.ZoneByID(id)
		res.Zones = append(res.Zones, dto.ZoneResponse{
			ID:           string(zone.ID),
			Label:        zone.Label,
			DefaultStart: zone.DefaultWindow.Start.String(),
			DefaultEnd:   zone.DefaultWindow.End.String(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
