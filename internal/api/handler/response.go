package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/procurement-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Clock devolve o "agora" usado para ancorar os intervalos, já no fuso configurado
type Clock func() time.Time

// ClockIn cria um Clock no fuso informado
func ClockIn(location *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(location)
	}
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}
