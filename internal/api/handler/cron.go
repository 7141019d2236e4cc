package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/scheduler"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStateSweep       = "state-sweep"
	CronJobTypeConnectionResync = "connection-resync"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	StateSweepService       *scheduler.StateSweepService
	ConnectionResyncService *scheduler.ConnectionResyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeStateSweep:
			if services.StateSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de states não disponível", nil)
				return
			}
			services.StateSweepService.TriggerManualSweep()

		case CronJobTypeConnectionResync:
			if services.ConnectionResyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de re-sincronização não disponível", nil)
				return
			}
			services.ConnectionResyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.StateSweepService != nil {
				services.StateSweepService.TriggerManualSweep()
			}
			if services.ConnectionResyncService != nil {
				services.ConnectionResyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: state-sweep, connection-resync, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"state-sweep":       services.StateSweepService.GetStatus(),
			"connection-resync": services.ConnectionResyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
