package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/syncing"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
)

// StartSync dispara a sincronização de uma conta de anúncio. O sync roda em
// background; a resposta 202 traz o estado inicial para polling.
func StartSync(service syncing.SyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, ok := syncTargetFromRequest(w, r)
		if !ok {
			return
		}

		result, err := service.SyncAccount(r.Context(), target)
		if err != nil {
			writeSyncError(w, err, "Erro ao iniciar sincronização")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SyncStatus retorna o resultado mais recente do sync da conta
func SyncStatus(service syncing.SyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, ok := syncTargetFromRequest(w, r)
		if !ok {
			return
		}

		result, err := service.Status(target.ConnectionID, target.AdAccountID)
		if err != nil {
			writeSyncError(w, err, "Erro ao consultar status de sincronização")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func syncTargetFromRequest(w http.ResponseWriter, r *http.Request) (*domain.SyncTarget, bool) {
	params := httprouter.ParamsFromContext(r.Context())

	target := &domain.SyncTarget{
		TenantID:     params.ByName("tenant_id"),
		ConnectionID: params.ByName("connection_id"),
		AdAccountID:  params.ByName("account_id"),
	}

	if target.TenantID == "" || target.ConnectionID == "" || target.AdAccountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificadores de empresa, connection e conta são obrigatórios", nil)
		return nil, false
	}

	return target, true
}

func writeSyncError(w http.ResponseWriter, err error, logMessage string) {
	logrus.Error(logMessage, ": ", err)

	var syncErr *syncing.SyncError
	if errors.As(err, &syncErr) {
		apiErrors.WriteError(w, syncErr.Code, syncErr.Err.Error(), syncErr.Details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, logMessage, nil)
}
