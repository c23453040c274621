package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("failed to encode response")
	}
}

// writeServiceError maps typed usecase errors to their API code
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	var (
		provisioningErr *provisioning.ProvisioningError
		catalogErr      *catalog.CatalogError
		authErr         *authenticating.AuthError
	)

	switch {
	case errors.As(err, &provisioningErr):
		apiErrors.WriteError(w, provisioningErr.Code, provisioningErr.Err.Error(), provisioningErr.Details)
	case errors.As(err, &catalogErr):
		apiErrors.WriteError(w, catalogErr.Code, message, catalogErr.Details)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}
