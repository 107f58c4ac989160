package handler

import (
	"net/http"

	"payvessel-bridge/internal/logger"
	"payvessel-bridge/internal/verify"

	"go.uber.org/zap"
)

type VerifyHandler struct {
	svc verify.Service
}

func NewVerifyHandler(svc verify.Service) *VerifyHandler {
	return &VerifyHandler{svc: svc}
}

// ServeHTTP handles /api/verify?ref=...
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	ref := r.URL.Query().Get("ref")
	ctx := logger.WithFields(r.Context(), zap.String("reference", ref))
	log := logger.FromCtx(ctx)

	result, err := h.svc.Verify(ctx, ref)
	if err != nil {
		verr := verify.AsError(err)
		if verr.Status >= http.StatusInternalServerError {
			log.Error("verification failed", zap.String("kind", string(verr.Kind)), zap.Error(err))
		} else {
			log.Warn("verification rejected", zap.String("kind", string(verr.Kind)), zap.Int("status", verr.Status))
		}
		WriteJSON(w, verr.Status, Failure(verr.Message))
		return
	}

	log.Info("transaction verified")
	WriteJSON(w, http.StatusOK, Success(result))
}
