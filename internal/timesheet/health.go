package timesheet

import (
	"context"

	"github.com/hourkeep/hourkeep-cli/internal/logger"
	"github.com/hourkeep/hourkeep-cli/internal/models"
)

// Probe checks both services' health endpoints once and returns the result.
// The caller holds onto it for the life of the session; writes re-check the
// stored flags, not the endpoints.
func Probe(ctx context.Context, save, submit RecordStore) models.ServiceHealth {
	health := models.ServiceHealth{
		SaveAvailable:   save.Healthy(ctx),
		SubmitAvailable: submit.Healthy(ctx),
	}
	if !health.SaveAvailable {
		logger.Warn("save-service health check failed")
	}
	if !health.SubmitAvailable {
		logger.Warn("submit-service health check failed")
	}
	return health
}
