package worker

import (
	"context"

	"github.com/oscarmanceraa/KitchON/internal/infra"
	"github.com/oscarmanceraa/KitchON/internal/repository"

	"github.com/rs/zerolog/log"
)

// TicketWorker renders the kitchen ticket PDF for a freshly created order.
// Rendering happens off the request path; the order itself is already
// committed when the job runs.
type TicketWorker struct {
	ordenes     repository.OrdenRepository
	storagePath string
}

func NewTicketWorker(ordenes repository.OrdenRepository, storagePath string) *TicketWorker {
	return &TicketWorker{ordenes: ordenes, storagePath: storagePath}
}

func (w *TicketWorker) Process(ctx context.Context, payload TicketPayload) error {
	orden, err := w.ordenes.FindByID(ctx, payload.OrdenID)
	if err != nil {
		return err
	}

	path, err := infra.GenerateTicketPDF(orden, w.storagePath)
	if err != nil {
		return err
	}

	log.Info().Uint("id_orden", orden.ID).Str("path", path).Msg("ticket generado")
	return nil
}
