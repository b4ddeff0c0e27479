package tests

import (
	"os"
	"testing"
	"time"

	"github.com/oscarmanceraa/KitchON/internal/infra"
	"github.com/oscarmanceraa/KitchON/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTicketPDF(t *testing.T) {
	dir := t.TempDir()
	notasItem := "Sin cebolla"
	orden := &model.Orden{
		ID:            7,
		FechaCreacion: time.Now(),
		Mesa:          &model.Mesa{ID: 2, Nombre: "Mesa 2"},
		Usuario: &model.Usuario{
			Username: "maria",
			Persona:  &model.Persona{PrimerNombre: "María", PrimerApellido: "González"},
		},
		Productos: []model.ProductoOrden{
			{
				ProductoID: 1,
				Cantidad:   2,
				Producto: &model.Producto{
					ID:     1,
					Nombre: "Pizza Margherita",
					Valor:  decimal.NewFromInt(12000),
				},
			},
			{
				ProductoID: 2,
				Cantidad:   1,
				Notas:      &notasItem,
				// Longer than the 22-character row limit, with accented
				// runes right at the cut point.
				Producto: &model.Producto{
					ID:     2,
					Nombre: "Jalapeños Rellenos Empanizádos Extra",
					Valor:  decimal.NewFromInt(9500),
				},
			},
		},
	}

	path, err := infra.GenerateTicketPDF(orden, dir)
	require.NoError(t, err)
	assert.Equal(t, infra.TicketPath(dir, 7), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
