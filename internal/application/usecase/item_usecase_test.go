package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/usecase"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
	"github.com/majazi041999-spec/anbardarymajazi/internal/infrastructure/memstore"
)

const testDefaultUnit = "und"

func newItemUC() *usecase.ItemUseCase {
	return usecase.NewItemUseCase(memstore.New(memstore.Options{}), testDefaultUnit)
}

func TestItemCreate_CamposObligatorios(t *testing.T) {
	uc := newItemUC()

	cases := []struct {
		name string
		in   dto.CreateItemRequest
	}{
		{"código vacío", dto.CreateItemRequest{Name: "Papel"}},
		{"nombre vacío", dto.CreateItemRequest{Code: "A-1"}},
		{"código solo espacios", dto.CreateItemRequest{Code: "   ", Name: "Papel"}},
		{"mínimo negativo", dto.CreateItemRequest{Code: "A-1", Name: "Papel", MinStockLevel: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, uc.List(), "ningún artículo debe crearse tras los rechazos")
}

func TestItemCreate_UnidadPorDefectoYTrim(t *testing.T) {
	uc := newItemUC()

	item, err := uc.Create(dto.CreateItemRequest{Code: "  A-100  ", Name: "  Papel A4 ", MinStockLevel: 5})
	require.NoError(t, err)
	assert.Equal(t, "A-100", item.Code, "el código debe llegar sin espacios")
	assert.Equal(t, "Papel A4", item.Name)
	assert.Equal(t, testDefaultUnit, item.Unit, "la unidad vacía debe tomar el valor configurado")
	assert.Equal(t, 0, item.CurrentStock, "el stock inicial siempre es cero")
	assert.True(t, item.IsLowStock, "con stock 0 y mínimo 5 nace en stock bajo")
}

func TestItemCreate_CodigoDuplicado(t *testing.T) {
	uc := newItemUC()

	_, err := uc.Create(dto.CreateItemRequest{Code: "A-100", Name: "Papel A4"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateItemRequest{Code: "a-100", Name: "Otro papel"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, uc.List(), 1)
}

func TestItemGetByID_Inexistente(t *testing.T) {
	uc := newItemUC()
	assert.Nil(t, uc.GetByID("no-existe"))
}
