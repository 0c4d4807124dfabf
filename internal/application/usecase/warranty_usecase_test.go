package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

type fakeWarrantyRepo struct {
	records map[string]*entity.Warranty
}

func (r *fakeWarrantyRepo) Create(w *entity.Warranty) error { return nil }

func (r *fakeWarrantyRepo) GetByID(id string) (*entity.Warranty, error) {
	w, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarrantyRepo) GetByStockInID(stockInID string) (*entity.Warranty, error) {
	return nil, nil
}

func (r *fakeWarrantyRepo) Claim(id string, claimedAt time.Time) (bool, error) {
	w, ok := r.records[id]
	if !ok || w.Status != entity.WarrantyStatusActive {
		return false, nil
	}
	w.Status = entity.WarrantyStatusClaimed
	at := claimedAt
	w.ClaimedAt = &at
	return true, nil
}

func (r *fakeWarrantyRepo) ListExpiring(before time.Time, limit, offset int) ([]*entity.Warranty, error) {
	var list []*entity.Warranty
	for _, w := range r.records {
		if w.Status == entity.WarrantyStatusActive && !w.ExpiryDate.After(before) {
			cp := *w
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeWarrantyRepo) List(limit, offset int) ([]*entity.Warranty, error) {
	var list []*entity.Warranty
	for _, w := range r.records {
		cp := *w
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeWarrantyRepo) CountExpiring(before time.Time) (int64, error) { return 0, nil }
func (r *fakeWarrantyRepo) DeleteByStockInID(stockInID string) error      { return nil }

func newWarrantyUseCase(records map[string]*entity.Warranty) *usecase.WarrantyUseCase {
	return usecase.NewWarrantyUseCase(&fakeWarrantyRepo{records: records})
}

// ──────────────────────────────────────────────────────────────────────────────
// Reclamo y listados
// ──────────────────────────────────────────────────────────────────────────────

func TestWarrantyClaim_SoloUnaVez(t *testing.T) {
	uc := newWarrantyUseCase(map[string]*entity.Warranty{
		"w-1": {ID: "w-1", StockInID: "in-1", SparepartID: "sp-1",
			ExpiryDate: time.Now().AddDate(1, 0, 0), Status: entity.WarrantyStatusActive},
	})

	resp, err := uc.Claim("w-1")
	require.NoError(t, err)
	assert.Equal(t, entity.WarrantyStatusClaimed, resp.Status)
	require.NotNil(t, resp.ClaimedAt, "el reclamo debe llevar marca de tiempo")

	_, err = uc.Claim("w-1")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition, "el reclamo es de una sola vía")
}

func TestWarrantyClaim_NoExiste(t *testing.T) {
	uc := newWarrantyUseCase(map[string]*entity.Warranty{})

	_, err := uc.Claim("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarrantyList_VentanaDeVencimiento(t *testing.T) {
	now := time.Now()
	uc := newWarrantyUseCase(map[string]*entity.Warranty{
		"w-1": {ID: "w-1", ExpiryDate: now.AddDate(0, 0, 10), Status: entity.WarrantyStatusActive},
		"w-2": {ID: "w-2", ExpiryDate: now.AddDate(0, 6, 0), Status: entity.WarrantyStatusActive},
		"w-3": {ID: "w-3", ExpiryDate: now.AddDate(0, 0, 5), Status: entity.WarrantyStatusClaimed},
	})

	proximas, err := uc.List(30, 20, 0)
	require.NoError(t, err)
	require.Len(t, proximas.Items, 1, "solo las activas dentro de la ventana")
	assert.Equal(t, "w-1", proximas.Items[0].ID)

	todas, err := uc.List(0, 20, 0)
	require.NoError(t, err)
	assert.Len(t, todas.Items, 3)
}
