package stock_test

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/application/stock"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos de repositorio sin base de datos.
// El fakeTxRunner ejecuta el callback directamente con los mismos fakes, de
// modo que los casos de uso se prueban con su flujo transaccional completo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSparepartRepo struct {
	parts map[string]*entity.Sparepart
}

func newFakeSparepartRepo() *fakeSparepartRepo {
	return &fakeSparepartRepo{parts: make(map[string]*entity.Sparepart)}
}

func (r *fakeSparepartRepo) Create(sp *entity.Sparepart) error {
	for _, p := range r.parts {
		if p.Code == sp.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *sp
	r.parts[sp.ID] = &cp
	return nil
}

func (r *fakeSparepartRepo) GetByID(id string) (*entity.Sparepart, error) {
	sp, ok := r.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *sp
	return &cp, nil
}

func (r *fakeSparepartRepo) GetByCode(code string) (*entity.Sparepart, error) {
	for _, sp := range r.parts {
		if sp.Code == code {
			cp := *sp
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSparepartRepo) Update(sp *entity.Sparepart) error {
	if _, ok := r.parts[sp.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sp
	r.parts[sp.ID] = &cp
	return nil
}

func (r *fakeSparepartRepo) GetForUpdate(id string) (*entity.Sparepart, error) {
	return r.GetByID(id)
}

func (r *fakeSparepartRepo) SetCurrentStock(id string, quantity int64) error {
	sp, ok := r.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	sp.CurrentStock = quantity
	return nil
}

func (r *fakeSparepartRepo) List(search string, limit, offset int) ([]*entity.Sparepart, error) {
	var list []*entity.Sparepart
	for _, sp := range r.parts {
		if search == "" || strings.Contains(sp.Code, search) || strings.Contains(sp.Name, search) {
			cp := *sp
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeSparepartRepo) ListLowStock(limit int) ([]*entity.Sparepart, error) {
	var list []*entity.Sparepart
	for _, sp := range r.parts {
		if sp.CurrentStock <= sp.MinStock {
			cp := *sp
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeSparepartRepo) Delete(id string) error {
	if _, ok := r.parts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.parts, id)
	return nil
}

type fakeStockInRepo struct {
	records map[string]*entity.StockIn
}

func newFakeStockInRepo() *fakeStockInRepo {
	return &fakeStockInRepo{records: make(map[string]*entity.StockIn)}
}

func (r *fakeStockInRepo) Create(in *entity.StockIn) error {
	cp := *in
	r.records[in.ID] = &cp
	return nil
}

func (r *fakeStockInRepo) GetByID(id string) (*entity.StockIn, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeStockInRepo) ListBySparepart(sparepartID string, limit, offset int) ([]*entity.StockIn, error) {
	var list []*entity.StockIn
	for _, rec := range r.records {
		if rec.SparepartID == sparepartID {
			cp := *rec
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeStockInRepo) List(limit, offset int) ([]*entity.StockIn, error) {
	var list []*entity.StockIn
	for _, rec := range r.records {
		cp := *rec
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeStockInRepo) Delete(id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeStockOutRepo struct {
	records map[string]*entity.StockOut
}

func newFakeStockOutRepo() *fakeStockOutRepo {
	return &fakeStockOutRepo{records: make(map[string]*entity.StockOut)}
}

func (r *fakeStockOutRepo) Create(out *entity.StockOut) error {
	cp := *out
	r.records[out.ID] = &cp
	return nil
}

func (r *fakeStockOutRepo) GetByID(id string) (*entity.StockOut, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeStockOutRepo) Approve(id, approvedBy string, approvedAt time.Time) (bool, error) {
	rec, ok := r.records[id]
	if !ok || rec.Status != entity.StockOutStatusPending {
		return false, nil
	}
	rec.Status = entity.StockOutStatusApproved
	rec.ApprovedBy = approvedBy
	at := approvedAt
	rec.ApprovedAt = &at
	return true, nil
}

func (r *fakeStockOutRepo) Reject(id, reason string) (bool, error) {
	rec, ok := r.records[id]
	if !ok || rec.Status != entity.StockOutStatusPending {
		return false, nil
	}
	rec.Status = entity.StockOutStatusRejected
	rec.RejectReason = reason
	return true, nil
}

func (r *fakeStockOutRepo) List(status string, limit, offset int) ([]*entity.StockOut, error) {
	var list []*entity.StockOut
	for _, rec := range r.records {
		if status == "" || rec.Status == status {
			cp := *rec
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeStockOutRepo) CountByStatus(status string) (int64, error) {
	var n int64
	for _, rec := range r.records {
		if rec.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeStockOutRepo) Delete(id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeWarrantyRepo struct {
	records map[string]*entity.Warranty
}

func newFakeWarrantyRepo() *fakeWarrantyRepo {
	return &fakeWarrantyRepo{records: make(map[string]*entity.Warranty)}
}

func (r *fakeWarrantyRepo) Create(w *entity.Warranty) error {
	cp := *w
	r.records[w.ID] = &cp
	return nil
}

func (r *fakeWarrantyRepo) GetByID(id string) (*entity.Warranty, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeWarrantyRepo) GetByStockInID(stockInID string) (*entity.Warranty, error) {
	for _, w := range r.records {
		if w.StockInID == stockInID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarrantyRepo) Claim(id string, claimedAt time.Time) (bool, error) {
	rec, ok := r.records[id]
	if !ok || rec.Status != entity.WarrantyStatusActive {
		return false, nil
	}
	rec.Status = entity.WarrantyStatusClaimed
	at := claimedAt
	rec.ClaimedAt = &at
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

func (r *fakeWarrantyRepo) CountExpiring(before time.Time) (int64, error) {
	list, _ := r.ListExpiring(before, 0, 0)
	return int64(len(list)), nil
}

func (r *fakeWarrantyRepo) DeleteByStockInID(stockInID string) error {
	for id, w := range r.records {
		if w.StockInID == stockInID {
			delete(r.records, id)
		}
	}
	return nil
}

type fakeOpnameRepo struct {
	sessions map[string]*entity.OpnameSession
	items    []*entity.OpnameItem
}

func newFakeOpnameRepo() *fakeOpnameRepo {
	return &fakeOpnameRepo{sessions: make(map[string]*entity.OpnameSession)}
}

func (r *fakeOpnameRepo) CreateSession(s *entity.OpnameSession) error {
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeOpnameRepo) CreateItem(item *entity.OpnameItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeOpnameRepo) GetSession(id string) (*entity.OpnameSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeOpnameRepo) ListSessions(limit, offset int) ([]*entity.OpnameSession, error) {
	var list []*entity.OpnameSession
	for _, s := range r.sessions {
		cp := *s
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeOpnameRepo) ListItems(sessionID string) ([]*entity.OpnameItem, error) {
	var list []*entity.OpnameItem
	for _, it := range r.items {
		if it.SessionID == sessionID {
			cp := *it
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeSupplierRepo struct {
	records map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{records: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	cp := *s
	r.records[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { return nil }

func (r *fakeSupplierRepo) List(search string, limit, offset int) ([]*entity.Supplier, error) {
	return nil, nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

type fakeEquipmentRepo struct {
	records map[string]*entity.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{records: make(map[string]*entity.Equipment)}
}

func (r *fakeEquipmentRepo) Create(e *entity.Equipment) error {
	cp := *e
	r.records[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	e, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEquipmentRepo) GetByCode(code string) (*entity.Equipment, error) { return nil, nil }
func (r *fakeEquipmentRepo) Update(e *entity.Equipment) error                 { return nil }

func (r *fakeEquipmentRepo) List(search string, limit, offset int) ([]*entity.Equipment, error) {
	return nil, nil
}

func (r *fakeEquipmentRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	records map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{records: make(map[string]*entity.Employee)}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	cp := *e
	r.records[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	e, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) GetByCode(code string) (*entity.Employee, error) { return nil, nil }
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error                 { return nil }

func (r *fakeEmployeeRepo) List(search string, limit, offset int) ([]*entity.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.records, id)
	return nil
}

// fakeTxRunner pasa los fakes directamente al callback; no hay transacción
// real pero el flujo del caso de uso es idéntico.
type fakeTxRunner struct {
	spareparts *fakeSparepartRepo
	stockIns   *fakeStockInRepo
	stockOuts  *fakeStockOutRepo
	warranties *fakeWarrantyRepo
	opnames    *fakeOpnameRepo
}

var _ stock.TxRunner = (*fakeTxRunner)(nil)
var _ stock.OpnameTxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.SparepartRepository,
	repository.StockInRepository,
	repository.StockOutRepository,
	repository.WarrantyRepository,
) error) error {
	return fn(f.spareparts, f.stockIns, f.stockOuts, f.warranties)
}

func (f *fakeTxRunner) RunOpname(ctx context.Context, fn func(
	repository.SparepartRepository,
	repository.StockInRepository,
	repository.StockOutRepository,
	repository.OpnameRepository,
) error) error {
	return fn(f.spareparts, f.stockIns, f.stockOuts, f.opnames)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base compartido por los tests del motor de stock
// ──────────────────────────────────────────────────────────────────────────────

type stockFixture struct {
	spareparts *fakeSparepartRepo
	suppliers  *fakeSupplierRepo
	equipment  *fakeEquipmentRepo
	employees  *fakeEmployeeRepo
	stockIns   *fakeStockInRepo
	stockOuts  *fakeStockOutRepo
	warranties *fakeWarrantyRepo
	opnames    *fakeOpnameRepo
	runner     *fakeTxRunner
}

func newStockFixture() *stockFixture {
	f := &stockFixture{
		spareparts: newFakeSparepartRepo(),
		suppliers:  newFakeSupplierRepo(),
		equipment:  newFakeEquipmentRepo(),
		employees:  newFakeEmployeeRepo(),
		stockIns:   newFakeStockInRepo(),
		stockOuts:  newFakeStockOutRepo(),
		warranties: newFakeWarrantyRepo(),
		opnames:    newFakeOpnameRepo(),
	}
	f.runner = &fakeTxRunner{
		spareparts: f.spareparts,
		stockIns:   f.stockIns,
		stockOuts:  f.stockOuts,
		warranties: f.warranties,
		opnames:    f.opnames,
	}
	return f
}

// seedSparepart crea un repuesto con el stock dado.
func (f *stockFixture) seedSparepart(id, code string, currentStock int64) {
	now := time.Now()
	f.spareparts.parts[id] = &entity.Sparepart{
		ID:           id,
		Code:         code,
		Name:         "Filtro de aceite " + code,
		Unit:         "pza",
		MinStock:     2,
		CurrentStock: currentStock,
		Price:        decimal.NewFromInt(100),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (f *stockFixture) seedSupplier(id string) {
	f.suppliers.records[id] = &entity.Supplier{ID: id, Name: "Repuestos del Norte"}
}

func (f *stockFixture) seedEquipment(id string) {
	f.equipment.records[id] = &entity.Equipment{
		ID: id, Code: "EXC-01", Name: "Excavadora CAT 320",
		Status: entity.EquipmentStatusActive,
	}
}

func (f *stockFixture) seedEmployee(id string) {
	f.employees.records[id] = &entity.Employee{ID: id, Code: "EMP-01", Name: "Carlos Mejía", Position: "mecánico"}
}
