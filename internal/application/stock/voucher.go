package stock

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// VoucherData datos resueltos para imprimir el vale de salida de bodega.
// Equipment y Employee son nil en salidas sintetizadas por conteos físicos.
type VoucherData struct {
	Out       *entity.StockOut
	Sparepart *entity.Sparepart
	Equipment *entity.Equipment
	Employee  *entity.Employee
}

// VoucherPDFGenerator puerto de generación del vale de salida en PDF.
type VoucherPDFGenerator interface {
	GenerateVoucherPDF(ctx context.Context, data *VoucherData) ([]byte, error)
}

// Voucher arma los datos del vale para una salida aprobada. Las solicitudes
// pendientes o rechazadas no generan vale.
func (uc *StockOutUseCase) Voucher(ctx context.Context, id string) (*VoucherData, error) {
	out, err := uc.stockOutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, domain.ErrNotFound
	}
	if out.Status != entity.StockOutStatusApproved {
		return nil, domain.ErrInvalidStateTransition
	}
	sp, err := uc.sparepartRepo.GetByID(out.SparepartID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	data := &VoucherData{Out: out, Sparepart: sp}
	if out.EquipmentID != nil {
		if data.Equipment, err = uc.equipmentRepo.GetByID(*out.EquipmentID); err != nil {
			return nil, err
		}
	}
	if out.EmployeeID != nil {
		if data.Employee, err = uc.employeeRepo.GetByID(*out.EmployeeID); err != nil {
			return nil, err
		}
	}
	return data, nil
}
