package repositories

import (
	"kopikita/models"
	"kopikita/pkg/logger"
)

// VoucherRepositoryInterface serves the read-only voucher catalog.
type VoucherRepositoryInterface interface {
	GetAll() ([]models.Voucher, error)
}

// VoucherRepository holds the seeded voucher definitions in memory.
type VoucherRepository struct {
	logger   *logger.Logger
	vouchers []models.Voucher
}

// NewVoucherRepository creates a voucher repository seeded with the
// reference data.
func NewVoucherRepository(logger *logger.Logger) *VoucherRepository {
	vouchers := seedVouchers()

	logger = logger.WithComponent("voucher_repository")
	logger.Info("Voucher catalog seeded", "count", len(vouchers))

	return &VoucherRepository{
		logger:   logger,
		vouchers: vouchers,
	}
}

// GetAll - retrieves all voucher definitions
func (r *VoucherRepository) GetAll() ([]models.Voucher, error) {
	out := make([]models.Voucher, len(r.vouchers))
	copy(out, r.vouchers)
	return out, nil
}
