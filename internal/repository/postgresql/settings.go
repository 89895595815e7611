package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) payroll.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements payroll.SettingsRepository. The table holds a single
// row pinned to id 1.
func (r *settingsRepository) Get(ctx context.Context) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT deduction_policy, flat_deduction_total, default_period_type, updated_at
		FROM payroll_settings
		WHERE id = 1
	`

	var s payroll.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.DeductionPolicy, &s.FlatDeductionTotal, &s.DefaultPeriodType, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Settings{}, payroll.ErrSettingsNotFound
		}
		return payroll.Settings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

// Upsert implements payroll.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s payroll.Settings) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (id, deduction_policy, flat_deduction_total, default_period_type)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			deduction_policy = EXCLUDED.deduction_policy,
			flat_deduction_total = EXCLUDED.flat_deduction_total,
			default_period_type = EXCLUDED.default_period_type,
			updated_at = NOW()
		RETURNING deduction_policy, flat_deduction_total, default_period_type, updated_at
	`

	var stored payroll.Settings
	err := q.QueryRow(ctx, query, s.DeductionPolicy, s.FlatDeductionTotal, s.DefaultPeriodType).Scan(
		&stored.DeductionPolicy, &stored.FlatDeductionTotal, &stored.DefaultPeriodType, &stored.UpdatedAt,
	)
	if err != nil {
		return payroll.Settings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return stored, nil
}
