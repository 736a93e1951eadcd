package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicine-shop/models"

	"github.com/jackc/pgx/v5"
)

const medicineColumns = `id, name, company, category, description, price, stock, expiry_date,
	COALESCE(image, ''), prescription, COALESCE(dosage, ''), COALESCE(side_effects, ''),
	created_at, updated_at`

type MedicineRepository struct{}

func NewMedicineRepository() *MedicineRepository {
	return &MedicineRepository{}
}

func scanMedicine(row pgx.Row, m *models.Medicine) error {
	return row.Scan(&m.ID, &m.Name, &m.Company, &m.Category, &m.Description, &m.Price,
		&m.Stock, &m.ExpiryDate, &m.Image, &m.Prescription, &m.Dosage, &m.SideEffects,
		&m.CreatedAt, &m.UpdatedAt)
}

// List returns medicines newest-first, optionally filtered by exact
// category and a case-insensitive substring search across name, company
// and description.
func (r *MedicineRepository) List(ctx context.Context, category, search string) ([]models.Medicine, error) {
	query := "SELECT " + medicineColumns + " FROM medicines"
	args := []interface{}{}
	paramIndex := 1

	whereClauses := []string{}
	if category != "" && category != "all" {
		whereClauses = append(whereClauses, fmt.Sprintf("category = $%d", paramIndex))
		args = append(args, category)
		paramIndex++
	}
	if search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(name ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)",
			paramIndex, paramIndex, paramIndex))
		args = append(args, "%"+search+"%")
		paramIndex++
	}

	for i, clause := range whereClauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	medicines := []models.Medicine{}
	for rows.Next() {
		var m models.Medicine
		if err := scanMedicine(rows, &m); err != nil {
			return nil, err
		}
		medicines = append(medicines, m)
	}
	return medicines, rows.Err()
}

func (r *MedicineRepository) GetByID(ctx context.Context, id int) (*models.Medicine, error) {
	var m models.Medicine
	err := scanMedicine(models.DB.QueryRow(ctx,
		"SELECT "+medicineColumns+" FROM medicines WHERE id = $1", id), &m)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrMedicineNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MedicineRepository) Create(ctx context.Context, m *models.Medicine) error {
	now := time.Now()
	return models.DB.QueryRow(ctx,
		`INSERT INTO medicines (name, company, category, description, price, stock, expiry_date,
			image, prescription, dosage, side_effects, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id, created_at, updated_at`,
		m.Name, m.Company, m.Category, m.Description, m.Price, m.Stock, m.ExpiryDate,
		m.Image, m.Prescription, m.Dosage, m.SideEffects, now, now,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MedicineRepository) Update(ctx context.Context, m *models.Medicine) error {
	tag, err := models.DB.Exec(ctx,
		`UPDATE medicines SET name=$1, company=$2, category=$3, description=$4, price=$5,
			stock=$6, expiry_date=$7, image=$8, prescription=$9, dosage=$10,
			side_effects=$11, updated_at=$12
		WHERE id=$13`,
		m.Name, m.Company, m.Category, m.Description, m.Price, m.Stock, m.ExpiryDate,
		m.Image, m.Prescription, m.Dosage, m.SideEffects, time.Now(), m.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMedicineNotFound
	}
	return nil
}

func (r *MedicineRepository) Delete(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, "DELETE FROM medicines WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMedicineNotFound
	}
	return nil
}
