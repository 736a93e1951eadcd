package services

import (
	"context"
	"time"

	"medicine-shop/models"
	"medicine-shop/repositories"
)

type MedicineService struct {
	medicineRepo *repositories.MedicineRepository
}

func NewMedicineService() *MedicineService {
	return &MedicineService{
		medicineRepo: repositories.NewMedicineRepository(),
	}
}

func (s *MedicineService) List(ctx context.Context, category, search string) ([]models.Medicine, error) {
	return s.medicineRepo.List(ctx, category, search)
}

func (s *MedicineService) GetByID(ctx context.Context, id int) (*models.Medicine, error) {
	return s.medicineRepo.GetByID(ctx, id)
}

func (s *MedicineService) Create(ctx context.Context, req models.CreateMedicineRequest) (*models.Medicine, error) {
	if !models.IsValidCategory(req.Category) {
		return nil, models.ErrInvalidCategory
	}

	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, models.ErrInvalidExpiryDate
	}

	medicine := &models.Medicine{
		Name:         req.Name,
		Company:      req.Company,
		Category:     req.Category,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		ExpiryDate:   expiry,
		Image:        req.Image,
		Prescription: req.Prescription,
		Dosage:       req.Dosage,
		SideEffects:  req.SideEffects,
	}
	if medicine.Image == "" {
		medicine.Image = "default-medicine.jpg"
	}

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *MedicineService) Update(ctx context.Context, id int, req models.UpdateMedicineRequest) (*models.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Company != nil {
		medicine.Company = *req.Company
	}
	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			return nil, models.ErrInvalidCategory
		}
		medicine.Category = *req.Category
	}
	if req.Description != nil {
		medicine.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, models.ErrNegativePrice
		}
		medicine.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, models.ErrNegativeStock
		}
		medicine.Stock = *req.Stock
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return nil, models.ErrInvalidExpiryDate
		}
		medicine.ExpiryDate = expiry
	}
	if req.Image != nil {
		medicine.Image = *req.Image
	}
	if req.Prescription != nil {
		medicine.Prescription = *req.Prescription
	}
	if req.Dosage != nil {
		medicine.Dosage = *req.Dosage
	}
	if req.SideEffects != nil {
		medicine.SideEffects = *req.SideEffects
	}

	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *MedicineService) Delete(ctx context.Context, id int) error {
	return s.medicineRepo.Delete(ctx, id)
}
