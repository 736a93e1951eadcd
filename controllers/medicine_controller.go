package controllers

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"medicine-shop/models"
	"medicine-shop/services"

	"github.com/gin-gonic/gin"
)

type MedicineController struct {
	medicineService *services.MedicineService
}

func NewMedicineController() *MedicineController {
	return &MedicineController{medicineService: services.NewMedicineService()}
}

func medicineCacheKey(category, search string) string {
	return "medicines_list_" + category + "_" + search
}

func invalidateMedicineCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "medicines_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// GetMedicines godoc
// @Summary List medicines
// @Description List medicines, optionally filtered by category and search text
// @Tags Medicines
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Search name, company, and description"
// @Success 200 {object} models.ListResponse
// @Router /medicines [get]
func (ctrl *MedicineController) GetMedicines(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	cacheKey := medicineCacheKey(category, search)
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	medicines, err := ctrl.medicineService.List(ctx, category, search)
	if err != nil {
		respondError(c, err)
		return
	}

	response := models.ListResponse{
		Success: true,
		Count:   len(medicines),
		Data:    medicines,
	}

	if models.RedisClient != nil {
		jsonData, err := json.Marshal(response)
		if err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, response)
}

// GetCategories godoc
// @Summary List categories
// @Description Get the fixed list of medicine categories
// @Tags Medicines
// @Produce json
// @Success 200 {object} models.Response
// @Router /medicines/categories [get]
func (ctrl *MedicineController) GetCategories(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "data": models.Categories})
}

// GetMedicine godoc
// @Summary Get medicine by ID
// @Description Get a single medicine
// @Tags Medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /medicines/{id} [get]
func (ctrl *MedicineController) GetMedicine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid medicine ID"})
		return
	}

	medicine, err := ctrl.medicineService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": medicine})
}

// CreateMedicine godoc
// @Summary Create medicine
// @Description Create a new medicine (Admin)
// @Tags Admin - Medicines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateMedicineRequest true "Medicine"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /medicines [post]
func (ctrl *MedicineController) CreateMedicine(c *gin.Context) {
	var req models.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	medicine, err := ctrl.medicineService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateMedicineCache()

	c.JSON(201, gin.H{"success": true, "message": "Medicine created successfully", "data": medicine})
}

// UpdateMedicine godoc
// @Summary Update medicine
// @Description Update an existing medicine (Admin)
// @Tags Admin - Medicines
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Medicine ID"
// @Param request body models.UpdateMedicineRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /medicines/{id} [put]
func (ctrl *MedicineController) UpdateMedicine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid medicine ID"})
		return
	}

	var req models.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	medicine, err := ctrl.medicineService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateMedicineCache()

	c.JSON(200, gin.H{"success": true, "message": "Medicine updated successfully", "data": medicine})
}

// DeleteMedicine godoc
// @Summary Delete medicine
// @Description Delete a medicine permanently (Admin)
// @Tags Admin - Medicines
// @Security BearerAuth
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /medicines/{id} [delete]
func (ctrl *MedicineController) DeleteMedicine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid medicine ID"})
		return
	}

	if err := ctrl.medicineService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	invalidateMedicineCache()

	c.JSON(200, gin.H{"success": true, "message": "Medicine deleted successfully"})
}
