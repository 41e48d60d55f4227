package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-portal/internal/helpers"
	"finance-portal/internal/models"
)

type ProductRequest struct {
	Name        string     `json:"name" binding:"required,min=2"`
	Description string     `json:"description"`
	UnitPrice   *float64   `json:"unitPrice"`
	Unit        string     `json:"unit"`
	CategoryID  *uuid.UUID `json:"categoryId"`
}

type UpdateProductRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UnitPrice   *float64   `json:"unitPrice"`
	Unit        string     `json:"unit"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	IsActive    *bool      `json:"isActive"`
}

func CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if req.UnitPrice != nil && *req.UnitPrice < 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Unit price must not be negative.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	if req.CategoryID != nil {
		var category models.BudgetCategory
		if err := gormDB.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Unknown category.")
			return
		}
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Unit:        req.Unit,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}

	if err := gormDB.Create(&product).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create product.")
		return
	}

	c.JSON(http.StatusCreated, product)
}

func ListProducts(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.Product{})
	if c.Query("activeOnly") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var products []models.Product
	if err := query.Preload("Category").Order("name ASC").Find(&products).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving products.")
		return
	}

	c.JSON(http.StatusOK, products)
}

func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var product models.Product
	if err := gormDB.Where("id = ?", productID).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Product not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding product.")
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice < 0 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Unit price must not be negative.")
			return
		}
		product.UnitPrice = req.UnitPrice
	}
	if req.Unit != "" {
		product.Unit = req.Unit
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := gormDB.Save(&product).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update product.")
		return
	}

	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	result := gormDB.Model(&models.Product{}).Where("id = ?", productID).Update("is_active", false)
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to deactivate product.")
		return
	}
	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, "Product not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deactivated successfully."})
}
