package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeUnitType title-cases the submitted unit type so "wine chiller" and
// "Wine Chiller" resolve to the same range. Unrecognized types pass through
// normalized but unenforced.
func normalizeUnitType(unitType string) string {
	titleCaser := cases.Title(language.Und)
	return titleCaser.String(strings.ToLower(strings.TrimSpace(unitType)))
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// CreateColdStorageUnit godoc
// @Summary      Create cold storage unit
// @Tags         cold-storage
// @Accept       json
// @Produce      json
// @Param        body  body      models.ColdStorageUnitRequest  true  "Unit"
// @Success      201   {object}  models.ColdStorageUnit
// @Failure      400   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /api/cold_storage_units [post]
func CreateColdStorageUnit(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ColdStorageUnitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var u models.ColdStorageUnit
		u.UnitNumber = strings.TrimSpace(req.UnitNumber)
		u.Location = strings.TrimSpace(req.Location)
		u.UnitType = normalizeUnitType(req.UnitType)
		u.MinTemp = req.MinTemp
		u.MaxTemp = req.MaxTemp

		query := `INSERT INTO cold_storage_units (unit_number, location, unit_type, min_temp, max_temp, created_at, updated_at)
		          VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		          RETURNING id, created_at, updated_at`
		err := db.QueryRow(query, u.UnitNumber, u.Location, u.UnitType, u.MinTemp, u.MaxTemp).
			Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Unit number already exists"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, u)
	}
}

// GetColdStorageUnits godoc
// @Summary      List cold storage units
// @Tags         cold-storage
// @Success      200  {array}  models.ColdStorageUnit
// @Router       /api/cold_storage_units [get]
func GetColdStorageUnits(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := db.Query(`
			SELECT id, unit_number, location, unit_type, min_temp, max_temp, created_at, updated_at
			FROM cold_storage_units ORDER BY unit_number`)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer rows.Close()

		var units []models.ColdStorageUnit
		for rows.Next() {
			var u models.ColdStorageUnit
			if err := rows.Scan(&u.ID, &u.UnitNumber, &u.Location, &u.UnitType, &u.MinTemp, &u.MaxTemp, &u.CreatedAt, &u.UpdatedAt); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			units = append(units, u)
		}

		c.JSON(http.StatusOK, units)
	}
}

// GetColdStorageUnitByID godoc
// @Summary      Get cold storage unit by ID
// @Tags         cold-storage
// @Param        id   path      int  true  "Unit ID"
// @Success      200  {object}  models.ColdStorageUnit
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/cold_storage_units/{id} [get]
func GetColdStorageUnitByID(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
			return
		}

		var u models.ColdStorageUnit
		err = db.QueryRow(`
			SELECT id, unit_number, location, unit_type, min_temp, max_temp, created_at, updated_at
			FROM cold_storage_units WHERE id=$1`, id).
			Scan(&u.ID, &u.UnitNumber, &u.Location, &u.UnitType, &u.MinTemp, &u.MaxTemp, &u.CreatedAt, &u.UpdatedAt)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, u)
	}
}

// UpdateColdStorageUnit godoc
// @Summary      Update cold storage unit
// @Tags         cold-storage
// @Param        id    path      int                            true  "Unit ID"
// @Param        body  body      models.ColdStorageUnitRequest  true  "Unit"
// @Success      200   {object}  models.ColdStorageUnit
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/cold_storage_units/{id} [put]
func UpdateColdStorageUnit(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
			return
		}
		var req models.ColdStorageUnitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query := `UPDATE cold_storage_units
		          SET unit_number=$1, location=$2, unit_type=$3, min_temp=$4, max_temp=$5, updated_at=NOW()
		          WHERE id=$6`
		res, err := db.Exec(query, strings.TrimSpace(req.UnitNumber), strings.TrimSpace(req.Location),
			normalizeUnitType(req.UnitType), req.MinTemp, req.MaxTemp, id)
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Unit number already exists"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rowsAffected, _ := res.RowsAffected()
		if rowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
			return
		}

		u := models.ColdStorageUnit{
			ID:         id,
			UnitNumber: strings.TrimSpace(req.UnitNumber),
			Location:   strings.TrimSpace(req.Location),
			UnitType:   normalizeUnitType(req.UnitType),
			MinTemp:    req.MinTemp,
			MaxTemp:    req.MaxTemp,
		}
		c.JSON(http.StatusOK, u)
	}
}

// DeleteColdStorageUnit godoc
// @Summary      Delete cold storage unit
// @Description  Removes the unit record only; historical temperature logs for
// @Description  the unit id are kept and stay readable.
// @Tags         cold-storage
// @Param        id   path      int  true  "Unit ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/cold_storage_units/{id} [delete]
func DeleteColdStorageUnit(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid unit ID"})
			return
		}

		res, err := db.Exec(`DELETE FROM cold_storage_units WHERE id=$1`, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rowsAffected, _ := res.RowsAffected()
		if rowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unit not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Unit deleted successfully"})
	}
}
