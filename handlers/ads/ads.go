package ads

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"provider-panel-server/handlers/auth"
	"provider-panel-server/models"
	"provider-panel-server/storage"
	"provider-panel-server/utils"
)

// Store holds the upload backend for ad creatives; main wires it.
var Store storage.Storage

func ListAds(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	query := utils.DB.Where("provider_id = ?", provider.ID)
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var adList []models.Ad
	if err := query.Order("created_at DESC").Find(&adList).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch advertisements")
		return
	}

	utils.RespondOK(c, http.StatusOK, adList)
}

func GetAd(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var ad models.Ad
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Advertisement not found")
		return
	}

	utils.RespondOK(c, http.StatusOK, ad)
}

// CreateAd accepts multipart form data: the ad fields plus an optional
// image file stored through the storage backend.
func CreateAd(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var input struct {
		Title       string `form:"title"`
		Description string `form:"description"`
		Placement   string `form:"placement"`
	}
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid advertisement data")
		return
	}
	if input.Title == "" {
		utils.RespondError(c, http.StatusBadRequest, "A title is required")
		return
	}

	ad := models.Ad{
		Title:       input.Title,
		Description: input.Description,
		Placement:   input.Placement,
		Active:      true,
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to read the uploaded image")
			return
		}
		defer file.Close()

		result, err := Store.Put(c.Request.Context(), file, storage.PutInput{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
		})
		if err != nil {
			log.Printf("Failed to store ad image for provider %d: %v", provider.ID, err)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to store the image")
			return
		}
		ad.ImageURL = result.URL
	}

	ad.ProviderID = provider.ID

	if err := utils.DB.Create(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create the advertisement")
		return
	}

	utils.RespondOK(c, http.StatusCreated, ad)
}

func UpdateAd(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	var ad models.Ad
	if err := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		First(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Advertisement not found")
		return
	}

	var input models.Ad
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid advertisement data")
		return
	}

	ad.Title = input.Title
	ad.Description = input.Description
	ad.Placement = input.Placement
	ad.StartDate = input.StartDate
	ad.EndDate = input.EndDate
	ad.Active = input.Active
	if input.ImageURL != "" {
		ad.ImageURL = input.ImageURL
	}

	if err := utils.DB.Save(&ad).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the advertisement")
		return
	}

	utils.RespondOK(c, http.StatusOK, ad)
}

func DeleteAd(c *gin.Context) {
	provider, ok := auth.CurrentProvider(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Provider not found in context")
		return
	}

	result := utils.DB.Where("id = ? AND provider_id = ?", c.Param("id"), provider.ID).
		Delete(&models.Ad{})
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete the advertisement")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, "Advertisement not found")
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Advertisement deleted successfully")
}
