package providers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"provider-panel-server/storage"
	"provider-panel-server/utils"
)

// Store holds the upload backend; main wires it at startup.
var Store storage.Storage

func GetGallery(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"gallery": provider.Gallery})
}

// AddGalleryImage accepts a multipart upload and appends the stored image
// URL to the provider's gallery.
func AddGalleryImage(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "An image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to read the uploaded file")
		return
	}
	defer file.Close()

	result, err := Store.Put(c.Request.Context(), file, storage.PutInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	})
	if err != nil {
		log.Printf("Failed to store gallery image for provider %d: %v", provider.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to store the image")
		return
	}

	gallery := append(provider.Gallery, result.URL)
	if err := utils.DB.Model(&provider).Update("gallery", datatypes.NewJSONSlice(gallery)).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the gallery")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"gallery": gallery})
}

// RemoveGalleryImage deletes one image by its position in the gallery.
func RemoveGalleryImage(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(provider.Gallery) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid gallery index")
		return
	}

	removed := provider.Gallery[index]
	gallery := append([]string{}, provider.Gallery[:index]...)
	gallery = append(gallery, provider.Gallery[index+1:]...)

	if err := utils.DB.Model(&provider).Update("gallery", datatypes.NewJSONSlice(gallery)).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update the gallery")
		return
	}

	// Best effort: the row no longer references the object either way.
	if err := Store.Delete(c.Request.Context(), removed); err != nil {
		log.Printf("Failed to delete gallery object %s: %v", removed, err)
	}

	utils.RespondOK(c, http.StatusOK, gin.H{"gallery": gallery})
}
