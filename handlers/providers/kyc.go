package providers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"provider-panel-server/models"
	"provider-panel-server/storage"
	"provider-panel-server/utils"
)

// UploadKYCDocuments accepts one or more identity documents as multipart
// files and puts the KYC review back into pending.
func UploadKYCDocuments(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "At least one document file is required")
		return
	}

	files := form.File["documents"]
	if len(files) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "At least one document file is required")
		return
	}

	documents := append([]string{}, provider.KYCDocuments...)
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Failed to read an uploaded document")
			return
		}

		result, err := Store.Put(c.Request.Context(), file, storage.PutInput{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
		})
		file.Close()
		if err != nil {
			log.Printf("Failed to store KYC document for provider %d: %v", provider.ID, err)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to store a document")
			return
		}

		documents = append(documents, result.URL)
	}

	updates := map[string]interface{}{
		"kyc_documents": datatypes.NewJSONSlice(documents),
		"kyc_status":    models.KYCPending,
		"kyc_remark":    "",
	}
	if err := utils.DB.Model(&provider).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to save KYC documents")
		return
	}

	utils.RespondOK(c, http.StatusOK, gin.H{
		"kycStatus":    models.KYCPending,
		"kycDocuments": documents,
	})
}

// ReviewKYC records an approve/reject decision and emails the provider.
func ReviewKYC(c *gin.Context) {
	provider, ok := requestedProvider(c)
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status"`
		Remark string `json:"remark"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	if input.Status != models.KYCApproved && input.Status != models.KYCRejected {
		utils.RespondError(c, http.StatusBadRequest, "Status must be approved or rejected")
		return
	}

	updates := map[string]interface{}{
		"kyc_status": input.Status,
		"kyc_remark": input.Remark,
	}
	if err := utils.DB.Model(&provider).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to record the KYC decision")
		return
	}

	utils.SendKYCStatusEmail(provider.Email, input.Status, input.Remark)

	utils.RespondOK(c, http.StatusOK, gin.H{"kycStatus": input.Status})
}
