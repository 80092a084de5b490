package handlers

import (
	"net/http"

	"returnhub/internal/domain/returns"
	"returnhub/internal/external/s3"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10MB

// ImageHandler uploads evidence photos to object storage and attaches them
// to a return request.
type ImageHandler struct {
	service *returns.ReturnService
	store   *s3.ImageStore
}

func NewImageHandler(service *returns.ReturnService, store *s3.ImageStore) ImageHandler {
	return ImageHandler{service: service, store: store}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	requestID := c.Param("return_id")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "at least one image file is required"})
		return
	}

	imageType := returns.ImageType(c.PostForm("image_type"))
	if imageType == "" {
		imageType = returns.ImageOther
	}
	uploadedBy := c.PostForm("uploaded_by")
	if uploadedBy == "" {
		uploadedBy = "staff"
	}

	newImages := make([]returns.NewReturnImage, 0, len(files))
	for _, fileHeader := range files {
		if fileHeader.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"message": "image exceeds the 10MB limit"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		key, url, err := h.store.Upload(c.Request.Context(), requestID, fileHeader.Filename, contentType, file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		newImages = append(newImages, returns.NewReturnImage{
			ImageURL:    url,
			StoragePath: key,
			ImageType:   imageType,
			UploadedBy:  uploadedBy,
		})
	}

	attached, err := h.service.AttachImages(c.Request.Context(), requestID, newImages)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attached)
}
