package uploads

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"mfrida/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const (
	uploadDir = "static/uploads"
	maxWidth  = 1200
	maxHeight = 1600
	thumbSize = 300
)

// UploadImage accepts a multipart "image" form field, re-encodes it to jpeg
// bounded to maxWidth x maxHeight, and writes a thumbnail alongside. The
// returned public_id is the handle for deletion.
// POST /api/admin/uploads  (admin)
func UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not decode image")
		return
	}

	if img.Bounds().Dx() > maxWidth || img.Bounds().Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	publicID := utils.GetUUID()
	fullPath := filepath.Join(uploadDir, publicID+".jpg")
	thumbPath := filepath.Join(uploadDir, publicID+"_thumb.jpg")

	if err := imaging.Save(img, fullPath, imaging.JPEGQuality(85)); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}
	thumb := imaging.Thumbnail(img, thumbSize, thumbSize, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(80)); err != nil {
		log.Printf("UploadImage: thumbnail save failed for %s: %v", publicID, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success":       true,
		"public_id":     publicID,
		"image_url":     fmt.Sprintf("/static/uploads/%s.jpg", publicID),
		"thumbnail_url": fmt.Sprintf("/static/uploads/%s_thumb.jpg", publicID),
	})
}

// DELETE /api/admin/uploads/:publicid  (admin)
func DeleteImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	publicID := ps.ByName("publicid")
	if publicID == "" || strings.ContainsAny(publicID, "/\\.") {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid public id")
		return
	}

	fullPath := filepath.Join(uploadDir, publicID+".jpg")
	if err := os.Remove(fullPath); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Image not found")
		return
	}
	if err := os.Remove(filepath.Join(uploadDir, publicID+"_thumb.jpg")); err != nil && !os.IsNotExist(err) {
		log.Printf("DeleteImage: thumbnail removal failed for %s: %v", publicID, err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Image deleted successfully"})
}
