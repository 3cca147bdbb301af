package certificateController

import (
	"encoding/json"
	"fmt"
	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GenerateCertificateRequest is the validated generation payload.
type GenerateCertificateRequest struct {
	ModuleID    string `json:"module_id"`
	ModuleTitle string `json:"module_title"`
}

// certificateData is the response shape for issued certificates.
type certificateData struct {
	CertificateID     uint   `json:"certificate_id"`
	CertificateNumber string `json:"certificate_number"`
	UserName          string `json:"user_name"`
	ModuleTitle       string `json:"module_title"`
	CompletionDate    string `json:"completion_date"`
	IssuedAt          string `json:"issued_at"`
	DownloadURL       string `json:"download_url"`
}

func toCertificateData(cert models.Certificate, userName string) certificateData {
	return certificateData{
		CertificateID:     cert.ID,
		CertificateNumber: cert.CertificateNumber,
		UserName:          userName,
		ModuleTitle:       cert.ModuleTitle,
		CompletionDate:    cert.IssuedAt.Format("January 2, 2006"),
		IssuedAt:          cert.IssuedAt.Format(time.RFC3339),
		DownloadURL:       fmt.Sprintf("%s/certificate/%d/download", config.AppConfig.AppBaseURL, cert.ID),
	}
}

func displayName(user models.User) string {
	if user.Name != "" {
		return user.Name
	}
	if user.Email != "" {
		return user.Email
	}
	return "Learner"
}

// GenerateCertificate issues a certificate for a completed module.
// Generation is idempotent per (user, module): repeated requests return
// the existing certificate instead of minting a new one.
func GenerateCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCertificate").(*GenerateCertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var existing models.Certificate
	if err := database.Database.Db.Where("user_id = ? AND module_id = ? AND is_deleted = ?", userID, reqData.ModuleID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued!", toCertificateData(existing, displayName(user)))
	}

	cert := models.Certificate{
		UserID:            userID,
		ModuleID:          reqData.ModuleID,
		ModuleTitle:       reqData.ModuleTitle,
		CertificateNumber: "LH-" + uuid.NewString(),
		IssuedAt:          time.Now(),
	}

	if err := database.Database.Db.Create(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	data := toCertificateData(cert, displayName(user))
	recordCertificateEvent(userID, cert)

	if user.Email != "" && utils.NotificationAllowed(userID, utils.EmailTypeCertificate) {
		utils.SendCertificateEmail(user.Email, displayName(user), cert.ModuleTitle, data.DownloadURL)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate generated!", data)
}

// GetUserCertificates lists the caller's certificates, newest first.
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []models.Certificate
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}

// GetCertificate returns one certificate. Owner or admin.
func GetCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	certID := c.Locals("certificateID").(int)

	var cert models.Certificate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if cert.UserID != userID && user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var owner models.User
	database.Database.Db.Where("id = ?", cert.UserID).First(&owner)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", toCertificateData(cert, displayName(owner)))
}

// DownloadCertificate streams the certificate as an SVG attachment. Owner or admin.
func DownloadCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	certID := c.Locals("certificateID").(int)

	var cert models.Certificate
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", certID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	if cert.UserID != userID && user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var owner models.User
	database.Database.Db.Where("id = ?", cert.UserID).First(&owner)

	svg := utils.GenerateCertificateSVG(utils.CertificateParams{
		CertificateNumber: cert.CertificateNumber,
		UserName:          displayName(owner),
		ModuleTitle:       cert.ModuleTitle,
		CompletionDate:    cert.IssuedAt.Format("January 2, 2006"),
	})

	c.Set("Content-Type", "image/svg+xml")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="certificate-%d.svg"`, cert.ID))
	return c.Status(fiber.StatusOK).SendString(svg)
}

func recordCertificateEvent(userID uint, cert models.Certificate) {
	metadata, _ := json.Marshal(fiber.Map{
		"certificateId":     cert.ID,
		"certificateNumber": cert.CertificateNumber,
	})
	event := models.AnalyticsEvent{
		UserID:    &userID,
		EventType: models.EventCertificateGenerated,
		ModuleID:  cert.ModuleID,
		Metadata:  datatypes.JSON(metadata),
	}
	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("Failed to track certificate generation: %v", err)
	}
}
