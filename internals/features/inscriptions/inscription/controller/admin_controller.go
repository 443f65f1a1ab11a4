package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"uecc_backend/internals/features/inscriptions/inscription/dto"
	"uecc_backend/internals/features/inscriptions/inscription/repository"
	"uecc_backend/internals/features/inscriptions/inscription/service"
	helper "uecc_backend/internals/helpers"
)

// AdminController couvre le tableau de bord: login/logout, liste filtrée,
// compteurs, transitions de statut, suppression et export.
type AdminController struct {
	Repo      *repository.InscriptionRepository
	Query     *service.AdminQueryService
	JWTSecret string
}

func NewAdminController(repo *repository.InscriptionRepository, query *service.AdminQueryService, jwtSecret string) *AdminController {
	return &AdminController{Repo: repo, Query: query, JWTSecret: jwtSecret}
}

// 🟢 POST /api/admin/login
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body dto.AdminLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	body.Normalize()

	ok, err := ctrl.Repo.AdminAuthenticate(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Une erreur est survenue")
	}
	if !ok {
		// message générique: ne jamais indiquer lequel des deux champs est faux
		return helper.JsonError(c, fiber.StatusUnauthorized,
			"Les identifiants ne correspondent à aucun compte administrateur.")
	}

	// session sans expiration: pas de claim exp, le logout invalide via le store
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  body.Email,
		"role": "admin",
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(ctrl.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Une erreur est survenue")
	}

	return helper.JsonOK(c, "Accès autorisé", fiber.Map{"token": signed})
}

// 🟢 POST /api/admin/logout
func (ctrl *AdminController) Logout(c *fiber.Ctx) error {
	if err := ctrl.Repo.AdminLogout(c.UserContext()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Une erreur est survenue")
	}
	return helper.JsonOK(c, "Déconnecté", nil)
}

// 🟢 GET /api/admin/inscriptions?search=&statut=
func (ctrl *AdminController) List(c *fiber.Ctx) error {
	search := c.Query("search")
	statut := c.Query("statut", service.StatutFiltreTous)

	records, err := ctrl.Query.List(c.UserContext(), search, statut)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Chargement des dossiers impossible")
	}
	return helper.JsonList(c, "", records, fiber.Map{
		"count":  len(records),
		"search": search,
		"statut": statut,
	})
}

// 🟢 GET /api/admin/inscriptions/stats
func (ctrl *AdminController) Stats(c *fiber.Ctx) error {
	stats, err := ctrl.Query.StatsGlobales(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Chargement des compteurs impossible")
	}
	return helper.JsonOK(c, "", stats)
}

// 🟢 PATCH /api/admin/inscriptions/:id/statut
func (ctrl *AdminController) UpdateStatut(c *fiber.Ctx) error {
	var body dto.UpdateStatutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requête invalide")
	}
	body.Normalize()
	if fieldErrors := service.ValidateRequest(&body); len(fieldErrors) > 0 {
		return helper.JsonValidationError(c, fieldErrors)
	}

	ok, err := ctrl.Query.ChangeStatut(c.UserContext(), c.Params("id"), body.Statut)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Dossier introuvable")
	}
	return helper.JsonUpdated(c, "Le dossier a été marqué \""+service.LibelleStatut(body.Statut)+"\"", fiber.Map{
		"id":     c.Params("id"),
		"statut": body.Statut,
	})
}

// 🟢 DELETE /api/admin/inscriptions/:id
func (ctrl *AdminController) Delete(c *fiber.Ctx) error {
	ok, err := ctrl.Repo.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Suppression impossible")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Dossier introuvable")
	}
	return helper.JsonDeleted(c, "Dossier supprimé", fiber.Map{"id": c.Params("id")})
}

// 🟢 GET /api/admin/inscriptions/export?search=&statut= — XLSX de la liste filtrée
func (ctrl *AdminController) Export(c *fiber.Ctx) error {
	search := c.Query("search")
	statut := c.Query("statut", service.StatutFiltreTous)

	records, err := ctrl.Query.List(c.UserContext(), search, statut)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Chargement des dossiers impossible")
	}

	wb, err := service.BuildWorkbook(records)
	if err != nil {
		log.Printf("[ERROR] génération export: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Génération de l'export impossible")
	}
	defer wb.Close()

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Génération de l'export impossible")
	}

	filename := service.ExportFilename(time.Now())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
