package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uecc_backend/internals/databases"
	"uecc_backend/internals/features/inscriptions/inscription/controller"
	"uecc_backend/internals/features/inscriptions/inscription/repository"
	inscriptionRoute "uecc_backend/internals/features/inscriptions/inscription/route"
	"uecc_backend/internals/features/inscriptions/inscription/service"
	"uecc_backend/internals/middlewares"
)

const testJWTSecret = "secret-de-test"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	repo := repository.NewInscriptionRepository(databases.NewMemoryKV(), repository.AdminCredentials{
		Email:         "admin@uecc.bj",
		CheckPassword: func(candidate string) bool { return candidate == "UECCadmin2025!" },
	})
	wizardSvc := service.NewWizardService(repo, service.NewWizardStore())
	querySvc := service.NewAdminQueryService(repo)

	wizardCtrl := controller.NewWizardController(wizardSvc, true)
	adminCtrl := controller.NewAdminController(repo, querySvc, testJWTSecret)

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	inscriptionRoute.InscriptionRoutes(app.Group("/api/inscriptions"), wizardCtrl)
	app.Post("/api/admin/login", adminCtrl.Login)
	admin := app.Group("/api/admin", middlewares.AdminAuth(middlewares.AdminAuthOpts{
		Secret: testJWTSecret,
		SessionChecker: func(c *fiber.Ctx) bool {
			return repo.IsAdminAuthenticated(c.Context())
		},
	}))
	inscriptionRoute.AdminRoutes(admin, adminCtrl)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, headers ...map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	if len(raw) > 0 && resp.Header.Get(fiber.HeaderContentType) != "" {
		_ = json.Unmarshal(raw, &parsed)
	}
	return resp.StatusCode, parsed
}

var stepPayloads = []map[string]any{
	{
		"email":             "jean@exemple.bj",
		"nom":               "AGOSSOU",
		"prenoms":           "Jean Marc",
		"telephone":         "0190123456",
		"celluleProvenance": "Calavi",
	},
	{
		"universite": "Université d'Abomey-Calavi",
		"filiere":    "Informatique",
		"anneeEtude": "Licence 2",
		"matricule":  "12345678",
	},
	{
		"situationMatrimoniale":    "Célibataire",
		"gradeEglise":              "Ondo",
		"paroisseOrigine":          "Paroisse Saint Michel",
		"chargeParoisseOrigine":    "Père AHOUANSOU",
		"paroisseAccueil":          "Paroisse Sainte Rita",
		"chargeParoisseAccueil":    "Père GBAGUIDI",
		"anneeDecouverteUECC":      "2019",
		"celluleUECCMilite":        "Calavi",
		"responsableCelluleEpoque": "Marc HOUNSOU",
		"posteOccupeUECC":          "Secrétaire",
		"responsableActuelCellule": "Paul DOSSOU",
	},
	{
		"derniereActiviteUECC": "Camp biblique 2024",
		"anneeActivite":        "2024",
		"superviseur":          "Luc KPOGNON",
		"presidentComite":      "André TOSSOU",
	},
}

func startSession(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/", nil)
	require.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]any)
	return data["id"].(string)
}

func TestWizard_ParcoursComplet(t *testing.T) {
	app := newTestApp(t)
	id := startSession(t, app)

	for i, payload := range stepPayloads {
		status, body := doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/"+id+"/next", payload)
		require.Equal(t, fiber.StatusOK, status, "étape %d", i+1)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(i+2), data["step"])
	}

	// paiement simulé (sandbox)
	status, _ := doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/"+id+"/paiement/simulate", nil)
	require.Equal(t, fiber.StatusOK, status)

	// dernière étape: photo + certification
	status, _ = doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/"+id+"/next", map[string]any{
		"photoUrl":                "data:image/webp;base64,AAAA",
		"certificationExactitude": true,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/"+id+"/submit", nil)
	require.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Regexp(t, `^UECC-\d{4}-\d{4}$`, data["numeroDossier"])
	assert.Equal(t, "AGOSSOU", data["nom"])

	// la session est consommée
	status, _ = doJSON(t, app, http.MethodGet, "/api/inscriptions/wizard/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestWizard_EtapeInvalide422(t *testing.T) {
	app := newTestApp(t)
	id := startSession(t, app)

	status, body := doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/"+id+"/next", map[string]any{
		"email": "pas-un-email",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "telephone")
}

func TestWizard_SubmitSansPaiement403(t *testing.T) {
	app := newTestApp(t)
	id := startSession(t, app)

	for _, payload := range stepPayloads {
		status, _ := doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/"+id+"/next", payload)
		require.Equal(t, fiber.StatusOK, status)
	}

	status, _ := doJSON(t, app, http.MethodPost, "/api/inscriptions/wizard/"+id+"/submit", nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestWizard_SessionInconnue404(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/inscriptions/wizard/inexistant", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestOptions(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/inscriptions/options", nil)
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Contains(t, data, "anneesEtude")
	assert.Contains(t, data, "cellules")
	assert.Equal(t, float64(1500), data["montantFraisBadge"])
}

func TestAdmin_LoginRefuse(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    "admin@uecc.bj",
		"password": "mauvais",
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Les identifiants ne correspondent à aucun compte administrateur.", body["message"])
}

func TestAdmin_ParcoursProtege(t *testing.T) {
	app := newTestApp(t)

	// sans jeton → 401
	status, _ := doJSON(t, app, http.MethodGet, "/api/admin/inscriptions", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)

	// login → jeton
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/login", map[string]string{
		"email":    "Admin@UECC.bj",
		"password": "UECCadmin2025!",
	})
	require.Equal(t, fiber.StatusOK, status)
	token := body["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)
	authz := map[string]string{fiber.HeaderAuthorization: "Bearer " + token}

	status, body = doJSON(t, app, http.MethodGet, "/api/admin/inscriptions", nil, authz)
	require.Equal(t, fiber.StatusOK, status)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(0), meta["count"])

	status, body = doJSON(t, app, http.MethodGet, "/api/admin/inscriptions/stats", nil, authz)
	require.Equal(t, fiber.StatusOK, status)
	stats := body["data"].(map[string]any)
	assert.Equal(t, float64(0), stats["total"])

	// logout invalide le jeton encore en circulation
	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/logout", nil, authz)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/inscriptions", nil, authz)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
