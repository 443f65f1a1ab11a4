package service

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"uecc_backend/internals/features/inscriptions/inscription/dto"
)

// TotalSteps est le nombre d'écrans du formulaire.
const TotalSteps = 5

var validate = newValidator()

// telephoneBJ: format local fixe, 10 chiffres commençant par 01.
// Tout autre format (indicatif international inclus) est rejeté.
var telephoneBJ = regexp.MustCompile(`^01[0-9]{8}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// Les erreurs sont adressées par clé JSON, pas par nom de champ Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("telephone_bj", func(fl validator.FieldLevel) bool {
		return telephoneBJ.MatchString(fl.Field().String())
	})

	// Les années sont des chaînes de 4 caractères, pas des bornes numériques.
	_ = v.RegisterValidation("annee4", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) == 4
	})

	return v
}

// stepSchemas associe chaque étape à la vue du formulaire qu'elle valide.
// Ajouter ou réordonner une étape est un changement de données, pas de logique.
var stepSchemas = map[int]func(f *dto.InscriptionForm) any{
	1: func(f *dto.InscriptionForm) any { return &f.Step1Identite },
	2: func(f *dto.InscriptionForm) any { return &f.Step2Parcours },
	3: func(f *dto.InscriptionForm) any { return &f.Step3Engagement },
	4: func(f *dto.InscriptionForm) any { return &f.Step4Activites },
	5: func(f *dto.InscriptionForm) any { return &f.Step5Finalisation },
}

// ValidateStep ne valide que les champs déclarés par le schéma de l'étape.
// Retourne une map clé JSON → messages; vide si l'étape est valide.
func ValidateStep(step int, f *dto.InscriptionForm) (map[string][]string, error) {
	schema, ok := stepSchemas[step]
	if !ok {
		return nil, fmt.Errorf("étape inconnue: %d", step)
	}
	return collectFieldErrors(validate.Struct(schema(f))), nil
}

// ValidateFull applique l'union des cinq schémas avant la soumission finale,
// même si le passage d'étapes garantit déjà la validité en théorie.
func ValidateFull(f *dto.InscriptionForm) map[string][]string {
	return collectFieldErrors(validate.Struct(f))
}

// ValidateRequest valide une requête annotée hors formulaire (login, statut).
func ValidateRequest(req any) map[string][]string {
	return collectFieldErrors(validate.Struct(req))
}

func collectFieldErrors(err error) map[string][]string {
	fieldErrors := map[string][]string{}
	if err == nil {
		return fieldErrors
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_global"] = []string{"Format invalide."}
		return fieldErrors
	}
	for _, fe := range ve {
		field := fe.Field()
		fieldErrors[field] = append(fieldErrors[field], messageFor(fe))
	}
	return fieldErrors
}

// messageFor traduit un tag validator en message affichable tel quel.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "Ce champ est requis."
	case "email":
		return "Email invalide."
	case "min":
		return "Minimum " + fe.Param() + " caractères."
	case "max":
		return "Maximum " + fe.Param() + " caractères."
	case "eq":
		if fe.Field() == "certificationExactitude" {
			return "Vous devez certifier l'exactitude des informations."
		}
		return "Valeur invalide."
	case "telephone_bj":
		return "Numéro invalide: 10 chiffres commençant par 01."
	case "annee4":
		return "Année invalide (4 caractères attendus)."
	case "oneof":
		return "Doit être l'un de: " + fe.Param() + "."
	default:
		return "Format invalide."
	}
}
