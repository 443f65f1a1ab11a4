package service

import (
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"uecc_backend/internals/constants"
)

var SnapClient snap.Client

// InitSnap initialise le client Snap avec la server key du compte marchand.
func InitSnap(serverKey string, sandbox bool) {
	env := midtrans.Production
	if sandbox {
		env = midtrans.Sandbox
	}
	SnapClient.New(serverKey, env)
}

// NewOrderID produit un identifiant d'ordre unique pour les frais de badge.
func NewOrderID() string {
	return fmt.Sprintf("UECC-BADGE-%d", time.Now().UnixNano())
}

// CreateBadgeFeeTransaction crée la transaction des frais de badge (montant
// fixe) et renvoie le token du widget. Le cœur n'attend du collaborateur que
// l'évènement de succès; aucun autre champ de la réponse n'est consommé.
func CreateBadgeFeeTransaction(orderID, nom, prenoms, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(constants.MontantFraisBadge),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: prenoms,
			LName: nom,
			Email: email,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    "badge-uecc",
			Name:  "Frais de Badge",
			Price: int64(constants.MontantFraisBadge),
			Qty:   1,
		}},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// PaymentSucceeded interprète la notification du collaborateur: seuls les
// statuts de règlement effectif passent l'indicateur local à payé.
func PaymentSucceeded(transactionStatus string) bool {
	switch transactionStatus {
	case "capture", "settlement":
		return true
	default:
		return false
	}
}
