package service

import (
	"fmt"
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	model "staffly_backend/internals/features/payments/model"
)

var SnapClient snap.Client

// grossAmount converts dollars to the gateway's cent amount. Plain
// truncation drops a cent on values like 19.99 whose float form sits
// just under the cent boundary.
func grossAmount(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// InitMidtrans initializes the Snap client with the server key.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates a card-payment intent for a transaction.
// The order id doubles as the payment intent id stored on the row.
func GenerateSnapToken(t model.TransactionModel) (token string, orderID string, err error) {
	orderID = fmt.Sprintf("txn-%s", t.TransactionID)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount(t.TransactionAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: t.TransactionWorkerName,
		},
	}

	resp, respErr := SnapClient.CreateTransaction(req)
	if respErr != nil {
		return "", "", respErr
	}
	return resp.Token, orderID, nil
}
