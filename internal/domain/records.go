package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatusPaid marks income rows that count towards profit.
const PaymentStatusPaid = "paid"

// clientSeparator splits "Client - project" descriptions.
const clientSeparator = " - "

// IncomeRecord is a single invoice row from the income table.
type IncomeRecord struct {
	Date               time.Time       `json:"date"`
	ProjectDescription string          `json:"project_description"`
	Client             string          `json:"client"`
	AmountPreVAT       decimal.Decimal `json:"amount_pre_vat"`
	PaymentStatus      string          `json:"payment_status"`
}

// ExpenseRecord is a single row from the expenses table.
type ExpenseRecord struct {
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	AmountPreVAT decimal.Decimal `json:"amount_pre_vat"`
}

// ClientFromDescription returns the part of a project description before the
// first " - ". A description without the separator is returned whole.
func ClientFromDescription(desc string) string {
	if i := strings.Index(desc, clientSeparator); i >= 0 {
		return desc[:i]
	}
	return desc
}
